package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/responses"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type CardHandler struct {
	l           logrus.FieldLogger
	cardService *services.CardService
}

func NewCardHandler(l logrus.FieldLogger, cardService *services.CardService) *CardHandler {
	return &CardHandler{
		l:           l,
		cardService: cardService,
	}
}

// CreateCard handles POST /cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req services.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.cardService.CreateCard(c.Request.Context(), req)
	if err != nil {
		fail(c, h.l, err, "Failed to create card")
		return
	}
	responses.Created(c, "card_id", id)
}

// ListCards handles GET /cards
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListCards(c.Request.Context())
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve cards")
		return
	}
	responses.JSON(c, http.StatusOK, cards)
}

// GetCard handles GET /cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve card")
		return
	}
	if card == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Card not found")
		return
	}
	responses.JSON(c, http.StatusOK, card)
}

// UpdateCard handles PATCH /cards/:id
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c, models.CardColumns)
	if !ok {
		return
	}
	if len(fields) == 0 {
		responses.NoFields(c)
		return
	}

	updated, err := h.cardService.UpdateCard(c.Request.Context(), id, fields)
	if err != nil {
		fail(c, h.l, err, "Failed to update card")
		return
	}
	if !updated {
		responses.Fail(c, http.StatusNotFound, nil, "Card not found")
		return
	}
	responses.Updated(c)
}

// DeleteCard handles DELETE /cards/:id
func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.cardService.DeleteCard(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to delete card")
		return
	}
	if !deleted {
		responses.Fail(c, http.StatusNotFound, nil, "Card not found")
		return
	}
	responses.Deleted(c)
}

// ListCardsInSet handles GET /sets/:id/cards
func (h *CardHandler) ListCardsInSet(c *gin.Context) {
	setID, ok := parseID(c)
	if !ok {
		return
	}

	cards, err := h.cardService.ListCardsInSet(c.Request.Context(), setID)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve cards")
		return
	}
	responses.JSON(c, http.StatusOK, cards)
}
