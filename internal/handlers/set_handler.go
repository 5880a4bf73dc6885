package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/responses"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type SetHandler struct {
	l          logrus.FieldLogger
	setService *services.SetService
}

func NewSetHandler(l logrus.FieldLogger, setService *services.SetService) *SetHandler {
	return &SetHandler{
		l:          l,
		setService: setService,
	}
}

// CreateSet handles POST /sets
func (h *SetHandler) CreateSet(c *gin.Context) {
	var req services.CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.setService.CreateSet(c.Request.Context(), req)
	if err != nil {
		fail(c, h.l, err, "Failed to create card set")
		return
	}
	responses.Created(c, "set_id", id)
}

// ListSets handles GET /sets
func (h *SetHandler) ListSets(c *gin.Context) {
	sets, err := h.setService.ListSets(c.Request.Context())
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve card sets")
		return
	}
	responses.JSON(c, http.StatusOK, sets)
}

// GetSet handles GET /sets/:id
func (h *SetHandler) GetSet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	set, err := h.setService.GetSet(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve card set")
		return
	}
	if set == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Set not found")
		return
	}
	responses.JSON(c, http.StatusOK, set)
}

// UpdateSet handles PATCH /sets/:id
func (h *SetHandler) UpdateSet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c, models.SetColumns)
	if !ok {
		return
	}
	if len(fields) == 0 {
		responses.NoFields(c)
		return
	}

	updated, err := h.setService.UpdateSet(c.Request.Context(), id, fields)
	if err != nil {
		fail(c, h.l, err, "Failed to update card set")
		return
	}
	if !updated {
		responses.Fail(c, http.StatusNotFound, nil, "Set not found")
		return
	}
	responses.Updated(c)
}

// DeleteSet handles DELETE /sets/:id
func (h *SetHandler) DeleteSet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.setService.DeleteSet(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to delete card set")
		return
	}
	if !deleted {
		responses.Fail(c, http.StatusNotFound, nil, "Set not found")
		return
	}
	responses.Deleted(c)
}
