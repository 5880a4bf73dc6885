package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/responses"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type InventoryHandler struct {
	l                logrus.FieldLogger
	inventoryService *services.InventoryService
}

func NewInventoryHandler(l logrus.FieldLogger, inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		l:                l,
		inventoryService: inventoryService,
	}
}

// CreateInventoryItem handles POST /inventory
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.inventoryService.CreateInventoryItem(c.Request.Context(), req)
	if err != nil {
		fail(c, h.l, err, "Failed to create inventory item")
		return
	}
	responses.Created(c, "item_id", id)
}

// ListInventory handles GET /inventory
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve inventory")
		return
	}
	responses.JSON(c, http.StatusOK, items)
}

// GetInventoryItem handles GET /inventory/:id
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetInventoryItem(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve inventory item")
		return
	}
	if item == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Inventory item not found")
		return
	}
	responses.JSON(c, http.StatusOK, item)
}

// UpdateInventoryItem handles PATCH /inventory/:id
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c, models.InventoryColumns)
	if !ok {
		return
	}
	if len(fields) == 0 {
		responses.NoFields(c)
		return
	}

	updated, err := h.inventoryService.UpdateInventoryItem(c.Request.Context(), id, fields)
	if err != nil {
		fail(c, h.l, err, "Failed to update inventory item")
		return
	}
	if !updated {
		responses.Fail(c, http.StatusNotFound, nil, "Inventory item not found")
		return
	}
	responses.Updated(c)
}

// DeleteInventoryItem handles DELETE /inventory/:id
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.inventoryService.DeleteInventoryItem(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to delete inventory item")
		return
	}
	if !deleted {
		responses.Fail(c, http.StatusNotFound, nil, "Inventory item not found")
		return
	}
	responses.Deleted(c)
}

// ListInventoryBySet handles GET /sets/:id/inventory
func (h *InventoryHandler) ListInventoryBySet(c *gin.Context) {
	setID, ok := parseID(c)
	if !ok {
		return
	}

	items, err := h.inventoryService.ListInventoryBySet(c.Request.Context(), setID)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve inventory")
		return
	}
	responses.JSON(c, http.StatusOK, items)
}
