package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
)

type InventoryRoutes struct {
	handler *handlers.InventoryHandler
}

func NewInventoryRoutes(handler *handlers.InventoryHandler) *InventoryRoutes {
	return &InventoryRoutes{handler: handler}
}

func (r *InventoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.POST("", r.handler.CreateInventoryItem)
		inventory.GET("", r.handler.ListInventory)
		inventory.GET("/:id", r.handler.GetInventoryItem)
		inventory.PATCH("/:id", r.handler.UpdateInventoryItem)
		inventory.DELETE("/:id", r.handler.DeleteInventoryItem)
	}
}
