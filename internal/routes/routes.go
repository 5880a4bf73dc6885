package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, healthHandler *handlers.HealthHandler, setHandler *handlers.SetHandler, cardHandler *handlers.CardHandler, conditionHandler *handlers.ConditionHandler, inventoryHandler *handlers.InventoryHandler) {
	api := router.Group("")

	setRoutes := NewSetRoutes(setHandler, cardHandler, inventoryHandler)
	setRoutes.RegisterRoutes(api)

	cardRoutes := NewCardRoutes(cardHandler)
	cardRoutes.RegisterRoutes(api)

	conditionRoutes := NewConditionRoutes(conditionHandler)
	conditionRoutes.RegisterRoutes(api)

	inventoryRoutes := NewInventoryRoutes(inventoryHandler)
	inventoryRoutes.RegisterRoutes(api)

	router.GET("/", healthHandler.Health)
}
