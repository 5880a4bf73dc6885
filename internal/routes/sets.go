package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
)

type SetRoutes struct {
	handler   *handlers.SetHandler
	cards     *handlers.CardHandler
	inventory *handlers.InventoryHandler
}

func NewSetRoutes(handler *handlers.SetHandler, cards *handlers.CardHandler, inventory *handlers.InventoryHandler) *SetRoutes {
	return &SetRoutes{handler: handler, cards: cards, inventory: inventory}
}

func (r *SetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	sets := router.Group("/sets")
	{
		sets.POST("", r.handler.CreateSet)
		sets.GET("", r.handler.ListSets)
		sets.GET("/:id", r.handler.GetSet)
		sets.PATCH("/:id", r.handler.UpdateSet)
		sets.DELETE("/:id", r.handler.DeleteSet)

		// Per-set listings
		sets.GET("/:id/cards", r.cards.ListCardsInSet)
		sets.GET("/:id/inventory", r.inventory.ListInventoryBySet)
	}
}
