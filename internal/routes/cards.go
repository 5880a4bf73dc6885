package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
)

type CardRoutes struct {
	handler *handlers.CardHandler
}

func NewCardRoutes(handler *handlers.CardHandler) *CardRoutes {
	return &CardRoutes{handler: handler}
}

func (r *CardRoutes) RegisterRoutes(router *gin.RouterGroup) {
	cards := router.Group("/cards")
	{
		cards.POST("", r.handler.CreateCard)
		cards.GET("", r.handler.ListCards)
		cards.GET("/:id", r.handler.GetCard)
		cards.PATCH("/:id", r.handler.UpdateCard)
		cards.DELETE("/:id", r.handler.DeleteCard)
	}
}
