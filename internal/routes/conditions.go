package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
)

type ConditionRoutes struct {
	handler *handlers.ConditionHandler
}

func NewConditionRoutes(handler *handlers.ConditionHandler) *ConditionRoutes {
	return &ConditionRoutes{handler: handler}
}

func (r *ConditionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	conditions := router.Group("/conditions")
	{
		conditions.POST("", r.handler.CreateCondition)
		conditions.GET("", r.handler.ListConditions)
		conditions.GET("/:id", r.handler.GetCondition)
		conditions.PATCH("/:id", r.handler.UpdateCondition)
		conditions.DELETE("/:id", r.handler.DeleteCondition)
	}
}
