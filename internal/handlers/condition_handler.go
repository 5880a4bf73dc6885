package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/responses"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type ConditionHandler struct {
	l                logrus.FieldLogger
	conditionService *services.ConditionService
}

func NewConditionHandler(l logrus.FieldLogger, conditionService *services.ConditionService) *ConditionHandler {
	return &ConditionHandler{
		l:                l,
		conditionService: conditionService,
	}
}

// CreateCondition handles POST /conditions
func (h *ConditionHandler) CreateCondition(c *gin.Context) {
	var req services.CreateConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.conditionService.CreateCondition(c.Request.Context(), req)
	if err != nil {
		fail(c, h.l, err, "Failed to create condition")
		return
	}
	responses.Created(c, "condition_id", id)
}

// ListConditions handles GET /conditions
func (h *ConditionHandler) ListConditions(c *gin.Context) {
	conditions, err := h.conditionService.ListConditions(c.Request.Context())
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve conditions")
		return
	}
	responses.JSON(c, http.StatusOK, conditions)
}

// GetCondition handles GET /conditions/:id
func (h *ConditionHandler) GetCondition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	condition, err := h.conditionService.GetCondition(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to retrieve condition")
		return
	}
	if condition == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Condition not found")
		return
	}
	responses.JSON(c, http.StatusOK, condition)
}

// UpdateCondition handles PATCH /conditions/:id
func (h *ConditionHandler) UpdateCondition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c, models.ConditionColumns)
	if !ok {
		return
	}
	if len(fields) == 0 {
		responses.NoFields(c)
		return
	}

	updated, err := h.conditionService.UpdateCondition(c.Request.Context(), id, fields)
	if err != nil {
		fail(c, h.l, err, "Failed to update condition")
		return
	}
	if !updated {
		responses.Fail(c, http.StatusNotFound, nil, "Condition not found")
		return
	}
	responses.Updated(c)
}

// DeleteCondition handles DELETE /conditions/:id
func (h *ConditionHandler) DeleteCondition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.conditionService.DeleteCondition(c.Request.Context(), id)
	if err != nil {
		fail(c, h.l, err, "Failed to delete condition")
		return
	}
	if !deleted {
		responses.Fail(c, http.StatusNotFound, nil, "Condition not found")
		return
	}
	responses.Deleted(c)
}
