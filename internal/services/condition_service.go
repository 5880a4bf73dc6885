package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type ConditionStore interface {
	Create(ctx context.Context, condition *models.Condition) (int64, error)
	GetAll(ctx context.Context) ([]models.Condition, error)
	GetByID(ctx context.Context, id int64) (*models.Condition, error)
	Update(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

type ConditionService struct {
	l          logrus.FieldLogger
	conditions ConditionStore
}

func NewConditionService(l logrus.FieldLogger, conditions ConditionStore) *ConditionService {
	return &ConditionService{l: l, conditions: conditions}
}

type CreateConditionRequest struct {
	ConditionCode string `json:"condition_code" validate:"notblank"`
	Description   string `json:"description" validate:"notblank"`
}

var conditionRules = []columnRule{
	{"condition_code", textColumn, "notblank"},
	{"description", textColumn, "notblank"},
}

func (s *ConditionService) CreateCondition(ctx context.Context, req CreateConditionRequest) (int64, error) {
	if err := checkStruct(req); err != nil {
		s.l.WithError(err).Debug("Rejected condition.")
		return 0, err
	}

	id, err := s.conditions.Create(ctx, &models.Condition{
		ConditionCode: req.ConditionCode,
		Description:   req.Description,
	})
	if err != nil {
		return 0, err
	}

	s.l.WithFields(logrus.Fields{"condition_id": id, "condition_code": req.ConditionCode}).Info("Created condition.")
	return id, nil
}

func (s *ConditionService) ListConditions(ctx context.Context) ([]models.Condition, error) {
	return s.conditions.GetAll(ctx)
}

func (s *ConditionService) GetCondition(ctx context.Context, id int64) (*models.Condition, error) {
	return s.conditions.GetByID(ctx, id)
}

func (s *ConditionService) UpdateCondition(ctx context.Context, id int64, fields models.Fields) (bool, error) {
	fields = fields.Allowed(models.ConditionColumns)
	if err := checkFields(fields, conditionRules); err != nil {
		s.l.WithError(err).WithField("condition_id", id).Debug("Rejected condition update.")
		return false, err
	}

	condition, err := s.conditions.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if condition == nil {
		return false, nil
	}

	if err := s.conditions.Update(ctx, id, fields); err != nil {
		return false, err
	}
	s.l.WithField("condition_id", id).Info("Updated condition.")
	return true, nil
}

// DeleteCondition fails with the store's foreign-key error while inventory
// items still reference the condition.
func (s *ConditionService) DeleteCondition(ctx context.Context, id int64) (bool, error) {
	condition, err := s.conditions.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if condition == nil {
		return false, nil
	}

	if err := s.conditions.Delete(ctx, id); err != nil {
		return false, err
	}
	s.l.WithField("condition_id", id).Info("Deleted condition.")
	return true, nil
}
