package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type SetStore interface {
	Create(ctx context.Context, set *models.CardSet) (int64, error)
	GetAll(ctx context.Context) ([]models.CardSet, error)
	GetByID(ctx context.Context, id int64) (*models.CardSet, error)
	Update(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

type SetService struct {
	l    logrus.FieldLogger
	sets SetStore
}

func NewSetService(l logrus.FieldLogger, sets SetStore) *SetService {
	return &SetService{l: l, sets: sets}
}

type CreateSetRequest struct {
	SetCode     string `json:"set_code" validate:"notblank"`
	SetName     string `json:"set_name" validate:"notblank"`
	ReleaseDate string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Era         string `json:"era"`
}

var setRules = []columnRule{
	{"set_code", textColumn, "notblank"},
	{"set_name", textColumn, "notblank"},
	{"release_date", textColumn, "omitempty,datetime=2006-01-02"},
	{"era", textColumn, ""},
}

func (s *SetService) CreateSet(ctx context.Context, req CreateSetRequest) (int64, error) {
	if err := checkStruct(req); err != nil {
		s.l.WithError(err).Debug("Rejected card set.")
		return 0, err
	}

	id, err := s.sets.Create(ctx, &models.CardSet{
		SetCode:     req.SetCode,
		SetName:     req.SetName,
		ReleaseDate: req.ReleaseDate,
		Era:         req.Era,
	})
	if err != nil {
		return 0, err
	}

	s.l.WithFields(logrus.Fields{"set_id": id, "set_code": req.SetCode}).Info("Created card set.")
	return id, nil
}

func (s *SetService) ListSets(ctx context.Context) ([]models.CardSet, error) {
	return s.sets.GetAll(ctx)
}

// GetSet returns nil, nil when the set does not exist.
func (s *SetService) GetSet(ctx context.Context, id int64) (*models.CardSet, error) {
	return s.sets.GetByID(ctx, id)
}

// UpdateSet applies the recognised subset of fields. It reports false when
// the set does not exist.
func (s *SetService) UpdateSet(ctx context.Context, id int64, fields models.Fields) (bool, error) {
	fields = fields.Allowed(models.SetColumns)
	if err := checkFields(fields, setRules); err != nil {
		s.l.WithError(err).WithField("set_id", id).Debug("Rejected card set update.")
		return false, err
	}

	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if set == nil {
		return false, nil
	}

	if err := s.sets.Update(ctx, id, fields); err != nil {
		return false, err
	}
	s.l.WithFields(logrus.Fields{"set_id": id, "fields": len(fields)}).Info("Updated card set.")
	return true, nil
}

// DeleteSet reports false when the set does not exist. Deleting a set that
// still has cards fails with the store's foreign-key error.
func (s *SetService) DeleteSet(ctx context.Context, id int64) (bool, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if set == nil {
		return false, nil
	}

	if err := s.sets.Delete(ctx, id); err != nil {
		return false, err
	}
	s.l.WithField("set_id", id).Info("Deleted card set.")
	return true, nil
}
