package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type InventoryStore interface {
	Create(ctx context.Context, item *models.InventoryItem) (int64, error)
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
	GetBySet(ctx context.Context, setID int64) ([]models.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	Update(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

type InventoryService struct {
	l     logrus.FieldLogger
	items InventoryStore
}

func NewInventoryService(l logrus.FieldLogger, items InventoryStore) *InventoryService {
	return &InventoryService{l: l, items: items}
}

// CreateInventoryItemRequest leaves Quantity and PurchasePrice nil to take
// the column defaults (1 and 0.0).
type CreateInventoryItemRequest struct {
	CardID        int64       `json:"card_id" validate:"required,gt=0"`
	ConditionID   int64       `json:"condition_id" validate:"required,gt=0"`
	IsFoil        models.Flag `json:"is_foil" validate:"oneof=0 1"`
	IsGraded      models.Flag `json:"is_graded" validate:"oneof=0 1"`
	GradedCompany *string     `json:"graded_company" validate:"required_if=IsGraded 1,omitempty,notblank"`
	Grade         *float64    `json:"grade" validate:"required_if=IsGraded 1,omitempty,gte=0,lte=10"`
	Quantity      *int        `json:"quantity" validate:"omitempty,gte=0,lte=2147483647"`
	PurchasePrice *float64    `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseDate  *string     `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string     `json:"notes"`
}

var inventoryRules = []columnRule{
	{"card_id", integerColumn, "gt=0"},
	{"condition_id", integerColumn, "gt=0"},
	{"is_foil", integerColumn, "oneof=0 1"},
	{"is_graded", integerColumn, "oneof=0 1"},
	{"graded_company", nullableTextColumn, ""},
	{"grade", nullableNumberColumn, "omitempty,gte=0,lte=10"},
	{"quantity", integerColumn, "gte=0,lte=2147483647"},
	{"purchase_price", numberColumn, "gte=0"},
	{"purchase_date", nullableTextColumn, "omitempty,datetime=2006-01-02"},
	{"notes", nullableTextColumn, ""},
}

func (r CreateInventoryItemRequest) toItem() (*models.InventoryItem, error) {
	if r.PurchaseDate != nil && *r.PurchaseDate == "" {
		r.PurchaseDate = nil
	}
	if r.IsGraded == models.No {
		r.GradedCompany = nil
		r.Grade = nil
	}
	if err := checkStruct(r); err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		CardID:        r.CardID,
		ConditionID:   r.ConditionID,
		IsFoil:        r.IsFoil,
		IsGraded:      r.IsGraded,
		GradedCompany: r.GradedCompany,
		Grade:         r.Grade,
		Quantity:      models.DefaultQuantity,
		PurchasePrice: models.DefaultPurchasePrice,
		PurchaseDate:  r.PurchaseDate,
		Notes:         r.Notes,
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.PurchasePrice != nil {
		item.PurchasePrice = *r.PurchasePrice
	}
	return item, nil
}

// gradingRules apply to the stored row merged with an update.
type gradingRules struct {
	GradedCompany *string  `json:"graded_company" validate:"required,notblank"`
	Grade         *float64 `json:"grade" validate:"required,gte=0,lte=10"`
}

func (s *InventoryService) CreateInventoryItem(ctx context.Context, req CreateInventoryItemRequest) (int64, error) {
	item, err := req.toItem()
	if err != nil {
		s.l.WithError(err).Debug("Rejected inventory item.")
		return 0, err
	}

	id, err := s.items.Create(ctx, item)
	if err != nil {
		return 0, err
	}

	s.l.WithFields(logrus.Fields{
		"item_id":  id,
		"card_id":  item.CardID,
		"quantity": item.Quantity,
	}).Info("Created inventory item.")
	return id, nil
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return s.items.GetAll(ctx)
}

func (s *InventoryService) ListInventoryBySet(ctx context.Context, setID int64) ([]models.InventoryItem, error) {
	return s.items.GetBySet(ctx, setID)
}

func (s *InventoryService) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

// UpdateInventoryItem validates the partial field set, then checks the
// grading invariant against the stored row merged with the update. Turning
// grading off clears graded_company and grade.
func (s *InventoryService) UpdateInventoryItem(ctx context.Context, id int64, fields models.Fields) (bool, error) {
	fields = fields.Allowed(models.InventoryColumns)
	if err := validateInventoryFields(fields); err != nil {
		s.l.WithError(err).WithField("item_id", id).Debug("Rejected inventory update.")
		return false, err
	}

	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}

	if len(fields) > 0 {
		if err := mergeGrading(current, fields); err != nil {
			s.l.WithError(err).WithField("item_id", id).Debug("Rejected inventory update.")
			return false, err
		}
	}

	if err := s.items.Update(ctx, id, fields); err != nil {
		return false, err
	}
	s.l.WithFields(logrus.Fields{"item_id": id, "fields": len(fields)}).Info("Updated inventory item.")
	return true, nil
}

func (s *InventoryService) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return false, err
	}
	s.l.WithField("item_id", id).Info("Deleted inventory item.")
	return true, nil
}

func mergeGrading(current *models.InventoryItem, fields models.Fields) error {
	graded := current.IsGraded
	if v, ok := fields.Int64("is_graded"); ok {
		graded = models.Flag(v)
	}

	if graded == models.Yes {
		company, grade := current.GradedCompany, current.Grade
		if fields.Has("graded_company") {
			company = nil
			if v, ok := fields.String("graded_company"); ok {
				company = &v
			}
		}
		if fields.Has("grade") {
			grade = nil
			if v, ok := fields.Float64("grade"); ok {
				grade = &v
			}
		}
		return checkStruct(gradingRules{GradedCompany: company, Grade: grade})
	}

	if fields.Has("is_graded") || fields.Has("graded_company") || fields.Has("grade") {
		fields["graded_company"] = nil
		fields["grade"] = nil
	}
	return nil
}

func validateInventoryFields(fields models.Fields) error {
	if err := checkFields(fields, inventoryRules); err != nil {
		return err
	}
	if v, ok := fields.String("purchase_date"); ok && v == "" {
		fields["purchase_date"] = nil
	}
	return nil
}
