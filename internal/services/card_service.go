package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type CardStore interface {
	Create(ctx context.Context, card *models.Card) (int64, error)
	GetAll(ctx context.Context) ([]models.Card, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	GetBySet(ctx context.Context, setID int64) ([]models.Card, error)
	Update(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

type CardService struct {
	l     logrus.FieldLogger
	cards CardStore
}

func NewCardService(l logrus.FieldLogger, cards CardStore) *CardService {
	return &CardService{l: l, cards: cards}
}

type CreateCardRequest struct {
	SetID      int64  `json:"set_id" validate:"required,gt=0"`
	CardNumber string `json:"card_number" validate:"notblank"`
	CardName   string `json:"card_name" validate:"notblank"`
	Rarity     string `json:"rarity" validate:"oneof=Common Uncommon Rare 'Double Rare' 'Ultra Rare' IR SIR 'Hyper Rare' Promo"`
	CardType   string `json:"card_type" validate:"oneof=Pokémon Trainer Energy"`
}

var cardRules = []columnRule{
	{"set_id", integerColumn, "gt=0"},
	{"card_number", textColumn, "notblank"},
	{"card_name", textColumn, "notblank"},
	{"rarity", textColumn, "oneof=Common Uncommon Rare 'Double Rare' 'Ultra Rare' IR SIR 'Hyper Rare' Promo"},
	{"card_type", textColumn, "oneof=Pokémon Trainer Energy"},
}

// CreateCard does not check that the set exists; the store's foreign key
// rejects an unknown set_id.
func (s *CardService) CreateCard(ctx context.Context, req CreateCardRequest) (int64, error) {
	if err := checkStruct(req); err != nil {
		s.l.WithError(err).Debug("Rejected card.")
		return 0, err
	}

	id, err := s.cards.Create(ctx, &models.Card{
		SetID:      req.SetID,
		CardNumber: req.CardNumber,
		CardName:   req.CardName,
		Rarity:     req.Rarity,
		CardType:   req.CardType,
	})
	if err != nil {
		return 0, err
	}

	s.l.WithFields(logrus.Fields{"card_id": id, "set_id": req.SetID}).Info("Created card.")
	return id, nil
}

func (s *CardService) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.cards.GetAll(ctx)
}

func (s *CardService) ListCardsInSet(ctx context.Context, setID int64) ([]models.Card, error) {
	return s.cards.GetBySet(ctx, setID)
}

func (s *CardService) GetCard(ctx context.Context, id int64) (*models.Card, error) {
	return s.cards.GetByID(ctx, id)
}

func (s *CardService) UpdateCard(ctx context.Context, id int64, fields models.Fields) (bool, error) {
	fields = fields.Allowed(models.CardColumns)
	if err := checkFields(fields, cardRules); err != nil {
		s.l.WithError(err).WithField("card_id", id).Debug("Rejected card update.")
		return false, err
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if card == nil {
		return false, nil
	}

	if err := s.cards.Update(ctx, id, fields); err != nil {
		return false, err
	}
	s.l.WithFields(logrus.Fields{"card_id": id, "fields": len(fields)}).Info("Updated card.")
	return true, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id int64) (bool, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if card == nil {
		return false, nil
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		return false, err
	}
	s.l.WithField("card_id", id).Info("Deleted card.")
	return true, nil
}
