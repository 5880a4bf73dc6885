package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type Seeder struct {
	l          logrus.FieldLogger
	sets       *services.SetService
	cards      *services.CardService
	conditions *services.ConditionService
}

func NewSeeder(l logrus.FieldLogger, sets *services.SetService, cards *services.CardService, conditions *services.ConditionService) *Seeder {
	return &Seeder{l: l, sets: sets, cards: cards, conditions: conditions}
}

// Result counts rows created and rows skipped because their natural key
// already existed.
type Result struct {
	Sets       int
	Cards      int
	Conditions int
	Skipped    int
}

// Apply creates sets, then conditions, then cards. Rows already present by
// natural key (set_code, condition_code, set_code+card_number) are skipped,
// so applying the same document twice is harmless.
func (s *Seeder) Apply(ctx context.Context, doc *Document) (Result, error) {
	var res Result

	setIDs, err := s.existingSets(ctx)
	if err != nil {
		return res, err
	}
	for _, set := range doc.Sets {
		if _, ok := setIDs[set.SetCode]; ok {
			res.Skipped++
			continue
		}
		id, err := s.sets.CreateSet(ctx, services.CreateSetRequest{
			SetCode:     set.SetCode,
			SetName:     set.SetName,
			ReleaseDate: set.ReleaseDate,
			Era:         set.Era,
		})
		if err != nil {
			return res, fmt.Errorf("seed set %q: %w", set.SetCode, err)
		}
		setIDs[set.SetCode] = id
		res.Sets++
	}

	conditions, err := s.conditions.ListConditions(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list conditions: %w", err)
	}
	codes := map[string]bool{}
	for _, c := range conditions {
		codes[c.ConditionCode] = true
	}
	for _, c := range doc.Conditions {
		if codes[c.ConditionCode] {
			res.Skipped++
			continue
		}
		if _, err := s.conditions.CreateCondition(ctx, services.CreateConditionRequest{
			ConditionCode: c.ConditionCode,
			Description:   c.Description,
		}); err != nil {
			return res, fmt.Errorf("seed condition %q: %w", c.ConditionCode, err)
		}
		codes[c.ConditionCode] = true
		res.Conditions++
	}

	numbers := map[int64]map[string]bool{}
	for _, card := range doc.Cards {
		setID, ok := setIDs[card.SetCode]
		if !ok {
			return res, fmt.Errorf("seed card %q: unknown set_code %q", card.CardNumber, card.SetCode)
		}
		if numbers[setID] == nil {
			existing, err := s.cards.ListCardsInSet(ctx, setID)
			if err != nil {
				return res, fmt.Errorf("failed to list cards of set %q: %w", card.SetCode, err)
			}
			numbers[setID] = map[string]bool{}
			for _, c := range existing {
				numbers[setID][c.CardNumber] = true
			}
		}
		if numbers[setID][card.CardNumber] {
			res.Skipped++
			continue
		}
		if _, err := s.cards.CreateCard(ctx, services.CreateCardRequest{
			SetID:      setID,
			CardNumber: card.CardNumber,
			CardName:   card.CardName,
			Rarity:     card.Rarity,
			CardType:   card.CardType,
		}); err != nil {
			return res, fmt.Errorf("seed card %s %q: %w", card.SetCode, card.CardNumber, err)
		}
		numbers[setID][card.CardNumber] = true
		res.Cards++
	}

	s.l.WithFields(logrus.Fields{
		"sets":       res.Sets,
		"cards":      res.Cards,
		"conditions": res.Conditions,
		"skipped":    res.Skipped,
	}).Info("Applied seed document.")
	return res, nil
}

func (s *Seeder) existingSets(ctx context.Context) (map[string]int64, error) {
	sets, err := s.sets.ListSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	ids := make(map[string]int64, len(sets))
	for _, set := range sets {
		ids[set.SetCode] = set.SetID
	}
	return ids, nil
}
