// Package memstore is an in-memory implementation of the entity repository
// contracts. It mirrors the Postgres schema's foreign-key, unique and check
// constraints by returning *pgconn.PgError values with the same SQLSTATE
// codes, so callers classify its failures exactly like the real store's.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/repositories"
)

type Store struct {
	mu sync.Mutex

	sets       map[int64]models.CardSet
	cards      map[int64]models.Card
	conditions map[int64]models.Condition
	items      map[int64]models.InventoryItem

	nextSet, nextCard, nextCondition, nextItem int64

	err    error
	writes int
}

func New() *Store {
	return &Store{
		sets:       map[int64]models.CardSet{},
		cards:      map[int64]models.Card{},
		conditions: map[int64]models.Condition{},
		items:      map[int64]models.InventoryItem{},
	}
}

// FailWith makes every subsequent call return err until cleared with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Writes counts statements that reached the store and would have modified it.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Store) Sets() *SetRepository             { return &SetRepository{s} }
func (s *Store) Cards() *CardRepository           { return &CardRepository{s} }
func (s *Store) Conditions() *ConditionRepository { return &ConditionRepository{s} }
func (s *Store) Inventory() *InventoryRepository  { return &InventoryRepository{s} }

func violation(code, constraint, format string, args ...any) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           code,
		Message:        fmt.Sprintf(format, args...),
		ConstraintName: constraint,
	}
}

func (s *Store) checkCard(id int64, c models.Card) error {
	if _, ok := s.sets[c.SetID]; !ok {
		return violation(repositories.ForeignKeyViolation, "card_set_id_fkey",
			"insert or update on table \"card\" violates foreign key constraint \"card_set_id_fkey\"")
	}
	if !slices.Contains(models.Rarities, c.Rarity) {
		return violation(repositories.CheckViolation, "card_rarity_check",
			"new row for relation \"card\" violates check constraint \"card_rarity_check\"")
	}
	if !slices.Contains(models.CardTypes, c.CardType) {
		return violation(repositories.CheckViolation, "card_card_type_check",
			"new row for relation \"card\" violates check constraint \"card_card_type_check\"")
	}
	for otherID, other := range s.cards {
		if otherID != id && other.SetID == c.SetID && other.CardNumber == c.CardNumber {
			return violation(repositories.UniqueViolation, "card_set_number_key",
				"duplicate key value violates unique constraint \"card_set_number_key\"")
		}
	}
	return nil
}

func (s *Store) checkCondition(id int64, c models.Condition) error {
	for otherID, other := range s.conditions {
		if otherID != id && other.ConditionCode == c.ConditionCode {
			return violation(repositories.UniqueViolation, "card_condition_condition_code_key",
				"duplicate key value violates unique constraint \"card_condition_condition_code_key\"")
		}
	}
	return nil
}

func (s *Store) checkItem(item models.InventoryItem) error {
	if _, ok := s.cards[item.CardID]; !ok {
		return violation(repositories.ForeignKeyViolation, "inventory_item_card_id_fkey",
			"insert or update on table \"inventory_item\" violates foreign key constraint \"inventory_item_card_id_fkey\"")
	}
	if _, ok := s.conditions[item.ConditionID]; !ok {
		return violation(repositories.ForeignKeyViolation, "inventory_item_condition_id_fkey",
			"insert or update on table \"inventory_item\" violates foreign key constraint \"inventory_item_condition_id_fkey\"")
	}
	graded := item.IsGraded == models.Yes && item.GradedCompany != nil && item.Grade != nil
	ungraded := item.IsGraded == models.No && item.GradedCompany == nil && item.Grade == nil
	if !item.IsFoil.Valid() || !(graded || ungraded) || item.Quantity < 0 || item.PurchasePrice < 0 {
		return violation(repositories.CheckViolation, "inventory_item_grading_check",
			"new row for relation \"inventory_item\" violates check constraint")
	}
	return nil
}

func (s *Store) joinItem(item models.InventoryItem) models.InventoryItem {
	card := s.cards[item.CardID]
	set := s.sets[card.SetID]
	item.CardName = card.CardName
	item.CardNumber = card.CardNumber
	item.Rarity = card.Rarity
	item.SetCode = set.SetCode
	item.SetName = set.SetName
	item.ConditionCode = s.conditions[item.ConditionID].ConditionCode
	return item
}

func sortCards(cards []models.Card, sets map[int64]models.CardSet) {
	sort.SliceStable(cards, func(i, j int) bool {
		ri, rj := sets[cards[i].SetID].ReleaseDate, sets[cards[j].SetID].ReleaseDate
		if ri != rj {
			return ri < rj
		}
		if c := strings.Compare(cards[i].CardNumber, cards[j].CardNumber); c != 0 {
			return c < 0
		}
		return cards[i].CardID < cards[j].CardID
	})
}

func sortItems(items []models.InventoryItem, byRelease bool, sets map[int64]models.CardSet, cards map[int64]models.Card) {
	sort.SliceStable(items, func(i, j int) bool {
		if byRelease {
			ri := sets[cards[items[i].CardID].SetID].ReleaseDate
			rj := sets[cards[items[j].CardID].SetID].ReleaseDate
			if ri != rj {
				return ri < rj
			}
		}
		if items[i].CardNumber != items[j].CardNumber {
			return items[i].CardNumber < items[j].CardNumber
		}
		return items[i].ItemID < items[j].ItemID
	})
}

func (s *Store) begin(_ context.Context) error {
	s.mu.Lock()
	return s.err
}

func (s *Store) end() { s.mu.Unlock() }

func sortBy[T any](s []T, less func(a, b T) bool) {
	sort.SliceStable(s, func(i, j int) bool { return less(s[i], s[j]) })
}
