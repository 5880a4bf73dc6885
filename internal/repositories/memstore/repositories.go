package memstore

import (
	"context"
	"fmt"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/repositories"
)

type SetRepository struct{ s *Store }

func (r *SetRepository) Create(ctx context.Context, set *models.CardSet) (int64, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return 0, err
	}

	r.s.writes++
	r.s.nextSet++
	row := *set
	row.SetID = r.s.nextSet
	r.s.sets[row.SetID] = row
	return row.SetID, nil
}

func (r *SetRepository) GetAll(ctx context.Context) ([]models.CardSet, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.CardSet{}
	for _, set := range r.s.sets {
		out = append(out, set)
	}
	sortBy(out, func(a, b models.CardSet) bool {
		if a.ReleaseDate != b.ReleaseDate {
			return a.ReleaseDate < b.ReleaseDate
		}
		return a.SetID < b.SetID
	})
	return out, nil
}

func (r *SetRepository) GetByID(ctx context.Context, id int64) (*models.CardSet, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	set, ok := r.s.sets[id]
	if !ok {
		return nil, nil
	}
	return &set, nil
}

func (r *SetRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	fields = fields.Allowed(models.SetColumns)
	if len(fields) == 0 {
		return nil
	}
	r.s.writes++
	set, ok := r.s.sets[id]
	if !ok {
		return nil
	}
	for column := range fields {
		v, ok := fields.String(column)
		if !ok {
			return typeError("card_set", column, fields[column])
		}
		switch column {
		case "set_code":
			set.SetCode = v
		case "set_name":
			set.SetName = v
		case "release_date":
			set.ReleaseDate = v
		case "era":
			set.Era = v
		}
	}
	r.s.sets[id] = set
	return nil
}

func (r *SetRepository) Delete(ctx context.Context, id int64) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	r.s.writes++
	for _, card := range r.s.cards {
		if card.SetID == id {
			return violation(repositories.ForeignKeyViolation, "card_set_id_fkey",
				"update or delete on table \"card_set\" violates foreign key constraint \"card_set_id_fkey\" on table \"card\"")
		}
	}
	delete(r.s.sets, id)
	return nil
}

type CardRepository struct{ s *Store }

func (r *CardRepository) Create(ctx context.Context, card *models.Card) (int64, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return 0, err
	}

	r.s.writes++
	row := *card
	row.SetCode, row.SetName = "", ""
	if err := r.s.checkCard(0, row); err != nil {
		return 0, err
	}
	r.s.nextCard++
	row.CardID = r.s.nextCard
	r.s.cards[row.CardID] = row
	return row.CardID, nil
}

func (r *CardRepository) GetAll(ctx context.Context) ([]models.Card, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.Card{}
	for _, card := range r.s.cards {
		set := r.s.sets[card.SetID]
		card.SetCode, card.SetName = set.SetCode, set.SetName
		out = append(out, card)
	}
	sortCards(out, r.s.sets)
	return out, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	card, ok := r.s.cards[id]
	if !ok {
		return nil, nil
	}
	return &card, nil
}

func (r *CardRepository) GetBySet(ctx context.Context, setID int64) ([]models.Card, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.Card{}
	for _, card := range r.s.cards {
		if card.SetID == setID {
			out = append(out, card)
		}
	}
	sortCards(out, r.s.sets)
	return out, nil
}

func (r *CardRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	fields = fields.Allowed(models.CardColumns)
	if len(fields) == 0 {
		return nil
	}
	r.s.writes++
	card, ok := r.s.cards[id]
	if !ok {
		return nil
	}
	for column := range fields {
		if column == "set_id" {
			v, ok := fields.Int64(column)
			if !ok {
				return typeError("card", column, fields[column])
			}
			card.SetID = v
			continue
		}
		v, ok := fields.String(column)
		if !ok {
			return typeError("card", column, fields[column])
		}
		switch column {
		case "card_number":
			card.CardNumber = v
		case "card_name":
			card.CardName = v
		case "rarity":
			card.Rarity = v
		case "card_type":
			card.CardType = v
		}
	}
	if err := r.s.checkCard(id, card); err != nil {
		return err
	}
	r.s.cards[id] = card
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	r.s.writes++
	for _, item := range r.s.items {
		if item.CardID == id {
			return violation(repositories.ForeignKeyViolation, "inventory_item_card_id_fkey",
				"update or delete on table \"card\" violates foreign key constraint \"inventory_item_card_id_fkey\" on table \"inventory_item\"")
		}
	}
	delete(r.s.cards, id)
	return nil
}

type ConditionRepository struct{ s *Store }

func (r *ConditionRepository) Create(ctx context.Context, condition *models.Condition) (int64, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return 0, err
	}

	r.s.writes++
	if err := r.s.checkCondition(0, *condition); err != nil {
		return 0, err
	}
	r.s.nextCondition++
	row := *condition
	row.ConditionID = r.s.nextCondition
	r.s.conditions[row.ConditionID] = row
	return row.ConditionID, nil
}

func (r *ConditionRepository) GetAll(ctx context.Context) ([]models.Condition, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.Condition{}
	for _, c := range r.s.conditions {
		out = append(out, c)
	}
	sortBy(out, func(a, b models.Condition) bool { return a.ConditionID < b.ConditionID })
	return out, nil
}

func (r *ConditionRepository) GetByID(ctx context.Context, id int64) (*models.Condition, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	c, ok := r.s.conditions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ConditionRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	fields = fields.Allowed(models.ConditionColumns)
	if len(fields) == 0 {
		return nil
	}
	r.s.writes++
	c, ok := r.s.conditions[id]
	if !ok {
		return nil
	}
	for column := range fields {
		v, ok := fields.String(column)
		if !ok {
			return typeError("card_condition", column, fields[column])
		}
		if column == "condition_code" {
			c.ConditionCode = v
		} else {
			c.Description = v
		}
	}
	if err := r.s.checkCondition(id, c); err != nil {
		return err
	}
	r.s.conditions[id] = c
	return nil
}

func (r *ConditionRepository) Delete(ctx context.Context, id int64) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	r.s.writes++
	for _, item := range r.s.items {
		if item.ConditionID == id {
			return violation(repositories.ForeignKeyViolation, "inventory_item_condition_id_fkey",
				"update or delete on table \"card_condition\" violates foreign key constraint \"inventory_item_condition_id_fkey\" on table \"inventory_item\"")
		}
	}
	delete(r.s.conditions, id)
	return nil
}

type InventoryRepository struct{ s *Store }

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) (int64, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return 0, err
	}

	r.s.writes++
	row := stripJoin(*item)
	if err := r.s.checkItem(row); err != nil {
		return 0, err
	}
	r.s.nextItem++
	row.ItemID = r.s.nextItem
	r.s.items[row.ItemID] = row
	return row.ItemID, nil
}

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.InventoryItem{}
	for _, item := range r.s.items {
		out = append(out, r.s.joinItem(item))
	}
	sortItems(out, true, r.s.sets, r.s.cards)
	return out, nil
}

func (r *InventoryRepository) GetBySet(ctx context.Context, setID int64) ([]models.InventoryItem, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	out := []models.InventoryItem{}
	for _, item := range r.s.items {
		if r.s.cards[item.CardID].SetID == setID {
			out = append(out, r.s.joinItem(item))
		}
	}
	sortItems(out, false, r.s.sets, r.s.cards)
	return out, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return nil, err
	}

	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *InventoryRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	fields = fields.Allowed(models.InventoryColumns)
	if len(fields) == 0 {
		return nil
	}
	r.s.writes++
	item, ok := r.s.items[id]
	if !ok {
		return nil
	}
	if err := applyInventoryFields(&item, fields); err != nil {
		return err
	}
	if err := r.s.checkItem(item); err != nil {
		return err
	}
	r.s.items[id] = item
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	err := r.s.begin(ctx)
	defer r.s.end()
	if err != nil {
		return err
	}

	r.s.writes++
	delete(r.s.items, id)
	return nil
}

func applyInventoryFields(item *models.InventoryItem, fields models.Fields) error {
	for column, raw := range fields {
		var ok bool
		switch column {
		case "card_id":
			item.CardID, ok = fields.Int64(column)
		case "condition_id":
			item.ConditionID, ok = fields.Int64(column)
		case "is_foil", "is_graded":
			var v int64
			v, ok = fields.Int64(column)
			if column == "is_foil" {
				item.IsFoil = models.Flag(v)
			} else {
				item.IsGraded = models.Flag(v)
			}
		case "quantity":
			var v int64
			v, ok = fields.Int64(column)
			item.Quantity = int(v)
		case "purchase_price":
			item.PurchasePrice, ok = fields.Float64(column)
		case "grade":
			item.Grade, ok = nullableFloat(fields, column)
		case "graded_company":
			item.GradedCompany, ok = nullableString(fields, column)
		case "purchase_date":
			item.PurchaseDate, ok = nullableString(fields, column)
		case "notes":
			item.Notes, ok = nullableString(fields, column)
		}
		if !ok {
			return typeError("inventory_item", column, raw)
		}
	}
	return nil
}

func nullableString(fields models.Fields, column string) (*string, bool) {
	if fields.IsNull(column) {
		return nil, true
	}
	v, ok := fields.String(column)
	if !ok {
		return nil, false
	}
	return &v, true
}

func nullableFloat(fields models.Fields, column string) (*float64, bool) {
	if fields.IsNull(column) {
		return nil, true
	}
	v, ok := fields.Float64(column)
	if !ok {
		return nil, false
	}
	return &v, true
}

func stripJoin(item models.InventoryItem) models.InventoryItem {
	item.CardName, item.CardNumber, item.Rarity = "", "", ""
	item.SetCode, item.SetName, item.ConditionCode = "", "", ""
	return item
}

func typeError(table, column string, v any) error {
	return fmt.Errorf("memstore: column %s.%s cannot hold %T", table, column, v)
}
