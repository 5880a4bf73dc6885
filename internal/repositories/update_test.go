package repositories

import (
	"reflect"
	"testing"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

func TestBuildUpdate(t *testing.T) {
	company := "PSA"
	tests := []struct {
		name      string
		table     string
		key       string
		fields    models.Fields
		allowed   []string
		wantOK    bool
		wantQuery string
		wantArgs  []any
	}{
		{
			name:    "empty fields is a no-op",
			fields:  models.Fields{},
			allowed: models.SetColumns,
			wantOK:  false,
		},
		{
			name:    "unknown fields only is a no-op",
			fields:  models.Fields{"set_id": 9, "owner; DROP TABLE card_set": "x"},
			allowed: models.SetColumns,
			wantOK:  false,
		},
		{
			name:      "allow-list order drives column order",
			table:     "card_set",
			key:       "set_id",
			fields:    models.Fields{"era": "Scarlet & Violet", "set_code": "SV1", "bogus": 1},
			allowed:   models.SetColumns,
			wantOK:    true,
			wantQuery: "UPDATE card_set SET set_code = $1, era = $2 WHERE set_id = $3",
			wantArgs:  []any{"SV1", "Scarlet & Violet", int64(7)},
		},
		{
			name:      "json numbers bind as integers",
			table:     "inventory_item",
			key:       "item_id",
			fields:    models.Fields{"quantity": float64(5), "purchase_price": float64(12)},
			allowed:   models.InventoryColumns,
			wantOK:    true,
			wantQuery: "UPDATE inventory_item SET quantity = $1, purchase_price = $2 WHERE item_id = $3",
			wantArgs:  []any{int64(5), float64(12), int64(7)},
		},
		{
			name:      "flags and nulls are converted",
			table:     "inventory_item",
			key:       "item_id",
			fields:    models.Fields{"is_graded": models.Yes, "graded_company": &company, "grade": nil},
			allowed:   models.InventoryColumns,
			wantOK:    true,
			wantQuery: "UPDATE inventory_item SET is_graded = $1, graded_company = $2, grade = $3 WHERE item_id = $4",
			wantArgs:  []any{int64(1), "PSA", nil, int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, ok := buildUpdate(tt.table, tt.key, 7, tt.fields, tt.allowed)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if query != tt.wantQuery {
				t.Errorf("query mismatch\nwant %s\n got %s", tt.wantQuery, query)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args mismatch: want %#v, got %#v", tt.wantArgs, args)
			}
		})
	}
}
