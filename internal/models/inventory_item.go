package models

// InventoryItem matches the inventory_item table. The trailing fields are
// populated only by listings joining card, card_set and card_condition.
type InventoryItem struct {
	ItemID        int64    `json:"item_id"`
	CardID        int64    `json:"card_id"`
	ConditionID   int64    `json:"condition_id"`
	IsFoil        Flag     `json:"is_foil"`
	IsGraded      Flag     `json:"is_graded"`
	GradedCompany *string  `json:"graded_company"`
	Grade         *float64 `json:"grade"`
	Quantity      int      `json:"quantity"`
	PurchasePrice float64  `json:"purchase_price"`
	PurchaseDate  *string  `json:"purchase_date"`
	Notes         *string  `json:"notes"`

	CardName      string `json:"card_name,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
	Rarity        string `json:"rarity,omitempty"`
	SetCode       string `json:"set_code,omitempty"`
	SetName       string `json:"set_name,omitempty"`
	ConditionCode string `json:"condition_code,omitempty"`
}

// InventoryColumns are the inventory_item columns a partial update may touch.
var InventoryColumns = []string{
	"card_id",
	"condition_id",
	"is_foil",
	"is_graded",
	"graded_company",
	"grade",
	"quantity",
	"purchase_price",
	"purchase_date",
	"notes",
}

// NullableColumns are the inventory_item columns that accept an explicit null.
var NullableColumns = []string{"graded_company", "grade", "purchase_date", "notes"}

// Column defaults applied when the caller omits them.
const (
	DefaultQuantity      = 1
	DefaultPurchasePrice = 0.0
)
