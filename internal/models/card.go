package models

// Card matches the card table. SetCode and SetName are only filled by
// listings that join card_set.
type Card struct {
	CardID     int64  `json:"card_id"`
	SetID      int64  `json:"set_id"`
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Rarity     string `json:"rarity"`
	CardType   string `json:"card_type"`

	SetCode string `json:"set_code,omitempty"`
	SetName string `json:"set_name,omitempty"`
}

// CardColumns are the card columns a partial update may touch.
var CardColumns = []string{"set_id", "card_number", "card_name", "rarity", "card_type"}

// Rarities is the closed list accepted by the card.rarity CHECK constraint.
// Values are case-sensitive.
var Rarities = []string{
	"Common",
	"Uncommon",
	"Rare",
	"Double Rare",
	"Ultra Rare",
	"IR",
	"SIR",
	"Hyper Rare",
	"Promo",
}

// CardTypes is the closed list accepted by the card.card_type CHECK constraint.
var CardTypes = []string{"Pokémon", "Trainer", "Energy"}
