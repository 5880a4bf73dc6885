package models

// Condition matches the card_condition lookup table (NM, LP, ...).
type Condition struct {
	ConditionID   int64  `json:"condition_id"`
	ConditionCode string `json:"condition_code"`
	Description   string `json:"description"`
}

// ConditionColumns are the card_condition columns a partial update may touch.
var ConditionColumns = []string{"condition_code", "description"}
