package models

// CardSet matches the card_set table.
type CardSet struct {
	SetID       int64  `json:"set_id"`
	SetCode     string `json:"set_code"`
	SetName     string `json:"set_name"`
	ReleaseDate string `json:"release_date"`
	Era         string `json:"era"`
}

// SetColumns are the card_set columns a partial update may touch.
var SetColumns = []string{"set_code", "set_name", "release_date", "era"}
