package console

import "strings"

var rarityAliases = map[string]string{
	"common":      "Common",
	"uncommon":    "Uncommon",
	"rare":        "Rare",
	"double rare": "Double Rare",
	"ultra rare":  "Ultra Rare",
	"ir":          "IR",
	"sir":         "SIR",
	"hyper rare":  "Hyper Rare",
	"promo":       "Promo",
}

var cardTypeAliases = map[string]string{
	"pokemon": "Pokémon",
	"pokémon": "Pokémon",
	"trainer": "Trainer",
	"energy":  "Energy",
}

// normalizeRarity maps case-insensitive input onto the stored spelling.
// Unknown input is returned trimmed and left for validation to reject.
func normalizeRarity(s string) string {
	return normalize(rarityAliases, s)
}

func normalizeCardType(s string) string {
	return normalize(cardTypeAliases, s)
}

func normalize(aliases map[string]string, s string) string {
	s = strings.TrimSpace(s)
	if v, ok := aliases[strings.ToLower(s)]; ok {
		return v
	}
	return s
}
