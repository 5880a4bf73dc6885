package repositories

import (
	"fmt"
	"strings"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

// buildUpdate renders a parameterized UPDATE for the allow-listed subset of
// fields. Column names in the statement come from allowed, never from the
// caller's map keys. ok is false when nothing remains to update.
func buildUpdate(table, keyColumn string, id int64, fields models.Fields, allowed []string) (query string, args []any, ok bool) {
	var sets []string
	for _, column := range allowed {
		if !fields.Has(column) {
			continue
		}
		args = append(args, dbValue(fields, column))
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, id)
	query = fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(sets, ", "), keyColumn, len(args))
	return query, args, true
}

// integerColumns hold whole numbers; JSON decoding delivers them as float64.
var integerColumns = map[string]bool{
	"set_id":       true,
	"card_id":      true,
	"condition_id": true,
	"is_foil":      true,
	"is_graded":    true,
	"quantity":     true,
}

func dbValue(fields models.Fields, column string) any {
	v := fields[column]
	if integerColumns[column] {
		if n, ok := fields.Int64(column); ok {
			return n
		}
		return v
	}
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	}
	return v
}
