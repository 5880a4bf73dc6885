package models

import (
	"math"
	"slices"
)

// Fields is a partial update: column name to new value. A nil value writes
// NULL. Keys outside an entity's column allow-list are ignored.
type Fields map[string]any

// Allowed returns the subset of f whose keys appear in columns.
func (f Fields) Allowed(columns []string) Fields {
	out := Fields{}
	for _, c := range columns {
		if v, ok := f[c]; ok {
			out[c] = v
		}
	}
	return out
}

// DropNulls removes nil values for every key not listed in nullable.
func (f Fields) DropNulls(nullable []string) Fields {
	for k, v := range f {
		if v == nil && !slices.Contains(nullable, k) {
			delete(f, k)
		}
	}
	return f
}

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// IsNull reports whether name is present and set to nil or a nil pointer.
func (f Fields) IsNull(name string) bool {
	v, ok := f[name]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case *string:
		return t == nil
	case *float64:
		return t == nil
	}
	return false
}

func (f Fields) String(name string) (string, bool) {
	switch v := f[name].(type) {
	case string:
		return v, true
	case *string:
		if v != nil {
			return *v, true
		}
	}
	return "", false
}

func (f Fields) Int64(name string) (int64, bool) {
	switch v := f[name].(type) {
	case int:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case Flag:
		return int64(v), true
	case bool:
		return int64(FlagOf(v)), true
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

func (f Fields) Float64(name string) (float64, bool) {
	switch v := f[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *float64:
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}
