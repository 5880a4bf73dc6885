package models

import "testing"

func TestFieldsAllowed(t *testing.T) {
	f := Fields{"set_code": "SV1", "set_id": 3, "bogus": true}
	got := f.Allowed(SetColumns)
	if len(got) != 1 || got["set_code"] != "SV1" {
		t.Errorf("unexpected allowed subset %v", got)
	}
	if _, ok := f["bogus"]; !ok {
		t.Error("Allowed must not modify the receiver")
	}
}

func TestFieldsAccessors(t *testing.T) {
	company := "PSA"
	var missing *string
	f := Fields{
		"quantity":       float64(4),
		"grade":          float64(8.5),
		"is_foil":        true,
		"is_graded":      Yes,
		"graded_company": &company,
		"notes":          missing,
		"purchase_date":  nil,
	}

	if v, ok := f.Int64("quantity"); !ok || v != 4 {
		t.Errorf("quantity: got %d %v", v, ok)
	}
	if _, ok := f.Int64("grade"); ok {
		t.Error("fractional number must not read as an integer")
	}
	if v, ok := f.Int64("is_foil"); !ok || v != 1 {
		t.Errorf("is_foil: got %d %v", v, ok)
	}
	if v, ok := f.Int64("is_graded"); !ok || v != 1 {
		t.Errorf("is_graded: got %d %v", v, ok)
	}
	if v, ok := f.String("graded_company"); !ok || v != "PSA" {
		t.Errorf("graded_company: got %q %v", v, ok)
	}
	if v, ok := f.Float64("grade"); !ok || v != 8.5 {
		t.Errorf("grade: got %v %v", v, ok)
	}
	if !f.IsNull("notes") || !f.IsNull("purchase_date") {
		t.Error("nil pointer and nil must both read as null")
	}
	if f.IsNull("absent") || f.Has("absent") {
		t.Error("absent key must be neither null nor present")
	}
}

func TestFieldsInt64Range(t *testing.T) {
	cases := []struct {
		value float64
		ok    bool
	}{
		{-9223372036854775808, true},
		{1 << 62, true},
		{1e19, false},
		{-1e19, false},
		{9223372036854775807, false},
	}
	for _, tc := range cases {
		f := Fields{"quantity": tc.value}
		if _, ok := f.Int64("quantity"); ok != tc.ok {
			t.Errorf("%g: expected ok=%v, got %v", tc.value, tc.ok, ok)
		}
	}
}

func TestFieldsDropNulls(t *testing.T) {
	f := Fields{"quantity": nil, "set_code": nil, "notes": nil, "grade": 9.0}
	got := f.DropNulls(NullableColumns)
	if got.Has("quantity") || got.Has("set_code") {
		t.Errorf("nulls on non-nullable columns must be dropped, got %v", got)
	}
	if !got.IsNull("notes") || !got.Has("grade") {
		t.Errorf("nullable null and non-null values must survive, got %v", got)
	}
}
