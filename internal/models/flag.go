package models

import (
	"bytes"
	"fmt"
)

// Flag is a 0/1 boolean column. It encodes as a JSON number and decodes from
// either a number (0 or 1) or a JSON boolean.
type Flag int

const (
	No  Flag = 0
	Yes Flag = 1
)

func FlagOf(b bool) Flag {
	if b {
		return Yes
	}
	return No
}

func (f Flag) Bool() bool { return f == Yes }

func (f Flag) Valid() bool { return f == No || f == Yes }

func (f Flag) MarshalJSON() ([]byte, error) {
	if f == Yes {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "0", "false", "null":
		*f = No
	case "1", "true":
		*f = Yes
	default:
		return fmt.Errorf("flag must be 0, 1, true or false, got %s", data)
	}
	return nil
}
