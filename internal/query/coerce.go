package query

import (
	"strconv"
	"strings"
)

// Value is a coerced cell: numeric when the text parses as a float, text
// otherwise. Text always holds the trimmed original so string comparisons
// see the same form regardless of which branch was taken.
type Value struct {
	Num     float64
	Text    string
	Numeric bool
}

// Coerce converts a raw cell into a Value.
//
// The cell is trimmed and parsed as a base-10 float (sign and decimal point
// allowed). Coerce never fails: anything unparsable is text. No
// locale-specific decimal separators.
func Coerce(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{Num: num, Text: trimmed, Numeric: true}
	}
	return Value{Text: trimmed}
}
