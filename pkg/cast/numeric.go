package cast

import (
	"strconv"
	"strings"

	"github.com/aretw0/promptmenu/pkg/domain"
)

// Numeric turns a string into an int when possible, otherwise a float64, otherwise it
// leaves it unchanged. Surrounding whitespace is ignored and only decimal notation is
// accepted, so "0x10" and "0x1p4" stay strings. For a domain.Keyword only the value is recast.
type Numeric struct{}

func (Numeric) Cast(v any) (any, error) {
	switch t := v.(type) {
	case domain.Keyword:
		t.Value = toNumber(t.Value)
		return t, nil
	default:
		return toNumber(v), nil
	}
}

func toNumber(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	trimmed := strings.TrimSpace(s)
	if hasBasePrefix(trimmed) {
		return s
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}

func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
