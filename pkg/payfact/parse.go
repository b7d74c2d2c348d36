package payfact

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount reads a money amount from a JSON number or a string. In strings
// all whitespace is ignored; when both separators appear the dot is decimal
// and commas group thousands, when only a comma appears it is decimal.
func ParseAmount(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		return ParseAmount(x.String())
	case string:
		return parseDecimal(x)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseLessonCount reads a lesson counter and truncates it toward zero.
// Negative values are kept: they represent lessons taken on credit. Values
// outside the int range are rejected.
func ParseLessonCount(v any) (int, bool) {
	f, ok := ParseAmount(v)
	if !ok {
		return 0, false
	}
	n := math.Trunc(f)
	if n < math.MinInt || n >= math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func parseDecimal(s string) (float64, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
