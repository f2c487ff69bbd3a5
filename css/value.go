// Package css parses inline CSS declaration lists and normalizes CSS color
// and length values for the design transformer.
package css

import (
	"strconv"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "center", etc.
}

// IsNumeric returns true if the value has a numeric component. Explicit zero
// values like "0" or "0px" count as numeric.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		first := rune(v.Raw[0])
		if unicode.IsDigit(first) || first == '.' || first == '-' || first == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword with no numeric component.
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Pixels converts the value to a whole pixel count the way browsers hand
// pixel lengths to scripts: strip the unit, truncate the fraction. Unitless
// numbers are accepted as pixels. Returns an error for anything that does
// not start with a number.
func (v Value) Pixels() (int, error) {
	raw := strings.TrimSpace(v.Raw)
	raw = strings.TrimSuffix(raw, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Int converts the value to an integer, for properties like font-weight.
func (v Value) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(v.Raw))
}

// parseDimension extracts numeric value and unit from a dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
