package css

import (
	"regexp"
	"strconv"
	"strings"

	"h2f/design"
)

// Recognized color syntax: #RGB, #RGBA, #RRGGBB, #RRGGBBAA and the
// rgb()/rgba() functional notation. Anything else gets the neutral fallback.
var (
	hexColorPattern = regexp.MustCompile(`^#([a-fA-F0-9]{3,4}|[a-fA-F0-9]{6}|[a-fA-F0-9]{8})$`)
	rgbColorPattern = regexp.MustCompile(`^rgba?\((\d+),\s*(\d+),\s*(\d+)(?:,\s*([\d.]+))?\)$`)
	numberPattern   = regexp.MustCompile(`[\d.]+`)
)

// NormalizeColor converts a CSS color string to a normalized color record
// with channels in the [0,1] range. Strings matching neither supported
// pattern yield opaque black rather than an error: a wrong color is better
// than a lost node.
func NormalizeColor(color string) design.Color {
	color = strings.TrimSpace(color)

	if m := hexColorPattern.FindStringSubmatch(color); m != nil {
		return hexToColor(m[1])
	}
	if rgbColorPattern.MatchString(color) {
		return rgbToColor(color)
	}
	return design.RGBA(0, 0, 0, 1)
}

// hexToColor expands short hex forms by digit duplication and extracts 8-bit
// channel pairs. Alpha defaults to 1 unless the form carries an alpha byte.
func hexToColor(hex string) design.Color {
	switch len(hex) {
	case 3:
		hex = duplicate(hex)
	case 4:
		hex = duplicate(hex[:3]) + strings.Repeat(string(hex[3]), 2)
	}

	channel := func(i int) float64 {
		v, _ := strconv.ParseInt(hex[i:i+2], 16, 64)
		return float64(v) / 255
	}

	a := 1.0
	if len(hex) > 6 {
		a = channel(6)
	}
	return design.RGBA(channel(0), channel(2), channel(4), a)
}

func duplicate(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, c := range s {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

// rgbToColor extracts the numeric tokens of an rgb()/rgba() value. Three
// tokens mean alpha defaults to 1; a fourth token is the explicit alpha and
// is taken as is (already fractional in CSS).
func rgbToColor(color string) design.Color {
	var parts []float64
	for _, tok := range numberPattern.FindAllString(color, -1) {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			parts = append(parts, f)
		}
	}

	switch len(parts) {
	case 3:
		return design.RGBA(parts[0]/255, parts[1]/255, parts[2]/255, 1)
	case 4:
		return design.RGBA(parts[0]/255, parts[1]/255, parts[2]/255, parts[3])
	}
	return design.RGBA(0, 0, 0, 1)
}
