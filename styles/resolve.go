// Package styles resolves utility class lists and inline CSS declarations
// into design style bags. Only an explicit allow-list of Bootstrap and
// Tailwind classes is recognized; everything else is silently ignored.
package styles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"h2f/css"
	"h2f/design"
)

// Resolver converts class lists and inline declarations into design styles.
type Resolver struct {
	log *zap.Logger
}

// NewResolver creates a style resolver.
func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{log: log.Named("styles")}
}

// ResolveTable resolves a class list against the table of the given
// framework. Classes are visited in list order; for every class present in
// the table its patch is merged into the accumulator, later patches
// overwriting colliding keys. Unknown classes contribute nothing.
func (r *Resolver) ResolveTable(fw design.Framework, classes []string) design.Styles {
	var table map[string]design.Styles
	switch fw {
	case design.FrameworkBootstrap:
		table = bootstrapTable
	case design.FrameworkTailwind:
		table = tailwindTable
	default:
		return design.Styles{}
	}

	var acc design.Styles
	for _, cls := range classes {
		if patch, ok := table[cls]; ok {
			acc.Merge(patch)
		}
	}
	return acc
}

var (
	fontSizePattern  = regexp.MustCompile(`^text-(xs|sm|base|lg|xl|2xl|3xl|4xl|5xl|6xl)$`)
	dimensionPattern = regexp.MustCompile(`^([wh])-(\d+)$`)
)

var fontWeights = map[string]float64{
	"light":    300,
	"normal":   400,
	"medium":   500,
	"semibold": 600,
	"bold":     700,
}

var fontSizes = map[string]float64{
	"xs": 12, "sm": 14, "base": 16, "lg": 18,
	"xl": 20, "2xl": 24, "3xl": 30, "4xl": 36,
	"5xl": 48, "6xl": 60,
}

// ApplyFontClasses merges font weight, font size and text alignment classes
// into the style bag. Any "font-" prefixed class sets a weight: the keyword
// after the last dash is looked up and unknown keywords default to 400.
// Sizes set no line height, that only comes from inline styles.
func (r *Resolver) ApplyFontClasses(st *design.Styles, classes []string) {
	for _, cls := range classes {
		if strings.HasPrefix(cls, "font-") {
			keyword := cls[strings.LastIndex(cls, "-")+1:]
			weight, ok := fontWeights[keyword]
			if !ok {
				weight = 400
			}
			st.FontWeight = weight
		}

		if m := fontSizePattern.FindStringSubmatch(cls); m != nil {
			st.FontSize = fontSizes[m[1]]
		}

		switch cls {
		case "text-left", "text-center", "text-right", "text-justify":
			st.TextAlign = strings.ToUpper(cls[strings.LastIndex(cls, "-")+1:])
		}
	}
}

// textColorClasses is the fixed allow-list of semantic text color classes.
var textColorClasses = map[string]design.Color{
	"text-textPrimary":   design.RGB(0.1, 0.1, 0.1),
	"text-textSecondary": design.RGB(0.4, 0.4, 0.4),
	"text-primary":       design.RGB(0, 0.47, 1),
	"text-warning":       design.RGB(1, 0.8, 0),
}

// ApplyTextColorClasses appends a solid fill for every recognized semantic
// color class, in class list order.
func (r *Resolver) ApplyTextColorClasses(st *design.Styles, classes []string) {
	for _, cls := range classes {
		if c, ok := textColorClasses[cls]; ok {
			st.AppendFill(design.SolidPaint(c))
		}
	}
}

// imageDimensionLiterals maps special width/height classes directly to their
// CSS literal values, for both Tailwind and Bootstrap.
var imageDimensionLiterals = map[string]string{
	// Tailwind
	"w-full":   "100%",
	"w-screen": "100vw",
	"h-full":   "100%",
	"h-screen": "100vh",
	// Bootstrap
	"w-100": "100%",
	"h-100": "100%",
}

// ApplyImageDimensions resolves width/height classes on image nodes. Numeric
// classes are converted per framework first (Tailwind and undetected: N*4
// pixels, Bootstrap: "N%"), then the special literal classes are applied and
// win on conflict. Non-numeric suffixes like w-auto are skipped.
func (r *Resolver) ApplyImageDimensions(st *design.Styles, fw design.Framework, classes []string) {
	for _, cls := range classes {
		if !strings.HasPrefix(cls, "w-") && !strings.HasPrefix(cls, "h-") {
			continue
		}
		n, err := strconv.Atoi(strings.Split(cls, "-")[1])
		if err != nil {
			continue
		}

		var d *design.Dimension
		if fw == design.FrameworkBootstrap {
			d = design.Lit(fmt.Sprintf("%d%%", n))
		} else {
			d = design.Px(float64(n * 4))
		}

		if strings.HasPrefix(cls, "w-") {
			st.Width = d
		} else {
			st.Height = d
		}
	}

	for _, cls := range classes {
		lit, ok := imageDimensionLiterals[cls]
		if !ok {
			continue
		}
		if strings.HasPrefix(cls, "w-") {
			st.Width = design.Lit(lit)
		} else {
			st.Height = design.Lit(lit)
		}
	}
}

// ApplyGenericDimensions resolves w-<n>/h-<n> classes on any element using
// the Tailwind scale of 1 unit = 4px regardless of the detected framework.
// It runs after table resolution and overwrites whatever width/height the
// earlier framework-aware pass produced, so under Bootstrap a percentage
// computed there is replaced with a pixel value. Callers depend on this
// ordering, do not change it.
func (r *Resolver) ApplyGenericDimensions(st *design.Styles, classes []string) {
	for _, cls := range classes {
		m := dimensionPattern.FindStringSubmatch(cls)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[2])
		d := design.Px(float64(n * 4))
		if m[1] == "w" {
			st.Width = d
		} else {
			st.Height = d
		}
	}
}

// ApplyInlineFont maps font related inline CSS properties into the style
// bag: font-size (whole pixels), font-weight (integer), text-align
// (uppercased) and line-height (pixel record). A conversion failure for one
// property is logged and skipped without affecting the others.
func (r *Resolver) ApplyInlineFont(st *design.Styles, props map[string]css.Value) {
	if v, ok := props["font-size"]; ok {
		if px, err := v.Pixels(); err == nil {
			st.FontSize = float64(px)
		} else {
			r.log.Debug("unable to convert font-size", zap.String("value", v.Raw), zap.Error(err))
		}
	}
	if v, ok := props["font-weight"]; ok {
		if w, err := v.Int(); err == nil {
			st.FontWeight = float64(w)
		} else {
			r.log.Debug("unable to convert font-weight", zap.String("value", v.Raw), zap.Error(err))
		}
	}
	if v, ok := props["text-align"]; ok {
		st.TextAlign = strings.ToUpper(v.Raw)
	}
	if v, ok := props["line-height"]; ok {
		if px, err := v.Pixels(); err == nil {
			st.LineHeight = &design.LineHeight{Unit: "PIXELS", Value: float64(px)}
		} else {
			r.log.Debug("unable to convert line-height", zap.String("value", v.Raw), zap.Error(err))
		}
	}
}

// ApplyInlineColors appends solid paints for inline color and
// background-color declarations. Unparseable colors degrade to opaque black
// inside the normalizer, never to an error.
func (r *Resolver) ApplyInlineColors(st *design.Styles, props map[string]css.Value) {
	if v, ok := props["color"]; ok {
		st.AppendFill(design.SolidPaint(css.NormalizeColor(v.Raw)))
	}
	if v, ok := props["background-color"]; ok {
		st.AppendBackground(design.SolidPaint(css.NormalizeColor(v.Raw)))
	}
}
