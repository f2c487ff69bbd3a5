package styles

import (
	"h2f/design"
)

// bootstrapTable maps Bootstrap utility classes to design style patches.
// Spacing and radius values assume the Bootstrap scale of 1rem = 16px; the
// pixel numbers are baked into the patches, never computed.
var bootstrapTable = map[string]design.Styles{
	// Layout
	"d-flex":                 {LayoutMode: design.LayoutHorizontal, PrimaryAxisAlignItems: design.AlignMin, CounterAxisAlignItems: design.AlignMin},
	"flex-column":            {LayoutMode: design.LayoutVertical, PrimaryAxisAlignItems: design.AlignMin, CounterAxisAlignItems: design.AlignMin},
	"align-items-center":     {CounterAxisAlignItems: design.AlignCenter},
	"justify-content-center": {PrimaryAxisAlignItems: design.AlignCenter},
	"gap-3":                  {ItemSpacing: 16},

	// Sizing
	"w-100":  {Constraints: &design.Constraints{Horizontal: design.ConstraintScale, Vertical: design.ConstraintScale}, MinWidth: design.FloatPtr(0)},
	"h-25":   {Height: design.Lit("25%")},
	"mw-100": {MaxWidth: design.Lit("100%")},

	// Spacing
	"p-3":  {PaddingTop: 16, PaddingBottom: 16, PaddingLeft: 16, PaddingRight: 16},
	"py-2": {PaddingTop: 8, PaddingBottom: 8},
	"px-4": {PaddingLeft: 24, PaddingRight: 24},
	"mb-4": {MarginBottom: 24},

	// Typography
	"fs-4":       {FontSize: 24, LineHeight: &design.LineHeight{Value: 32}},
	"fs-6":       {FontSize: 16, LineHeight: &design.LineHeight{Value: 24}},
	"fw-bold":    {FontWeight: 700},
	"text-white": {Fills: []design.Paint{design.SolidPaint(design.RGB(1, 1, 1))}},

	// Background
	"bg-primary": {Fills: []design.Paint{design.SolidPaint(design.RGB(0.13, 0.53, 0.96))}},
	"bg-light":   {Fills: []design.Paint{design.SolidPaint(design.RGB(0.96, 0.96, 0.96))}},

	// Borders
	"border":    {Strokes: []design.Paint{design.SolidPaint(design.RGB(0.9, 0.9, 0.9))}, StrokeWeight: 1},
	"rounded":   {CornerRadius: 4},
	"rounded-3": {CornerRadius: 16},

	// Shadows
	"shadow-sm": {Effects: []design.Effect{{
		Type:   "DROP_SHADOW",
		Color:  design.RGBA(0, 0, 0, 0.1),
		Offset: design.Offset{X: 0, Y: 1},
		Radius: 2,
	}}},

	// Positioning
	"position-absolute": {Positioning: design.PositioningAbsolute},
	"top-0":             {Y: design.FloatPtr(0)},
	"start-0":           {X: design.FloatPtr(0)},
}
