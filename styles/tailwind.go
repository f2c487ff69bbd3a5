package styles

import (
	"h2f/design"
)

// tailwindTable maps Tailwind utility classes to design style patches.
// Tailwind spacing uses 1 unit = 4px; the pixel numbers are baked into the
// patches, never computed.
var tailwindTable = map[string]design.Styles{
	// Layout
	"flex":           {LayoutMode: design.LayoutHorizontal, PrimaryAxisAlignItems: design.AlignMin, CounterAxisAlignItems: design.AlignMin},
	"flex-col":       {LayoutMode: design.LayoutVertical, PrimaryAxisAlignItems: design.AlignMin, CounterAxisAlignItems: design.AlignMin},
	"items-center":   {PrimaryAxisAlignItems: design.AlignCenter, CounterAxisAlignItems: design.AlignCenter},
	"justify-center": {PrimaryAxisAlignItems: design.AlignCenter},
	"gap-4":          {ItemSpacing: 16},

	// Sizing
	"w-full":       {Constraints: &design.Constraints{Horizontal: design.ConstraintScale, Vertical: design.ConstraintScale}, MinWidth: design.FloatPtr(0)},
	"h-24":         {Height: design.Px(96)},
	"w-24":         {Width: design.Px(96)},
	"min-w-[72px]": {MinWidth: design.FloatPtr(72)},

	// Spacing
	"p-4":  {PaddingTop: 16, PaddingBottom: 16, PaddingLeft: 16, PaddingRight: 16},
	"py-2": {PaddingTop: 8, PaddingBottom: 8},
	"px-3": {PaddingLeft: 12, PaddingRight: 12},
	"mb-4": {MarginBottom: 16},

	// Typography
	"text-lg":          {FontSize: 18, LineHeight: &design.LineHeight{Value: 28}},
	"text-sm":          {FontSize: 14, LineHeight: &design.LineHeight{Value: 20}},
	"font-semibold":    {FontWeight: 600},
	"text-textPrimary": {Fills: []design.Paint{design.SolidPaint(design.RGB(0.1, 0.1, 0.1))}},

	// Background
	"bg-surface":    {Fills: []design.Paint{design.SolidPaint(design.RGB(1, 1, 1))}},
	"bg-primary/10": {Fills: []design.Paint{{Type: "SOLID", Color: design.RGB(0.9, 0.9, 0.9), Opacity: design.FloatPtr(0.1)}}},

	// Borders
	"border":     {Strokes: []design.Paint{design.SolidPaint(design.RGB(0.9, 0.9, 0.9))}, StrokeWeight: 1},
	"rounded-xl": {CornerRadius: 12},
	"rounded-lg": {CornerRadius: 8},

	// Shadows
	"shadow-sm": {Effects: []design.Effect{{
		Type:   "DROP_SHADOW",
		Color:  design.RGBA(0, 0, 0, 0.1),
		Offset: design.Offset{X: 0, Y: 1},
		Radius: 2,
	}}},

	// Positioning
	"absolute": {Positioning: design.PositioningAbsolute},
	"top-3":    {Y: design.FloatPtr(12)},
	"left-3":   {X: design.FloatPtr(12)},
}
