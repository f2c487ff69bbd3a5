package styles

import (
	"testing"

	"h2f/css"
	"h2f/design"
)

func TestResolveTableBootstrap(t *testing.T) {
	r := NewResolver(nil)

	st := r.ResolveTable(design.FrameworkBootstrap, []string{"d-flex", "align-items-center", "p-3"})

	if st.LayoutMode != design.LayoutHorizontal {
		t.Errorf("LayoutMode = %q, want HORIZONTAL", st.LayoutMode)
	}
	if st.CounterAxisAlignItems != design.AlignCenter {
		t.Errorf("CounterAxisAlignItems = %q, want CENTER", st.CounterAxisAlignItems)
	}
	for name, v := range map[string]float64{
		"paddingTop": st.PaddingTop, "paddingBottom": st.PaddingBottom,
		"paddingLeft": st.PaddingLeft, "paddingRight": st.PaddingRight,
	} {
		if v != 16 {
			t.Errorf("%s = %v, want 16", name, v)
		}
	}
}

func TestResolveTableLaterClassWins(t *testing.T) {
	r := NewResolver(nil)

	// both classes set layoutMode, the later one in list order wins
	st := r.ResolveTable(design.FrameworkBootstrap, []string{"d-flex", "flex-column"})
	if st.LayoutMode != design.LayoutVertical {
		t.Errorf("LayoutMode = %q, want VERTICAL from later class", st.LayoutMode)
	}
}

func TestResolveTableUnknownClasses(t *testing.T) {
	r := NewResolver(nil)

	st := r.ResolveTable(design.FrameworkBootstrap, []string{"container", "row", "no-such-class"})
	if !st.IsZero() {
		t.Errorf("unknown classes produced styles: %s", st.String())
	}

	st = r.ResolveTable(design.FrameworkNone, []string{"d-flex"})
	if !st.IsZero() {
		t.Errorf("no framework produced styles: %s", st.String())
	}
}

func TestResolveTableTailwind(t *testing.T) {
	r := NewResolver(nil)

	st := r.ResolveTable(design.FrameworkTailwind, []string{"flex", "items-center", "gap-4", "rounded-xl"})
	if st.LayoutMode != design.LayoutHorizontal {
		t.Errorf("LayoutMode = %q, want HORIZONTAL", st.LayoutMode)
	}
	if st.CounterAxisAlignItems != design.AlignCenter || st.PrimaryAxisAlignItems != design.AlignCenter {
		t.Errorf("items-center alignment = %q/%q, want CENTER/CENTER", st.PrimaryAxisAlignItems, st.CounterAxisAlignItems)
	}
	if st.ItemSpacing != 16 {
		t.Errorf("ItemSpacing = %v, want 16", st.ItemSpacing)
	}
	if st.CornerRadius != 12 {
		t.Errorf("CornerRadius = %v, want 12", st.CornerRadius)
	}
}

func TestApplyFontClasses(t *testing.T) {
	r := NewResolver(nil)

	var st design.Styles
	r.ApplyFontClasses(&st, []string{"font-bold", "text-lg", "text-center"})
	if st.FontWeight != 700 {
		t.Errorf("FontWeight = %v, want 700", st.FontWeight)
	}
	if st.FontSize != 18 {
		t.Errorf("FontSize = %v, want 18", st.FontSize)
	}
	if st.TextAlign != "CENTER" {
		t.Errorf("TextAlign = %q, want CENTER", st.TextAlign)
	}

	// unknown weight keyword falls back to 400
	st = design.Styles{}
	r.ApplyFontClasses(&st, []string{"font-extrabold"})
	if st.FontWeight != 400 {
		t.Errorf("FontWeight = %v, want fallback 400", st.FontWeight)
	}

	// text-<n>xl sizes
	st = design.Styles{}
	r.ApplyFontClasses(&st, []string{"text-3xl"})
	if st.FontSize != 30 {
		t.Errorf("FontSize = %v, want 30", st.FontSize)
	}

	// semantic text colors are not sizes
	st = design.Styles{}
	r.ApplyFontClasses(&st, []string{"text-primary"})
	if st.FontSize != 0 {
		t.Errorf("FontSize = %v, want untouched", st.FontSize)
	}
}

func TestApplyTextColorClasses(t *testing.T) {
	r := NewResolver(nil)

	var st design.Styles
	r.ApplyTextColorClasses(&st, []string{"text-textPrimary", "text-warning"})
	if len(st.Fills) != 2 {
		t.Fatalf("Fills length = %d, want 2", len(st.Fills))
	}
	if st.Fills[0].Color.R != 0.1 || st.Fills[1].Color.R != 1 {
		t.Errorf("Fills = %+v, want textPrimary then warning", st.Fills)
	}
}

func TestApplyImageDimensions(t *testing.T) {
	r := NewResolver(nil)

	t.Run("tailwind numeric", func(t *testing.T) {
		var st design.Styles
		r.ApplyImageDimensions(&st, design.FrameworkTailwind, []string{"w-24", "h-12"})
		if st.Width == nil || st.Width.Pixels != 96 {
			t.Errorf("Width = %+v, want 96px", st.Width)
		}
		if st.Height == nil || st.Height.Pixels != 48 {
			t.Errorf("Height = %+v, want 48px", st.Height)
		}
	})

	t.Run("bootstrap numeric is percentage", func(t *testing.T) {
		var st design.Styles
		r.ApplyImageDimensions(&st, design.FrameworkBootstrap, []string{"w-25"})
		if st.Width == nil || st.Width.Literal != "25%" {
			t.Errorf("Width = %+v, want 25%%", st.Width)
		}
	})

	t.Run("literal classes win", func(t *testing.T) {
		var st design.Styles
		r.ApplyImageDimensions(&st, design.FrameworkTailwind, []string{"w-24", "w-full"})
		if st.Width == nil || st.Width.Literal != "100%" {
			t.Errorf("Width = %+v, want 100%%", st.Width)
		}

		st = design.Styles{}
		r.ApplyImageDimensions(&st, design.FrameworkTailwind, []string{"h-screen"})
		if st.Height == nil || st.Height.Literal != "100vh" {
			t.Errorf("Height = %+v, want 100vh", st.Height)
		}
	})

	t.Run("non numeric skipped", func(t *testing.T) {
		var st design.Styles
		r.ApplyImageDimensions(&st, design.FrameworkTailwind, []string{"w-auto", "h-fit"})
		if st.Width != nil || st.Height != nil {
			t.Errorf("non numeric classes produced dimensions: %+v", st)
		}
	})
}

func TestApplyGenericDimensions(t *testing.T) {
	r := NewResolver(nil)

	var st design.Styles
	r.ApplyGenericDimensions(&st, []string{"w-24", "h-6"})
	if st.Width == nil || st.Width.Pixels != 96 {
		t.Errorf("Width = %+v, want 96px", st.Width)
	}
	if st.Height == nil || st.Height.Pixels != 24 {
		t.Errorf("Height = %+v, want 24px", st.Height)
	}

	// scale is framework independent: w-25 is always 100px here, even when a
	// Bootstrap table pass produced a percentage earlier
	st = design.Styles{Width: design.Lit("25%")}
	r.ApplyGenericDimensions(&st, []string{"w-25"})
	if st.Width == nil || st.Width.Pixels != 100 || st.Width.Literal != "" {
		t.Errorf("Width = %+v, want 100px overwrite", st.Width)
	}
}

func TestApplyInlineFont(t *testing.T) {
	r := NewResolver(nil)

	var st design.Styles
	r.ApplyInlineFont(&st, map[string]css.Value{
		"font-size":   {Raw: "18.7px"},
		"font-weight": {Raw: "600"},
		"text-align":  {Raw: "right"},
		"line-height": {Raw: "28px"},
	})
	if st.FontSize != 18 {
		t.Errorf("FontSize = %v, want truncated 18", st.FontSize)
	}
	if st.FontWeight != 600 {
		t.Errorf("FontWeight = %v, want 600", st.FontWeight)
	}
	if st.TextAlign != "RIGHT" {
		t.Errorf("TextAlign = %q, want RIGHT", st.TextAlign)
	}
	if st.LineHeight == nil || st.LineHeight.Unit != "PIXELS" || st.LineHeight.Value != 28 {
		t.Errorf("LineHeight = %+v, want PIXELS/28", st.LineHeight)
	}

	// unconvertible properties are skipped without affecting others
	st = design.Styles{}
	r.ApplyInlineFont(&st, map[string]css.Value{
		"font-size":   {Raw: "large"},
		"font-weight": {Raw: "bold"},
		"text-align":  {Raw: "left"},
	})
	if st.FontSize != 0 || st.FontWeight != 0 {
		t.Errorf("keyword values converted unexpectedly: %+v", st)
	}
	if st.TextAlign != "LEFT" {
		t.Errorf("TextAlign = %q, want LEFT", st.TextAlign)
	}
}

func TestApplyInlineColors(t *testing.T) {
	r := NewResolver(nil)

	var st design.Styles
	r.ApplyInlineColors(&st, map[string]css.Value{
		"color":            {Raw: "#fff"},
		"background-color": {Raw: "rgb(0, 0, 0)"},
	})
	if len(st.Fills) != 1 || st.Fills[0].Color.R != 1 {
		t.Errorf("Fills = %+v, want white fill", st.Fills)
	}
	if len(st.Background) != 1 || st.Background[0].Color.R != 0 {
		t.Errorf("Background = %+v, want black background", st.Background)
	}

	// invalid color degrades to opaque black
	st = design.Styles{}
	r.ApplyInlineColors(&st, map[string]css.Value{"color": {Raw: "bogus"}})
	if len(st.Fills) != 1 || st.Fills[0].Color.R != 0 || st.Fills[0].Color.A == nil || *st.Fills[0].Color.A != 1 {
		t.Errorf("Fills = %+v, want opaque black fallback", st.Fills)
	}
}
