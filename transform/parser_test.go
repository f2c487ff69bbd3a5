package transform

import (
	"encoding/json"
	"strings"
	"testing"

	"h2f/design"
)

const bootstrapHead = `<head><link rel="stylesheet" href="bootstrap.min.css"></head>`

func parseTree(t *testing.T, text string) *design.Node {
	t.Helper()
	root, err := NewParser(nil).Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return root
}

func TestParseEmptyDocument(t *testing.T) {
	for _, text := range []string{"", "<p>", "no markup at all"} {
		root := parseTree(t, text)
		if root.Tag != "body" {
			t.Errorf("Parse(%q) root tag = %q, want body", text, root.Tag)
		}
	}

	// x/net/html synthesizes a body for almost anything, check the
	// constructed fallback shape on a genuinely body-less tree too
	root := parseTree(t, "")
	if len(root.Children) != 0 && root.Children == nil {
		t.Errorf("empty document children = %#v, want empty non-nil", root.Children)
	}
	if root.Classes == nil || root.Attributes == nil {
		t.Error("empty document root has nil collections")
	}
}

func TestParseBootstrapDocument(t *testing.T) {
	root := parseTree(t, `<html>`+bootstrapHead+`<body>
		<div class="d-flex align-items-center p-3" id="hero">
			<span class="fw-bold">Welcome</span>
		</div>
	</body></html>`)

	if root.Framework != design.FrameworkBootstrap {
		t.Fatalf("Framework = %v, want bootstrap", root.Framework)
	}
	if len(root.Children) != 1 {
		t.Fatalf("body children = %d, want 1", len(root.Children))
	}

	div := root.Children[0]
	if div.Tag != "div" || div.Framework != design.FrameworkBootstrap {
		t.Errorf("div = %q/%v", div.Tag, div.Framework)
	}
	if div.Attributes["id"] != "hero" {
		t.Errorf("attributes = %+v, want id kept", div.Attributes)
	}
	if _, ok := div.Attributes["class"]; ok {
		t.Error("class leaked into attributes")
	}
	if div.Figma.LayoutMode != design.LayoutHorizontal {
		t.Errorf("LayoutMode = %q, want HORIZONTAL", div.Figma.LayoutMode)
	}
	if div.Figma.CounterAxisAlignItems != design.AlignCenter {
		t.Errorf("CounterAxisAlignItems = %q, want CENTER", div.Figma.CounterAxisAlignItems)
	}
	if div.Figma.PaddingTop != 16 || div.Figma.PaddingLeft != 16 {
		t.Errorf("padding = %v/%v, want 16", div.Figma.PaddingTop, div.Figma.PaddingLeft)
	}

	span := div.Children[0]
	if span.Text == nil || *span.Text != "Welcome" {
		t.Errorf("span text = %v, want Welcome", span.Text)
	}
	if span.Figma.FontWeight != 700 {
		t.Errorf("span FontWeight = %v, want 700", span.Figma.FontWeight)
	}
}

func TestParseTableReplacesInlineStyles(t *testing.T) {
	// the framework table pass replaces whatever inline styles produced
	root := parseTree(t, `<html>`+bootstrapHead+`<body>
		<div class="p-3" style="color: #ff0000"></div>
	</body></html>`)

	div := root.Children[0]
	if len(div.Figma.Fills) != 0 {
		t.Errorf("Fills = %+v, want inline fill dropped by table resolution", div.Figma.Fills)
	}
	if div.Figma.PaddingTop != 16 {
		t.Errorf("PaddingTop = %v, want 16 from table", div.Figma.PaddingTop)
	}
	// raw declarations are still recorded on the node
	if div.Styles["color"] != "#ff0000" {
		t.Errorf("raw styles = %+v", div.Styles)
	}
}

func TestParseInlineStylesWithoutFramework(t *testing.T) {
	root := parseTree(t, `<html><body>
		<p style="font-size: 18px; line-height: 28px; color: #fff">text</p>
	</body></html>`)

	p := root.Children[0]
	if p.Figma.FontSize != 18 {
		t.Errorf("FontSize = %v, want 18", p.Figma.FontSize)
	}
	if p.Figma.LineHeight == nil || p.Figma.LineHeight.Unit != "PIXELS" || p.Figma.LineHeight.Value != 28 {
		t.Errorf("LineHeight = %+v, want PIXELS/28", p.Figma.LineHeight)
	}
	if len(p.Figma.Fills) != 1 || p.Figma.Fills[0].Color.R != 1 {
		t.Errorf("Fills = %+v, want white fill", p.Figma.Fills)
	}
}

func TestParseFontClassesSurviveTableReplace(t *testing.T) {
	// font classes are applied after the table pass and survive it
	root := parseTree(t, `<html><body>
		<div class="bg-slate-100"></div>
		<span class="font-bold text-lg">x</span>
	</body></html>`)

	if root.Framework != design.FrameworkTailwind {
		t.Fatalf("Framework = %v, want tailwind", root.Framework)
	}
	span := root.Children[1]
	if span.Figma.FontWeight != 700 {
		t.Errorf("FontWeight = %v, want 700", span.Figma.FontWeight)
	}
	if span.Figma.FontSize != 18 {
		t.Errorf("FontSize = %v, want text-lg from table", span.Figma.FontSize)
	}
}

func TestParseGenericDimensions(t *testing.T) {
	// w-<n>/h-<n> always resolve to n*4 pixels on non-image elements,
	// regardless of framework
	root := parseTree(t, `<html>`+bootstrapHead+`<body>
		<div class="w-25"></div>
	</body></html>`)

	div := root.Children[0]
	if div.Figma.Width == nil || div.Figma.Width.Pixels != 100 || div.Figma.Width.Literal != "" {
		t.Errorf("Width = %+v, want 100px", div.Figma.Width)
	}
}

func TestParseImageNode(t *testing.T) {
	root := parseTree(t, `<html><body>
		<img src="photo.png" alt="a photo" class="w-24">
	</body></html>`)

	img := root.Children[0]
	if img.Figma.ImageHash == "" || !strings.HasPrefix(img.Figma.ImageHash, "image-") {
		t.Errorf("ImageHash = %q", img.Figma.ImageHash)
	}
	if img.Figma.Constraints == nil || img.Figma.Constraints.Horizontal != design.ConstraintScale {
		t.Errorf("Constraints = %+v, want SCALE", img.Figma.Constraints)
	}
	if img.Figma.LayoutMode != design.LayoutNone {
		t.Errorf("LayoutMode = %q, want NONE", img.Figma.LayoutMode)
	}
	if img.Attributes["alt"] != "a photo" {
		t.Errorf("attributes = %+v", img.Attributes)
	}
	if img.Figma.Width == nil || img.Figma.Width.Pixels != 96 {
		t.Errorf("Width = %+v, want 96px", img.Figma.Width)
	}
}

func TestImageHashStable(t *testing.T) {
	a, b := ImageHash("photo.png"), ImageHash("photo.png")
	if a != b {
		t.Errorf("ImageHash not stable: %q vs %q", a, b)
	}
	if ImageHash("other.png") == a {
		t.Error("distinct sources share a hash")
	}
}

func TestParseTextLastNonBlankWins(t *testing.T) {
	root := parseTree(t, `<html><body>
		<div>first<span>inner</span>  second  <b>x</b>
		</div>
	</body></html>`)

	div := root.Children[0]
	if div.Text == nil || *div.Text != "second" {
		t.Errorf("Text = %v, want last non-blank text child", div.Text)
	}
	// element children are all kept alongside the text
	if len(div.Children) != 2 {
		t.Errorf("children = %d, want 2", len(div.Children))
	}
}

func TestParseSerializedTree(t *testing.T) {
	root := parseTree(t, `<html>`+bootstrapHead+`<body><div class="d-flex"><p>hi</p></div></body></html>`)

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"tag":"body"`) || !strings.Contains(s, `"layoutMode":"HORIZONTAL"`) {
		t.Errorf("serialized tree = %s", s)
	}
	if strings.Contains(s, "bootstrap") {
		t.Errorf("serialized tree leaks framework: %s", s)
	}

	var back design.Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.Count() != root.Count() {
		t.Errorf("round trip node count %d != %d", back.Count(), root.Count())
	}
}

func TestDocumentTitle(t *testing.T) {
	cases := []struct {
		name, html, want string
	}{
		{"present", `<html><head><title> My Page </title></head><body></body></html>`, "My Page"},
		{"absent", `<html><body></body></html>`, ""},
		{"empty", `<html><head><title></title></head><body></body></html>`, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DocumentTitle(c.html); got != c.want {
				t.Errorf("DocumentTitle() = %q, want %q", got, c.want)
			}
		})
	}
}
