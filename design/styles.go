package design

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Layout mode values.
const (
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
	LayoutNone       = "NONE"
)

// Axis alignment values.
const (
	AlignMin    = "MIN"
	AlignCenter = "CENTER"
)

// Constraint values.
const ConstraintScale = "SCALE"

// Positioning values.
const PositioningAbsolute = "ABSOLUTE"

// Color is a normalized color record with channels in the [0,1] range. Alpha
// is optional: framework table patches carry plain RGB triples while the
// color normalizer always produces an explicit alpha.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// RGBA constructs a color with an explicit alpha channel.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: &a}
}

// RGB constructs a color without an alpha channel.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Paint is a single solid fill, background or stroke entry.
type Paint struct {
	Type    string   `json:"type"`
	Color   Color    `json:"color"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// SolidPaint constructs a SOLID paint with the given color.
func SolidPaint(c Color) Paint {
	return Paint{Type: "SOLID", Color: c}
}

// Offset is a 2D effect offset.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect describes a visual effect such as a drop shadow.
type Effect struct {
	Type   string  `json:"type"`
	Color  Color   `json:"color"`
	Offset Offset  `json:"offset"`
	Radius float64 `json:"radius"`
}

// Constraints describes how a node scales within its parent.
type Constraints struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
}

// Dimension is a width/height value: either a pixel count or a literal CSS
// string such as "100%" or "100vw". A set Literal takes precedence when
// serializing.
type Dimension struct {
	Pixels  float64
	Literal string
}

// Px constructs a pixel dimension.
func Px(v float64) *Dimension {
	return &Dimension{Pixels: v}
}

// Lit constructs a literal string dimension.
func Lit(s string) *Dimension {
	return &Dimension{Literal: s}
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if d.Literal != "" {
		return json.Marshal(d.Literal)
	}
	if d.Pixels == math.Trunc(d.Pixels) {
		return []byte(strconv.FormatInt(int64(d.Pixels), 10)), nil
	}
	return json.Marshal(d.Pixels)
}

func (d *Dimension) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		return json.Unmarshal(data, &d.Literal)
	}
	d.Literal = ""
	return json.Unmarshal(data, &d.Pixels)
}

// LineHeight is either a plain number (framework table entries) or a unit
// record produced from inline styles. Unit is empty for the plain form.
type LineHeight struct {
	Unit  string
	Value float64
}

// lineHeightRecord is the serialized form of a unit line height.
type lineHeightRecord struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

func (lh LineHeight) MarshalJSON() ([]byte, error) {
	if lh.Unit == "" {
		if lh.Value == math.Trunc(lh.Value) {
			return []byte(strconv.FormatInt(int64(lh.Value), 10)), nil
		}
		return json.Marshal(lh.Value)
	}
	return json.Marshal(lineHeightRecord{Unit: lh.Unit, Value: lh.Value})
}

func (lh *LineHeight) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, "{") {
		var rec lineHeightRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		lh.Unit, lh.Value = rec.Unit, rec.Value
		return nil
	}
	lh.Unit = ""
	return json.Unmarshal(data, &lh.Value)
}

// Styles is the output property bag of a design node. The key set is closed:
// every member corresponds to one design-style key of the serialized
// figma_styles object. Zero values mean "not set" and are omitted from JSON;
// the few members where zero is meaningful (minWidth, x, y) are pointers.
type Styles struct {
	LayoutMode             string       `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems  string       `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string       `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing            float64      `json:"itemSpacing,omitempty"`
	Constraints            *Constraints `json:"constraints,omitempty"`
	Width                  *Dimension   `json:"width,omitempty"`
	Height                 *Dimension   `json:"height,omitempty"`
	MinWidth               *float64     `json:"minWidth,omitempty"`
	MaxWidth               *Dimension   `json:"maxWidth,omitempty"`
	PaddingTop             float64      `json:"paddingTop,omitempty"`
	PaddingBottom          float64      `json:"paddingBottom,omitempty"`
	PaddingLeft            float64      `json:"paddingLeft,omitempty"`
	PaddingRight           float64      `json:"paddingRight,omitempty"`
	MarginBottom           float64      `json:"marginBottom,omitempty"`
	FontSize               float64      `json:"fontSize,omitempty"`
	LineHeight             *LineHeight  `json:"lineHeight,omitempty"`
	FontWeight             float64      `json:"fontWeight,omitempty"`
	TextAlign              string       `json:"textAlign,omitempty"`
	Fills                  []Paint      `json:"fills,omitempty"`
	Background             []Paint      `json:"background,omitempty"`
	Strokes                []Paint      `json:"strokes,omitempty"`
	StrokeWeight           float64      `json:"strokeWeight,omitempty"`
	CornerRadius           float64      `json:"cornerRadius,omitempty"`
	Effects                []Effect     `json:"effects,omitempty"`
	Positioning            string       `json:"positioning,omitempty"`
	X                      *float64     `json:"x,omitempty"`
	Y                      *float64     `json:"y,omitempty"`
	ImageHash              string       `json:"imageHash,omitempty"`
}

// IsZero reports whether no style key is set.
func (s *Styles) IsZero() bool {
	if s == nil {
		return true
	}
	data, err := json.Marshal(s)
	return err == nil && string(data) == "{}"
}

// Merge overlays patch onto s: every key set in patch overwrites the
// corresponding key in s, matching last-write-wins table resolution. List
// valued keys (fills, strokes, effects) are replaced wholesale, not
// concatenated.
func (s *Styles) Merge(patch Styles) {
	if patch.LayoutMode != "" {
		s.LayoutMode = patch.LayoutMode
	}
	if patch.PrimaryAxisAlignItems != "" {
		s.PrimaryAxisAlignItems = patch.PrimaryAxisAlignItems
	}
	if patch.CounterAxisAlignItems != "" {
		s.CounterAxisAlignItems = patch.CounterAxisAlignItems
	}
	if patch.ItemSpacing != 0 {
		s.ItemSpacing = patch.ItemSpacing
	}
	if patch.Constraints != nil {
		c := *patch.Constraints
		s.Constraints = &c
	}
	if patch.Width != nil {
		d := *patch.Width
		s.Width = &d
	}
	if patch.Height != nil {
		d := *patch.Height
		s.Height = &d
	}
	if patch.MinWidth != nil {
		v := *patch.MinWidth
		s.MinWidth = &v
	}
	if patch.MaxWidth != nil {
		d := *patch.MaxWidth
		s.MaxWidth = &d
	}
	if patch.PaddingTop != 0 {
		s.PaddingTop = patch.PaddingTop
	}
	if patch.PaddingBottom != 0 {
		s.PaddingBottom = patch.PaddingBottom
	}
	if patch.PaddingLeft != 0 {
		s.PaddingLeft = patch.PaddingLeft
	}
	if patch.PaddingRight != 0 {
		s.PaddingRight = patch.PaddingRight
	}
	if patch.MarginBottom != 0 {
		s.MarginBottom = patch.MarginBottom
	}
	if patch.FontSize != 0 {
		s.FontSize = patch.FontSize
	}
	if patch.LineHeight != nil {
		lh := *patch.LineHeight
		s.LineHeight = &lh
	}
	if patch.FontWeight != 0 {
		s.FontWeight = patch.FontWeight
	}
	if patch.TextAlign != "" {
		s.TextAlign = patch.TextAlign
	}
	if patch.Fills != nil {
		s.Fills = append([]Paint(nil), patch.Fills...)
	}
	if patch.Background != nil {
		s.Background = append([]Paint(nil), patch.Background...)
	}
	if patch.Strokes != nil {
		s.Strokes = append([]Paint(nil), patch.Strokes...)
	}
	if patch.StrokeWeight != 0 {
		s.StrokeWeight = patch.StrokeWeight
	}
	if patch.CornerRadius != 0 {
		s.CornerRadius = patch.CornerRadius
	}
	if patch.Effects != nil {
		s.Effects = append([]Effect(nil), patch.Effects...)
	}
	if patch.Positioning != "" {
		s.Positioning = patch.Positioning
	}
	if patch.X != nil {
		v := *patch.X
		s.X = &v
	}
	if patch.Y != nil {
		v := *patch.Y
		s.Y = &v
	}
	if patch.ImageHash != "" {
		s.ImageHash = patch.ImageHash
	}
}

// AppendFill appends a solid fill entry, keeping earlier fills.
func (s *Styles) AppendFill(p Paint) {
	s.Fills = append(s.Fills, p)
}

// AppendBackground appends a solid background entry, keeping earlier entries.
func (s *Styles) AppendBackground(p Paint) {
	s.Background = append(s.Background, p)
}

// FloatPtr returns a pointer to v for optional numeric style members.
func FloatPtr(v float64) *float64 {
	return &v
}

// String returns compact JSON, useful in debug logging.
func (s Styles) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("styles!%v", err)
	}
	return string(data)
}
