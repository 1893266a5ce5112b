// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

// MaxThickness is the default upper bound for stroke thickness.
const MaxThickness = 30

// Style is the pen state read at the moment of each pointer event.
type Style struct {
	Color     Color
	Thickness int
	Filled    bool
}

// DefaultStyle returns a 2-pixel black outline.
func DefaultStyle() Style {
	return Style{Color: Black, Thickness: 2}
}

// Clamp bounds Thickness to [1, maxThickness]. A non-positive maxThickness
// leaves the upper bound open.
func (s Style) Clamp(maxThickness int) Style {
	if s.Thickness < 1 {
		s.Thickness = 1
	}
	if maxThickness > 0 && s.Thickness > maxThickness {
		s.Thickness = maxThickness
	}
	return s
}

// StyleSource is queried for the current style on every pointer event.
type StyleSource interface {
	Style() Style
}

// StyleFunc adapts a function to StyleSource.
type StyleFunc func() Style

// Style implements StyleSource.
func (f StyleFunc) Style() Style { return f() }

// StaticStyle is a StyleSource that always returns itself.
type StaticStyle Style

// Style implements StyleSource.
func (s StaticStyle) Style() Style { return Style(s) }

// Controls is a settable StyleSource modelled on a panel of sliders:
// each channel is bounded to 0..255, thickness to 1..max, and fill is a
// toggle. Setters clamp instead of failing.
type Controls struct {
	style        Style
	maxThickness int
}

// NewControls creates controls starting at initial. maxThickness <= 0
// selects MaxThickness.
func NewControls(initial Style, maxThickness int) *Controls {
	if maxThickness <= 0 {
		maxThickness = MaxThickness
	}
	return &Controls{
		style:        initial.Clamp(maxThickness),
		maxThickness: maxThickness,
	}
}

// Style implements StyleSource.
func (c *Controls) Style() Style {
	return c.style
}

// MaxThickness returns the thickness cap.
func (c *Controls) MaxThickness() int {
	return c.maxThickness
}

// SetRGB sets the pen color, clamping each channel to 0..255.
func (c *Controls) SetRGB(r, g, b int) {
	c.style.Color = Color{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

// SetColor sets the pen color.
func (c *Controls) SetColor(col Color) {
	c.style.Color = col
}

// SetThickness sets the stroke thickness, clamped to 1..MaxThickness().
func (c *Controls) SetThickness(n int) {
	c.style.Thickness = n
	c.style = c.style.Clamp(c.maxThickness)
}

// SetFilled toggles fill mode for rectangles and circles.
func (c *Controls) SetFilled(filled bool) {
	c.style.Filled = filled
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
