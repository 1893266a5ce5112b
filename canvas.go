// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrSnapshotSize is returned when a snapshot does not match the canvas it
// is restored into.
var ErrSnapshotSize = errors.New("sketch: snapshot size mismatch")

// Canvas is the authoritative pixel grid being edited.
// Each pixel is stored as 3 bytes (R, G, B). Dimensions never change after
// creation; every write outside the grid is silently dropped.
//
// Canvas implements image.Image. It is NOT safe for concurrent use.
type Canvas struct {
	width      int
	height     int
	pix        []uint8
	background Color
	version    uint64
}

// NewCanvas creates a canvas filled with the background color.
// It panics if width or height is not positive.
func NewCanvas(width, height int, background Color) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sketch: invalid canvas dimensions %dx%d", width, height))
	}
	c := &Canvas{
		width:      width,
		height:     height,
		pix:        make([]uint8, width*height*3),
		background: background,
	}
	c.fill(background)
	return c
}

// NewCanvasFromImage creates a canvas holding a copy of img.
// Translucent pixels are composited over white.
func NewCanvasFromImage(img image.Image, background Color) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy(), background)

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Background returns the color used by the eraser and by Clear.
func (c *Canvas) Background() Color {
	return c.background
}

// Version counts whole-canvas mutations: committed shapes, fills, clears,
// restores and copies. Individual SetPixel/FillSpan writes do not count.
func (c *Canvas) Version() uint64 {
	return c.version
}

// Pixel returns the color at (x, y), or the background outside the grid.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return c.background
	}
	i := (y*c.width + x) * 3
	return Color{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2]}
}

// SetPixel sets the color of a single pixel.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 3
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
}

// FillSpan fills the pixels [x1, x2) on row y.
func (c *Canvas) FillSpan(x1, x2, y int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, c.width)
	if x1 >= x2 {
		return
	}
	row := c.pix[(y*c.width+x1)*3 : (y*c.width+x2)*3]
	row[0], row[1], row[2] = col.R, col.G, col.B
	// Doubling copy: each pass copies everything written so far.
	for n := 3; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
}

func (c *Canvas) fill(col Color) {
	for y := 0; y < c.height; y++ {
		c.FillSpan(0, c.width, y, col)
	}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	c.fill(col)
	c.version++
}

// Clear fills the canvas with its background color.
func (c *Canvas) Clear() {
	c.Fill(c.background)
}

// Snapshot returns an independent deep copy of the current pixels.
// The snapshot shares no memory with the canvas.
func (c *Canvas) Snapshot() *Snapshot {
	return &Snapshot{
		width:  c.width,
		height: c.height,
		pix:    bytes.Clone(c.pix),
	}
}

// Restore replaces the canvas contents with s in place.
// It returns ErrSnapshotSize, leaving the canvas untouched, when the
// dimensions differ.
func (c *Canvas) Restore(s *Snapshot) error {
	if s == nil || s.width != c.width || s.height != c.height {
		return ErrSnapshotSize
	}
	copy(c.pix, s.pix)
	c.version++
	return nil
}

// CopyFrom overwrites c with the pixels and background of src.
// It is used to refresh transient preview buffers without reallocating.
func (c *Canvas) CopyFrom(src *Canvas) error {
	if src.width != c.width || src.height != c.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSnapshotSize, src.width, src.height, c.width, c.height)
	}
	copy(c.pix, src.pix)
	c.background = src.background
	c.version++
	return nil
}

// Clone returns an independent canvas with the same pixels and background.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		width:      c.width,
		height:     c.height,
		pix:        bytes.Clone(c.pix),
		background: c.background,
	}
}

// Equal reports whether img has the same bounds and pixel colors as c.
func (c *Canvas) Equal(img image.Image) bool {
	switch o := img.(type) {
	case *Canvas:
		return o.width == c.width && o.height == c.height && bytes.Equal(o.pix, c.pix)
	case *Snapshot:
		return o.width == c.width && o.height == c.height && bytes.Equal(o.pix, c.pix)
	}
	if img.Bounds() != c.Bounds() {
		return false
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if FromColor(img.At(x, y)) != c.Pixel(x, y) {
				return false
			}
		}
	}
	return true
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.DrawTo(img)
	return img
}

// DrawTo copies the canvas into the top-left corner of dst, which must be
// at least as large as the canvas.
func (c *Canvas) DrawTo(dst *image.RGBA) {
	copyRGBToRGBA(dst, c.pix, c.width, c.height)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.Transparent
	}
	return c.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// Snapshot is an immutable copy of a canvas at a point in time.
// It implements image.Image so it can be saved or displayed directly.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// Width returns the width of the snapshot.
func (s *Snapshot) Width() int {
	return s.width
}

// Height returns the height of the snapshot.
func (s *Snapshot) Height() int {
	return s.height
}

// Pixel returns the color at (x, y). Out-of-range coordinates yield Black.
func (s *Snapshot) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Black
	}
	i := (y*s.width + x) * 3
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2]}
}

// At implements the image.Image interface.
func (s *Snapshot) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.Transparent
	}
	return s.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Snapshot) ColorModel() color.Model {
	return ColorModel
}

// copyRGBToRGBA expands packed RGB rows into an opaque RGBA image.
func copyRGBToRGBA(dst *image.RGBA, pix []uint8, width, height int) {
	for y := 0; y < height; y++ {
		src := pix[y*width*3 : (y+1)*width*3]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = src[x*3+0]
			row[x*4+1] = src[x*3+1]
			row[x*4+2] = src[x*3+2]
			row[x*4+3] = 0xff
		}
	}
}
