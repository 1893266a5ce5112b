// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"image"
	"math"

	"github.com/gogpu/sketch/raster"
)

// Radius returns the circle radius for a stroke from anchor to p: the
// Euclidean distance rounded to the nearest integer. Preview and commit
// both use it.
func Radius(anchor, p image.Point) int {
	return int(math.Round(math.Hypot(float64(p.X-anchor.X), float64(p.Y-anchor.Y))))
}

// Rasterize writes the shape for a stroke from anchor to p into t.
//
// Rectangle and Circle honor s.Filled, in which case s.Thickness is
// ignored. Line ignores the fill flag. Eraser is a line in background
// regardless of s.Color. Unknown modes write nothing.
func Rasterize(t raster.Target, mode Mode, anchor, p image.Point, s Style, background Color) {
	s = s.Clamp(0)
	col := raster.RGB(s.Color)

	switch mode {
	case ModeRectangle:
		if s.Filled {
			raster.FillRect(t, anchor, p, col)
		} else {
			raster.StrokeRect(t, anchor, p, s.Thickness, col)
		}
	case ModeCircle:
		r := Radius(anchor, p)
		if s.Filled {
			raster.FillCircle(t, anchor, r, col)
		} else {
			raster.StrokeCircle(t, anchor, r, s.Thickness, col)
		}
	case ModeLine:
		raster.Line(t, anchor, p, s.Thickness, col)
	case ModeEraser:
		raster.Line(t, anchor, p, s.Thickness, raster.RGB(background))
	}
}

// PaintShape rasterizes a stroke directly into the canvas. Coordinates
// outside the canvas are clipped; it never fails.
func (c *Canvas) PaintShape(mode Mode, anchor, p image.Point, s Style) {
	Rasterize(canvasTarget{c}, mode, anchor, p, s, c.background)
	c.version++
}

// canvasTarget adapts Canvas to raster.Target.
type canvasTarget struct {
	c *Canvas
}

func (t canvasTarget) Width() int  { return t.c.width }
func (t canvasTarget) Height() int { return t.c.height }

func (t canvasTarget) SetPixel(x, y int, col raster.RGB) {
	t.c.SetPixel(x, y, Color(col))
}

func (t canvasTarget) FillSpan(x0, x1, y int, col raster.RGB) {
	t.c.FillSpan(x0, x1, y, Color(col))
}
