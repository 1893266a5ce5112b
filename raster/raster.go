// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster writes aliased integer shapes into a pixel target.
//
// Every primitive clips against the target bounds before writing, so callers
// may pass coordinates anywhere in the int range. Pixel centers sit on
// integer coordinates: a rectangle from (0,0) to (10,10) covers 11×11 pixels.
//
// The package has no state; all functions are safe to call on distinct
// targets from different goroutines.
package raster

import (
	"image"
	"math"
)

// RGB is an opaque 8-bit color (internal copy to avoid import cycle).
type RGB struct {
	R, G, B uint8
}

// Target is an interface for writing pixels (avoids import cycle).
// SetPixel must ignore coordinates outside [0,Width)×[0,Height).
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGB)
}

// SpanFiller is implemented by targets that can fill a horizontal run of
// pixels faster than repeated SetPixel calls. The span is [x0, x1).
type SpanFiller interface {
	FillSpan(x0, x1, y int, c RGB)
}

// hspan fills the inclusive run x0..x1 on row y, clipped to the target.
func hspan(t Target, x0, x1, y int, c RGB) {
	if y < 0 || y >= t.Height() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, t.Width()-1)
	if x0 > x1 {
		return
	}
	if sf, ok := t.(SpanFiller); ok {
		sf.FillSpan(x0, x1+1, y, c)
		return
	}
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

// normRect orders the corners so that Min <= Max on both axes.
// Unlike image.Rectangle.Canon the result is inclusive of Max.
func normRect(a, b image.Point) (x0, y0, x1, y1 int) {
	x0, x1 = a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 = a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}

// FillRect sets every pixel of the axis-aligned rectangle with inclusive
// corners a and b.
func FillRect(t Target, a, b image.Point, c RGB) {
	x0, y0, x1, y1 := normRect(a, b)
	y0 = max(y0, 0)
	y1 = min(y1, t.Height()-1)
	for y := y0; y <= y1; y++ {
		hspan(t, x0, x1, y, c)
	}
}

// StrokeRect sets a border band of the given thickness, measured inward from
// the edges of the rectangle with inclusive corners a and b. A band at least
// half as thick as the rectangle is wide or tall fills it completely.
func StrokeRect(t Target, a, b image.Point, thickness int, c RGB) {
	thickness = max(thickness, 1)
	x0, y0, x1, y1 := normRect(a, b)
	if 2*thickness >= x1-x0+1 || 2*thickness >= y1-y0+1 {
		FillRect(t, a, b, c)
		return
	}
	FillRect(t, image.Pt(x0, y0), image.Pt(x1, y0+thickness-1), c)
	FillRect(t, image.Pt(x0, y1-thickness+1), image.Pt(x1, y1), c)
	FillRect(t, image.Pt(x0, y0+thickness), image.Pt(x0+thickness-1, y1-thickness), c)
	FillRect(t, image.Pt(x1-thickness+1, y0+thickness), image.Pt(x1, y1-thickness), c)
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// annulus fills the pixels whose distance d from center satisfies
// inner-0.5 < d <= outer+0.5. An inner radius <= 0 yields a solid disc.
// Squared distances are compared in quarter-pixel units to stay integral.
func annulus(t Target, center image.Point, inner, outer int, c RGB) {
	if outer < 0 {
		return
	}
	outerLim := (2*outer + 1) * (2*outer + 1)
	innerLim := -1
	if inner > 0 {
		innerLim = (2*inner-1)*(2*inner-1) - 1
	}

	dy0 := max(-outer, -center.Y)
	dy1 := min(outer, t.Height()-1-center.Y)
	for dy := dy0; dy <= dy1; dy++ {
		rem := outerLim - 4*dy*dy
		if rem < 0 {
			continue
		}
		xo := isqrt(rem / 4)
		y := center.Y + dy

		remIn := innerLim - 4*dy*dy
		if innerLim < 0 || remIn < 0 {
			hspan(t, center.X-xo, center.X+xo, y, c)
			continue
		}
		xi := isqrt(remIn / 4)
		hspan(t, center.X-xo, center.X-xi-1, y, c)
		hspan(t, center.X+xi+1, center.X+xo, y, c)
	}
}

// FillCircle sets every pixel within radius r of center (with half-pixel
// tolerance, so r=0 sets the center pixel alone).
func FillCircle(t Target, center image.Point, r int, c RGB) {
	annulus(t, center, 0, r, c)
}

// StrokeCircle sets a ring of the given thickness centered on radius r.
func StrokeCircle(t Target, center image.Point, r, thickness int, c RGB) {
	thickness = max(thickness, 1)
	inner := r - thickness/2
	outer := inner + thickness - 1
	annulus(t, center, inner, outer, c)
}

// fillDisc sets the pixels whose center lies within rad of p. It is used
// for the round caps of thick lines, where rad is half the line width.
func fillDisc(t Target, p image.Point, rad float64, c RGB) {
	r2 := rad * rad
	ri := int(math.Floor(rad))
	for dy := -ri; dy <= ri; dy++ {
		rem := r2 - float64(dy*dy)
		if rem < 0 {
			continue
		}
		dx := int(math.Floor(math.Sqrt(rem)))
		hspan(t, p.X-dx, p.X+dx, p.Y+dy, c)
	}
}

// Line draws a segment from a to b. Thickness 1 produces an 8-connected
// Bresenham line; thicker lines are filled as a rectangle around the
// segment with round caps of diameter thickness at both ends.
func Line(t Target, a, b image.Point, thickness int, c RGB) {
	if thickness <= 1 {
		bresenham(t, a, b, c)
		return
	}
	half := float64(thickness) / 2
	fillDisc(t, a, half, c)
	fillDisc(t, b, half, c)
	if a == b {
		return
	}

	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	nx := -dy / length * half
	ny := dx / length * half

	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	FillPolygon(t, []Point{
		{X: ax + nx, Y: ay + ny},
		{X: bx + nx, Y: by + ny},
		{X: bx - nx, Y: by - ny},
		{X: ax - nx, Y: ay - ny},
	}, c)
}

func bresenham(t Target, a, b image.Point, c RGB) {
	x0, y0 := a.X, a.Y
	dx := b.X - x0
	if dx < 0 {
		dx = -dx
	}
	dy := b.Y - y0
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x0 < b.X {
		sx = 1
	}
	sy := -1
	if y0 < b.Y {
		sy = 1
	}
	err := dx - dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == b.X && y0 == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
