// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"slices"
)

// Point is a 2D point in pixel space. Integer values are pixel centers.
type Point struct {
	X, Y float64
}

// Edge represents a polygon side for scanline conversion.
type Edge struct {
	// YMin is the minimum Y coordinate (top of edge)
	YMin float64

	// YMax is the maximum Y coordinate (bottom of edge)
	YMax float64

	// XAtYMin is the X coordinate at YMin
	XAtYMin float64

	// DXDY is the inverse slope: change in X per unit Y
	DXDY float64
}

// Epsilon is a small value for floating point comparison.
const Epsilon = 1e-9

// NewEdge creates a new edge from two points.
// Returns false if the edge is horizontal (no Y extent).
func NewEdge(p0, p1 Point) (Edge, bool) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	dy := p1.Y - p0.Y
	if dy < Epsilon {
		return Edge{}, false
	}
	return Edge{
		YMin:    p0.Y,
		YMax:    p1.Y,
		XAtYMin: p0.X,
		DXDY:    (p1.X - p0.X) / dy,
	}, true
}

// XAtY calculates the X coordinate at a given Y value.
func (e *Edge) XAtY(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// IsActiveAt returns true if the edge crosses scanline y.
// An edge is active when YMin <= y < YMax.
func (e *Edge) IsActiveAt(y float64) bool {
	return y >= e.YMin && y < e.YMax
}

// EdgeList is a reusable collection of polygon edges.
type EdgeList struct {
	edges []Edge
	xs    []float64
}

// NewEdgeList creates a new empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{
		edges: make([]Edge, 0, 8),
		xs:    make([]float64, 0, 8),
	}
}

// Reset clears the edge list for reuse.
func (el *EdgeList) Reset() {
	el.edges = el.edges[:0]
}

// AddPolygon adds the closed outline through pts.
func (el *EdgeList) AddPolygon(pts []Point) {
	for i := range pts {
		if e, ok := NewEdge(pts[i], pts[(i+1)%len(pts)]); ok {
			el.edges = append(el.edges, e)
		}
	}
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// Bounds returns the vertical extent of all edges.
func (el *EdgeList) Bounds() (minY, maxY float64) {
	if len(el.edges) == 0 {
		return 0, 0
	}
	minY, maxY = math.MaxFloat64, -math.MaxFloat64
	for i := range el.edges {
		minY = min(minY, el.edges[i].YMin)
		maxY = max(maxY, el.edges[i].YMax)
	}
	return minY, maxY
}

// Fill scan-converts the edges with the even-odd rule. A pixel is set when
// its center lies inside the outline; scanlines are sampled at integer y.
func (el *EdgeList) Fill(t Target, c RGB) {
	if len(el.edges) == 0 {
		return
	}
	minY, maxY := el.Bounds()
	y0 := max(int(math.Ceil(minY)), 0)
	y1 := min(int(math.Ceil(maxY))-1, t.Height()-1)

	for y := y0; y <= y1; y++ {
		fy := float64(y)
		el.xs = el.xs[:0]
		for i := range el.edges {
			if el.edges[i].IsActiveAt(fy) {
				el.xs = append(el.xs, el.edges[i].XAtY(fy))
			}
		}
		slices.Sort(el.xs)
		for i := 0; i+1 < len(el.xs); i += 2 {
			xl := int(math.Ceil(el.xs[i] - Epsilon))
			xr := int(math.Floor(el.xs[i+1] + Epsilon))
			if xl <= xr {
				hspan(t, xl, xr, y, c)
			}
		}
	}
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(t Target, pts []Point, c RGB) {
	if len(pts) < 3 {
		return
	}
	el := NewEdgeList()
	el.AddPolygon(pts)
	el.Fill(t, c)
}
