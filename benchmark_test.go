// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"image"
	"strconv"
	"testing"
)

// BenchmarkCanvas_Clear benchmarks clearing canvases of various sizes.
func BenchmarkCanvas_Clear(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"100x100", 100, 100},
		{"800x600", 800, 600},
		{"1000x700", 1000, 700},
		{"1920x1080", 1920, 1080},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			c := NewCanvas(size.width, size.height, White)
			b.ReportAllocs()
			b.SetBytes(int64(size.width * size.height * 3))
			for b.Loop() {
				c.Clear()
			}
		})
	}
}

// BenchmarkCanvas_FillSpanVsSetPixel compares FillSpan against SetPixel.
func BenchmarkCanvas_FillSpanVsSetPixel(b *testing.B) {
	c := NewCanvas(2000, 1000, White)

	for _, n := range []int{10, 100, 1000} {
		b.Run("SetPixel_"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				for x := 0; x < n; x++ {
					c.SetPixel(x, 500, Red)
				}
			}
		})
		b.Run("FillSpan_"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				c.FillSpan(0, n, 500, Red)
			}
		})
	}
}

// BenchmarkPaintShape benchmarks committing one shape of each mode.
func BenchmarkPaintShape(b *testing.B) {
	tests := []struct {
		name  string
		mode  Mode
		style Style
	}{
		{"RectOutline", ModeRectangle, Style{Color: Red, Thickness: 2}},
		{"RectFilled", ModeRectangle, Style{Color: Red, Thickness: 2, Filled: true}},
		{"CircleOutline", ModeCircle, Style{Color: Red, Thickness: 2}},
		{"CircleFilled", ModeCircle, Style{Color: Red, Thickness: 2, Filled: true}},
		{"LineThin", ModeLine, Style{Color: Red, Thickness: 1}},
		{"LineThick", ModeLine, Style{Color: Red, Thickness: 20}},
		{"Eraser", ModeEraser, Style{Thickness: 30}},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			c := NewCanvas(1000, 700, White)
			b.ReportAllocs()
			for b.Loop() {
				c.PaintShape(tt.mode, image.Pt(200, 150), image.Pt(600, 450), tt.style)
			}
		})
	}
}

// BenchmarkEngine_Stroke benchmarks a full stroke with 50 preview frames,
// the per-drag cost of the interactive loop.
func BenchmarkEngine_Stroke(b *testing.B) {
	c := NewCanvas(1000, 700, White)
	e := NewEngine(c, WithMode(ModeCircle), WithHistoryLimit(8))

	b.ReportAllocs()
	for b.Loop() {
		e.PointerDown(image.Pt(500, 350))
		for i := 0; i < 50; i++ {
			e.PointerMove(image.Pt(500+i*4, 350+i*2))
		}
		e.PointerUp(image.Pt(700, 450))
	}
}
