// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imagefile

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	if got := Resize(src, 40, 30); got != image.Image(src) {
		t.Error("Resize to the same size should return the input")
	}

	dst := Resize(src, 8, 6)
	if dst.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Fatalf("Bounds() = %v, want 8x6", dst.Bounds())
	}
	if got := color.RGBAModel.Convert(dst.At(4, 3)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("resized pixel = %v, want white", got)
	}
}

func TestLoadCanvasResizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := Save(path, sketch.NewCanvas(50, 20, sketch.Blue)); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCanvas(path, 10, 10, sketch.White)
	if err != nil {
		t.Fatalf("LoadCanvas() error = %v", err)
	}
	if c.Width() != 10 || c.Height() != 10 {
		t.Errorf("size = %dx%d, want 10x10", c.Width(), c.Height())
	}
	if got := c.Pixel(5, 5); got != sketch.Blue {
		t.Errorf("Pixel(5,5) = %v, want blue", got)
	}
	if c.Background() != sketch.White {
		t.Errorf("Background() = %v, want white", c.Background())
	}

	orig, err := LoadCanvas(path, 0, 0, sketch.White)
	if err != nil {
		t.Fatal(err)
	}
	if orig.Width() != 50 || orig.Height() != 20 {
		t.Errorf("unscaled size = %dx%d, want 50x20", orig.Width(), orig.Height())
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	if err := Save(path, sketch.NewCanvas(30, 30, sketch.Green)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		src        Source
		wantLoaded bool
		wantSize   image.Point
	}{
		{
			name:     "blank",
			src:      Source{BlankWidth: 20, BlankHeight: 14, Background: sketch.White},
			wantSize: image.Pt(20, 14),
		},
		{
			name:       "image",
			src:        Source{Path: path, Width: 16, Height: 12, BlankWidth: 20, BlankHeight: 14},
			wantLoaded: true,
			wantSize:   image.Pt(16, 12),
		},
		{
			name:     "missing image falls back",
			src:      Source{Path: filepath.Join(dir, "missing.png"), Width: 16, Height: 12, BlankWidth: 20, BlankHeight: 14, Background: sketch.White},
			wantSize: image.Pt(20, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, loaded := Open(tt.src)
			if loaded != tt.wantLoaded {
				t.Errorf("loaded = %v, want %v", loaded, tt.wantLoaded)
			}
			if got := image.Pt(c.Width(), c.Height()); got != tt.wantSize {
				t.Errorf("size = %v, want %v", got, tt.wantSize)
			}
		})
	}
}
