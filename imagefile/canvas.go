// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imagefile

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch"
)

// Resize scales img to width x height with Catmull-Rom filtering. It
// returns img unchanged when it already has that size.
func Resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// LoadCanvas loads the image at path into a new canvas. A positive width
// and height resize the image first; zero keeps its own size.
func LoadCanvas(path string, width, height int, background sketch.Color) (*sketch.Canvas, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if width > 0 && height > 0 {
		img = Resize(img, width, height)
	}
	return sketch.NewCanvasFromImage(img, background), nil
}

// Source describes where a drawing session gets its initial canvas.
type Source struct {
	// Path of a backing image. Empty starts blank.
	Path string
	// Width and Height the backing image is resized to.
	Width, Height int
	// BlankWidth and BlankHeight size the canvas when there is no image.
	BlankWidth, BlankHeight int
	// Background fills blank canvases and is painted by the eraser.
	Background sketch.Color
}

// Open returns the initial canvas for src. A backing image that cannot be
// loaded is logged and replaced by a blank canvas; Open never fails.
// loaded reports whether the image was used.
func Open(src Source) (c *sketch.Canvas, loaded bool) {
	if src.Path != "" {
		c, err := LoadCanvas(src.Path, src.Width, src.Height, src.Background)
		if err == nil {
			sketch.Logger().Info("imagefile: loaded backing image",
				"path", src.Path, "width", c.Width(), "height", c.Height())
			return c, true
		}
		sketch.Logger().Warn("imagefile: backing image unavailable, starting blank",
			"path", src.Path, "err", err)
	}
	return sketch.NewCanvas(src.BlankWidth, src.BlankHeight, src.Background), false
}
