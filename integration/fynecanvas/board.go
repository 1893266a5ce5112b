// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynecanvas

import (
	"image"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// Board displays engine frames and feeds it pointer input.
type Board struct {
	widget.BaseWidget

	engine *sketch.Engine
	frame  *image.RGBA
	image  *canvas.Image

	last image.Point
}

var (
	_ fyne.Widget       = (*Board)(nil)
	_ fyne.Draggable    = (*Board)(nil)
	_ desktop.Mouseable = (*Board)(nil)
	_ sketch.Presenter  = (*Board)(nil)
)

// NewBoard creates a board for a canvas of the given size. Attach an
// engine with SetEngine before input arrives.
func NewBoard(width, height int) *Board {
	b := &Board{frame: image.NewRGBA(image.Rect(0, 0, width, height))}
	b.image = canvas.NewImageFromImage(b.frame)
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels
	b.image.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	b.ExtendBaseWidget(b)
	return b
}

// SetEngine attaches the engine receiving input and presents its first
// frame.
func (b *Board) SetEngine(e *sketch.Engine) {
	b.engine = e
	e.Present()
}

// Engine returns the attached engine.
func (b *Board) Engine() *sketch.Engine {
	return b.engine
}

// Frame returns the last presented frame.
func (b *Board) Frame() *image.RGBA {
	return b.frame
}

// Present implements sketch.Presenter.
func (b *Board) Present(frame image.Image) {
	switch f := frame.(type) {
	case *sketch.Canvas:
		f.DrawTo(b.frame)
	default:
		draw.Draw(b.frame, b.frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
	}
	b.image.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}

// MouseDown implements desktop.Mouseable.
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || b.engine == nil {
		return
	}
	b.last = b.toCanvas(ev.Position)
	b.engine.PointerDown(b.last)
}

// MouseUp implements desktop.Mouseable.
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || b.engine == nil {
		return
	}
	b.last = b.toCanvas(ev.Position)
	b.engine.PointerUp(b.last)
}

// Dragged implements fyne.Draggable.
func (b *Board) Dragged(ev *fyne.DragEvent) {
	if b.engine == nil {
		return
	}
	b.last = b.toCanvas(ev.Position)
	b.engine.PointerMove(b.last)
}

// DragEnd implements fyne.Draggable. Drivers that report the release only
// as a drag end still commit the stroke; a second release is ignored by
// the engine.
func (b *Board) DragEnd() {
	if b.engine == nil {
		return
	}
	b.engine.PointerUp(b.last)
}

func (b *Board) toCanvas(pos fyne.Position) image.Point {
	return toCanvas(pos, b.Size(), b.frame.Rect.Dx(), b.frame.Rect.Dy())
}

// toCanvas maps a widget position to a canvas pixel when the canvas is
// stretched over a widget of size size.
func toCanvas(pos fyne.Position, size fyne.Size, width, height int) image.Point {
	if size.Width <= 0 || size.Height <= 0 {
		return image.Pt(int(math.Floor(float64(pos.X))), int(math.Floor(float64(pos.Y))))
	}
	x := float64(pos.X) * float64(width) / float64(size.Width)
	y := float64(pos.Y) * float64(height) / float64(size.Height)
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}
