// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynecanvas

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/gogpu/sketch"
)

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestBoard(t *testing.T, style sketch.Style) (*Board, *sketch.Engine) {
	t.Helper()
	test.NewTempApp(t)

	c := sketch.NewCanvas(20, 20, sketch.White)
	b := NewBoard(20, 20)
	e := sketch.NewEngine(c, sketch.WithStyleSource(sketch.StaticStyle(style)), sketch.WithPresenter(b))
	b.SetEngine(e)
	b.Resize(fyne.NewSize(40, 40))
	return b, e
}

func TestToCanvas(t *testing.T) {
	tests := []struct {
		name string
		pos  fyne.Position
		size fyne.Size
		want image.Point
	}{
		{"identity", fyne.NewPos(5, 7), fyne.NewSize(20, 20), image.Pt(5, 7)},
		{"scaled down", fyne.NewPos(10, 30), fyne.NewSize(40, 40), image.Pt(5, 15)},
		{"floors", fyne.NewPos(3, 3), fyne.NewSize(40, 40), image.Pt(1, 1)},
		{"outside", fyne.NewPos(-4, 50), fyne.NewSize(40, 40), image.Pt(-2, 25)},
		{"zero size", fyne.NewPos(3.7, 2.2), fyne.NewSize(0, 0), image.Pt(3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toCanvas(tt.pos, tt.size, 20, 20); got != tt.want {
				t.Errorf("toCanvas() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoardStroke(t *testing.T) {
	b, e := newTestBoard(t, sketch.Style{Color: sketch.Red, Thickness: 1, Filled: true})

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(drag(10, 10))
	if e.Canvas().Pixel(2, 2) != sketch.White {
		t.Fatal("drag preview reached the canvas")
	}
	if got := sketch.FromColor(b.Frame().At(2, 2)); got != sketch.Red {
		t.Errorf("preview frame pixel = %v, want red", got)
	}

	b.MouseUp(mouse(20, 20, desktop.MouseButtonPrimary))
	if got := e.Canvas().Pixel(10, 10); got != sketch.Red {
		t.Errorf("committed pixel (10,10) = %v, want red", got)
	}
	if got := e.Canvas().Pixel(11, 11); got != sketch.White {
		t.Errorf("pixel (11,11) = %v, want white", got)
	}
	if !e.Canvas().Equal(b.Frame()) {
		t.Error("displayed frame differs from canvas after commit")
	}
}

func TestBoardDragEndCommitsOnce(t *testing.T) {
	b, e := newTestBoard(t, sketch.Style{Color: sketch.Blue, Thickness: 1, Filled: true})

	v := e.Canvas().Version()
	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(drag(8, 8))
	b.DragEnd()
	b.MouseUp(mouse(30, 30, desktop.MouseButtonPrimary))

	if got := e.Canvas().Version() - v; got != 1 {
		t.Errorf("canvas mutations = %d, want 1", got)
	}
	if e.Canvas().Pixel(4, 4) != sketch.Blue || e.Canvas().Pixel(10, 10) != sketch.White {
		t.Error("stroke should end at the last dragged position")
	}
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b, e := newTestBoard(t, sketch.DefaultStyle())

	b.MouseDown(mouse(0, 0, desktop.MouseButtonSecondary))
	if e.Drawing() {
		t.Error("secondary button started a stroke")
	}
}

func TestBoardWithoutEngine(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoard(4, 4)
	b.MouseDown(mouse(1, 1, desktop.MouseButtonPrimary))
	b.Dragged(drag(2, 2))
	b.DragEnd()
	b.MouseUp(mouse(3, 3, desktop.MouseButtonPrimary))
}

func TestShortcut(t *testing.T) {
	c := sketch.NewCanvas(10, 10, sketch.White)
	store := &recordStore{}
	e := sketch.NewEngine(c, sketch.WithStore(store))

	tests := []struct {
		key     rune
		want    string
		mode    sketch.Mode
		wantErr bool
	}{
		{'c', "Mode: CIRCLE | Fill: OFF", sketch.ModeCircle, false},
		{'L', "Mode: LINE | Fill: OFF", sketch.ModeLine, false},
		{'e', "Mode: ERASER | Fill: OFF", sketch.ModeEraser, false},
		{'r', "Mode: RECTANGLE | Fill: OFF", sketch.ModeRectangle, false},
		{'z', "Nothing to undo", sketch.ModeRectangle, false},
		{'x', "Cleared", sketch.ModeRectangle, false},
		{'z', "Undo", sketch.ModeRectangle, false},
		{'y', "Redo", sketch.ModeRectangle, false},
		{'y', "Nothing to redo", sketch.ModeRectangle, false},
		{'s', "Saved out.png", sketch.ModeRectangle, false},
		{'q', "", sketch.ModeRectangle, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, err := Shortcut(e, tt.key, "out.png")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Shortcut() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Shortcut() = %q, want %q", got, tt.want)
			}
			if e.Mode() != tt.mode {
				t.Errorf("Mode() = %v, want %v", e.Mode(), tt.mode)
			}
		})
	}

	if store.paths["out.png"] != 1 {
		t.Errorf("saves to out.png = %d, want 1", store.paths["out.png"])
	}
}

func TestShortcutSaveError(t *testing.T) {
	e := sketch.NewEngine(sketch.NewCanvas(2, 2, sketch.White))
	if _, err := Shortcut(e, 's', "out.png"); !errors.Is(err, sketch.ErrNoStore) {
		t.Errorf("Shortcut('s') error = %v, want ErrNoStore", err)
	}
}

type recordStore struct {
	paths map[string]int
}

func (s *recordStore) Save(path string, _ image.Image) error {
	if s.paths == nil {
		s.paths = make(map[string]int)
	}
	s.paths[path]++
	return nil
}
