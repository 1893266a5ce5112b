// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynecanvas

import (
	"fmt"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// DefaultTitle is the window title used when Config.Title is empty.
const DefaultTitle = "Sketch"

// Config describes a drawing window.
type Config struct {
	Title string

	// Controls is the pen state edited by the sliders. Nil creates one
	// with sketch.DefaultStyle.
	Controls *sketch.Controls

	// SavePath is written by the 's' shortcut.
	SavePath string

	// Options configure the engine. The window adds its own style source
	// and presenter.
	Options []sketch.EngineOption
}

// Window is a fyne window editing one canvas.
type Window struct {
	win    fyne.Window
	board  *Board
	panel  *ControlPanel
	status *widget.Label
	engine *sketch.Engine

	savePath string
}

// NewWindow creates a window editing c.
func NewWindow(a fyne.App, c *sketch.Canvas, cfg Config) *Window {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	controls := cfg.Controls
	if controls == nil {
		controls = sketch.NewControls(sketch.DefaultStyle(), 0)
	}

	w := &Window{
		win:      a.NewWindow(cfg.Title),
		board:    NewBoard(c.Width(), c.Height()),
		status:   widget.NewLabel("Ready"),
		savePath: cfg.SavePath,
	}

	opts := append([]sketch.EngineOption{
		sketch.WithStyleSource(controls),
		sketch.WithMaxThickness(controls.MaxThickness()),
	}, cfg.Options...)
	opts = append(opts, sketch.WithPresenter(w.board))
	w.engine = sketch.NewEngine(c, opts...)

	w.panel = NewControlPanel(controls, w.engine.Present)
	w.board.SetEngine(w.engine)

	w.win.SetContent(container.NewBorder(w.panel.Content(), w.status, nil, nil, w.board))
	w.win.Canvas().SetOnTypedRune(w.typedRune)
	w.win.Canvas().SetOnTypedKey(w.typedKey)
	w.win.Resize(fyne.NewSize(float32(c.Width()), float32(c.Height())+80))
	return w
}

// Engine returns the engine behind the window.
func (w *Window) Engine() *sketch.Engine {
	return w.engine
}

// Board returns the drawing widget.
func (w *Window) Board() *Board {
	return w.board
}

// Panel returns the slider panel.
func (w *Window) Panel() *ControlPanel {
	return w.panel
}

// Window returns the underlying fyne window.
func (w *Window) Window() fyne.Window {
	return w.win
}

// ShowAndRun shows the window, runs the application until it closes and
// then autosaves.
func (w *Window) ShowAndRun() error {
	w.win.ShowAndRun()
	return w.engine.Close()
}

func (w *Window) typedRune(r rune) {
	msg, err := Shortcut(w.engine, r, w.savePath)
	switch {
	case err != nil:
		w.status.SetText(err.Error())
	case msg != "":
		w.status.SetText(msg)
	}
}

func (w *Window) typedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		w.win.Close()
	}
}

// Shortcut applies the keyboard command bound to r and returns a status
// message. Unbound keys return "".
func Shortcut(e *sketch.Engine, r rune, savePath string) (string, error) {
	r = unicode.ToLower(r)
	switch r {
	case 'z':
		if e.Undo() {
			return "Undo", nil
		}
		return "Nothing to undo", nil
	case 'y':
		if e.Redo() {
			return "Redo", nil
		}
		return "Nothing to redo", nil
	case 'x':
		e.Clear()
		return "Cleared", nil
	case 's':
		if err := e.Save(savePath); err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %s", savePath), nil
	}
	for _, m := range sketch.Modes() {
		if m.Shortcut() == r {
			e.SetMode(m)
			return sketch.StatusLine(m, e.Style().Filled), nil
		}
	}
	return "", nil
}
