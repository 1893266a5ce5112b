// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"
)

// Engine errors.
var (
	// ErrNoStore is returned by Save when no persistence sink is configured.
	ErrNoStore = errors.New("sketch: no store configured")
)

// Presenter accepts a full frame for display. The frame is only valid
// until the next engine call; presenters that keep it must copy it.
type Presenter interface {
	Present(frame image.Image)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(frame image.Image)

// Present implements Presenter.
func (f PresenterFunc) Present(frame image.Image) { f(frame) }

// Store persists canvas contents as a standard raster image.
type Store interface {
	Save(path string, img image.Image) error
}

// Stats counts what an engine has done since creation.
type Stats struct {
	Strokes   uint64 // strokes started
	Previews  uint64 // preview frames rendered
	Commits   uint64 // strokes committed to the canvas
	Undos     uint64 // successful undo operations
	Redos     uint64 // successful redo operations
	Clears    uint64 // clear commands
	Saves     uint64 // successful saves, including autosave
	UndoDepth int
	RedoDepth int
}

// Engine is the tool state machine. It turns pointer events into preview
// frames and committed canvas edits, recording a snapshot into History at
// the start of every stroke.
//
// The canvas is touched exactly once per completed stroke, however many
// move events arrive in between: previews render into a separate buffer.
//
// Engine is NOT safe for concurrent use. Drive it from a single goroutine,
// which is how window toolkits deliver input.
type Engine struct {
	id      string
	canvas  *Canvas
	history *History

	mode         Mode
	styles       StyleSource
	maxThickness int
	session      session

	preview      *Canvas // transient copy, allocated on first move
	previewValid bool
	previewAt    effect // geometry of the last rendered preview
	display      *image.RGBA // overlay frame, allocated on first render

	presenter    Presenter
	store        Store
	autosavePath string
	overlay      bool

	stats  Stats
	closed bool
}

// NewEngine creates an engine editing c, starting Idle with empty history.
func NewEngine(c *Canvas, opts ...EngineOption) *Engine {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.id == "" {
		options.id = uuid.NewString()
	}

	e := &Engine{
		id:           options.id,
		canvas:       c,
		history:      NewHistory(options.historyLimit),
		mode:         options.mode,
		styles:       options.styles,
		maxThickness: options.maxThickness,
		presenter:    options.presenter,
		store:        options.store,
		autosavePath: options.autosavePath,
		overlay:      options.overlay,
	}
	Logger().Info("sketch: engine created",
		"session", e.id, "width", c.Width(), "height", c.Height(), "mode", e.mode.String())
	return e
}

// ID returns the engine identifier used in log records.
func (e *Engine) ID() string {
	return e.id
}

// Canvas returns the authoritative canvas.
func (e *Engine) Canvas() *Canvas {
	return e.canvas
}

// History returns the undo/redo history.
func (e *Engine) History() *History {
	return e.history
}

// Mode returns the current tool mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetMode selects the tool for subsequent events. Invalid modes are ignored.
func (e *Engine) SetMode(m Mode) {
	if !m.IsValid() || m == e.mode {
		return
	}
	e.mode = m
	Logger().Debug("sketch: mode changed", "session", e.id, "mode", m.String())
	if e.session.active && e.previewValid {
		e.renderPreview(e.previewAt)
	}
	e.Present()
}

// Style returns the current pen style with thickness clamped.
func (e *Engine) Style() Style {
	return e.styles.Style().Clamp(e.maxThickness)
}

// Drawing reports whether a stroke is in progress.
func (e *Engine) Drawing() bool {
	return e.session.active
}

// Anchor returns the start point of the stroke in progress.
func (e *Engine) Anchor() (image.Point, bool) {
	return e.session.anchor, e.session.active
}

// PointerDown starts a stroke at p.
func (e *Engine) PointerDown(p image.Point) { e.Handle(Event{Kind: PointerDown, Pos: p}) }

// PointerMove previews the stroke in progress at p.
func (e *Engine) PointerMove(p image.Point) { e.Handle(Event{Kind: PointerMove, Pos: p}) }

// PointerUp commits the stroke in progress at p.
func (e *Engine) PointerUp(p image.Point) { e.Handle(Event{Kind: PointerUp, Pos: p}) }

// Handle processes one pointer event to completion.
func (e *Engine) Handle(ev Event) {
	next, eff := step(e.session, ev)
	e.session = next

	switch eff.kind {
	case effectBegin:
		e.history.RecordBeforeEdit(e.canvas)
		e.previewValid = false
		e.stats.Strokes++
		Logger().Debug("sketch: stroke begin",
			"session", e.id, "mode", e.mode.String(), "anchor", eff.anchor)

	case effectPreview:
		e.renderPreview(eff)
		e.stats.Previews++
		e.Present()

	case effectCommit:
		s := e.Style()
		e.canvas.PaintShape(e.mode, eff.anchor, eff.point, s)
		e.previewValid = false
		e.stats.Commits++
		Logger().Debug("sketch: stroke commit",
			"session", e.id, "mode", e.mode.String(),
			"anchor", eff.anchor, "point", eff.point,
			"color", s.Color.String(), "thickness", s.Thickness, "filled", s.Filled)
		e.Present()
	}
}

// renderPreview draws the in-progress shape onto a transient copy of the
// canvas. The canvas itself is not modified.
func (e *Engine) renderPreview(eff effect) {
	if e.preview == nil {
		e.preview = e.canvas.Clone()
	} else if err := e.preview.CopyFrom(e.canvas); err != nil {
		e.preview = e.canvas.Clone()
	}
	e.preview.PaintShape(e.mode, eff.anchor, eff.point, e.Style())
	e.previewValid = true
	e.previewAt = eff
}

// Undo restores the canvas to the state before the last edit. It reports
// false, without side effects, when there is nothing to undo.
func (e *Engine) Undo() bool {
	if !e.history.Undo(e.canvas) {
		return false
	}
	e.previewValid = false
	e.stats.Undos++
	Logger().Debug("sketch: undo", "session", e.id,
		"undo_depth", e.history.UndoDepth(), "redo_depth", e.history.RedoDepth())
	e.Present()
	return true
}

// Redo re-applies the last undone edit. It reports false, without side
// effects, when the redo stack is empty.
func (e *Engine) Redo() bool {
	if !e.history.Redo(e.canvas) {
		return false
	}
	e.previewValid = false
	e.stats.Redos++
	Logger().Debug("sketch: redo", "session", e.id,
		"undo_depth", e.history.UndoDepth(), "redo_depth", e.history.RedoDepth())
	e.Present()
	return true
}

// Clear records the current canvas for undo and fills it with the
// background color.
func (e *Engine) Clear() {
	e.history.RecordBeforeEdit(e.canvas)
	e.canvas.Clear()
	e.previewValid = false
	e.stats.Clears++
	Logger().Info("sketch: canvas cleared", "session", e.id)
	e.Present()
}

// Render returns the frame for the current tick: the preview buffer while
// a stroke has been previewed, otherwise the canvas, with the status line
// drawn on top when the overlay is enabled. The returned image is reused by
// the next call.
func (e *Engine) Render() image.Image {
	src := e.canvas
	if e.session.active && e.previewValid {
		src = e.preview
	}
	if !e.overlay {
		return src
	}
	if e.display == nil {
		e.display = image.NewRGBA(src.Bounds())
	}
	src.DrawTo(e.display)
	drawStatus(e.display, StatusLine(e.mode, e.styles.Style().Filled))
	return e.display
}

// Present pushes the current frame to the presenter, if any.
func (e *Engine) Present() {
	if e.presenter == nil {
		return
	}
	e.presenter.Present(e.Render())
}

// Save persists the canvas to path through the configured store.
func (e *Engine) Save(path string) error {
	if e.store == nil {
		return ErrNoStore
	}
	if err := e.store.Save(path, e.canvas); err != nil {
		Logger().Warn("sketch: save failed", "session", e.id, "path", path, "err", err)
		return fmt.Errorf("sketch: save %s: %w", path, err)
	}
	e.stats.Saves++
	Logger().Info("sketch: saved", "session", e.id, "path", path)
	return nil
}

// Close saves the canvas to the autosave path, once. Later calls are
// no-ops. Close without a store or autosave path only marks the engine
// closed. Implements io.Closer.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.store == nil || e.autosavePath == "" {
		return nil
	}
	return e.Save(e.autosavePath)
}

// Stats returns a copy of the engine counters.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.UndoDepth = e.history.UndoDepth()
	s.RedoDepth = e.history.RedoDepth()
	return s
}
