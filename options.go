// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Static black pen, no presentation
//	e := sketch.NewEngine(canvas)
//
//	// Slider-backed pen shown in a window
//	e := sketch.NewEngine(canvas,
//	    sketch.WithStyleSource(controls),
//	    sketch.WithPresenter(board))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	styles       StyleSource
	mode         Mode
	historyLimit int
	maxThickness int
	presenter    Presenter
	store        Store
	autosavePath string
	overlay      bool
	id           string
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		styles:       StaticStyle(DefaultStyle()),
		mode:         ModeRectangle,
		maxThickness: MaxThickness,
	}
}

// WithStyleSource sets the provider queried for the pen style on every
// pointer event.
func WithStyleSource(s StyleSource) EngineOption {
	return func(o *engineOptions) {
		if s != nil {
			o.styles = s
		}
	}
}

// WithMode sets the initial tool mode. Invalid modes are ignored.
func WithMode(m Mode) EngineOption {
	return func(o *engineOptions) {
		if m.IsValid() {
			o.mode = m
		}
	}
}

// WithHistoryLimit caps the undo depth, evicting the oldest entries.
// The default, 0, keeps history unbounded.
func WithHistoryLimit(n int) EngineOption {
	return func(o *engineOptions) {
		o.historyLimit = n
	}
}

// WithMaxThickness sets the cap applied to every style the engine reads.
func WithMaxThickness(n int) EngineOption {
	return func(o *engineOptions) {
		if n > 0 {
			o.maxThickness = n
		}
	}
}

// WithPresenter sets the sink receiving rendered frames.
func WithPresenter(p Presenter) EngineOption {
	return func(o *engineOptions) {
		o.presenter = p
	}
}

// WithStore sets the persistence sink used by Save and Close.
func WithStore(s Store) EngineOption {
	return func(o *engineOptions) {
		o.store = s
	}
}

// WithAutosavePath sets where Close persists the canvas. Empty disables
// the automatic save.
func WithAutosavePath(path string) EngineOption {
	return func(o *engineOptions) {
		o.autosavePath = path
	}
}

// WithOverlay enables the "Mode: ... | Fill: ..." status line on rendered
// frames. The overlay is never written into the canvas.
func WithOverlay(enabled bool) EngineOption {
	return func(o *engineOptions) {
		o.overlay = enabled
	}
}

// WithID sets the engine identifier attached to log records. By default a
// random UUID is generated.
func WithID(id string) EngineOption {
	return func(o *engineOptions) {
		o.id = id
	}
}
