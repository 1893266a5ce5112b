// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynecanvas runs a sketch engine inside a fyne desktop window.
//
// The data flow is:
//
//	mouse (fyne) -> Board -> sketch.Engine -> Board.Present -> canvas.Image
//
// # Architecture
//
//   - Board is a widget that maps pointer positions to canvas pixels and
//     displays the frames the engine presents
//   - ControlPanel holds the R, G, B and thickness sliders and the fill
//     toggle, writing into a sketch.Controls
//   - Window assembles both, binds the keyboard shortcuts and autosaves
//     when the window closes
//
// # Usage
//
//	a := app.New()
//	w := fynecanvas.NewWindow(a, sketch.NewCanvas(1000, 700, sketch.White), fynecanvas.Config{
//	    SavePath: "drawing_saved.png",
//	    Options:  []sketch.EngineOption{sketch.WithStore(imagefile.Store{})},
//	})
//	w.ShowAndRun()
//
// # Keyboard
//
//	r, c, l, e  select Rectangle, Circle, Line, Eraser
//	z, y        undo, redo
//	x           clear
//	s           save
//	Escape      close (autosaves)
//
// # Thread Safety
//
// fyne delivers input and lifecycle callbacks on its main goroutine, which
// is the only goroutine driving the engine. Nothing here is safe for use
// from other goroutines.
package fynecanvas
