// Package sketch provides an interactive raster drawing engine for Go.
//
// # Overview
//
// sketch turns a stream of pointer events into shapes on a fixed-size RGB
// pixel grid. It previews the shape being dragged without touching the
// canvas, commits it once on release, and keeps an undo/redo history of
// full canvas snapshots.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	// Create a blank canvas and an engine editing it
//	c := sketch.NewCanvas(1000, 700, sketch.White)
//	e := sketch.NewEngine(c, sketch.WithMode(sketch.ModeCircle))
//
//	// Drag a circle of radius 50
//	e.PointerDown(image.Pt(100, 100))
//	e.PointerMove(image.Pt(120, 120))
//	e.PointerUp(image.Pt(130, 140))
//
//	// Take it back
//	e.Undo()
//
// # Tools
//
// Four tools are available: Rectangle, Circle, Line and Eraser.
// Rectangle and Circle are drawn filled or as an outline of the style
// thickness; Line and Eraser always use the thickness. The eraser paints
// the canvas background color.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Engine, History, Style, Mode
//   - raster: integer pixel primitives (spans, circles, lines, polygons)
//   - imagefile: loading and saving canvases as PNG, JPEG, BMP, TIFF, PDF
//   - integration/fynecanvas: a desktop window driving an Engine
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rectangle corners are inclusive
//
// # Concurrency
//
// Canvas, History and Engine are single-threaded. Drive an engine from one
// goroutine, the way window toolkits deliver input.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
