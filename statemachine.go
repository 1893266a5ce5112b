// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"image"
)

// EventKind identifies a pointer event.
type EventKind int

const (
	// PointerDown starts a stroke at the event position.
	PointerDown EventKind = iota

	// PointerMove updates the in-progress stroke and requests a preview.
	PointerMove

	// PointerUp completes the stroke and commits it.
	PointerUp
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single pointer event in canvas coordinates. Positions are not
// validated; shapes reaching outside the canvas are clipped.
type Event struct {
	Kind EventKind
	Pos  image.Point
}

// session is the stroke state: Idle when inactive, Drawing when active.
type session struct {
	active bool
	anchor image.Point
}

// effectKind is the side effect a transition asks the engine to perform.
type effectKind int

const (
	effectNone effectKind = iota
	effectBegin
	effectPreview
	effectCommit
)

// effect carries the stroke geometry for effectPreview and effectCommit.
type effect struct {
	kind   effectKind
	anchor image.Point
	point  image.Point
}

// step is the tool state machine. It has no side effects: the engine
// applies the returned effect. Events arriving in the wrong state are
// dropped, so an out-of-order input source cannot corrupt the session.
func step(s session, ev Event) (session, effect) {
	switch {
	case ev.Kind == PointerDown && !s.active:
		return session{active: true, anchor: ev.Pos}, effect{kind: effectBegin, anchor: ev.Pos, point: ev.Pos}
	case ev.Kind == PointerMove && s.active:
		return s, effect{kind: effectPreview, anchor: s.anchor, point: ev.Pos}
	case ev.Kind == PointerUp && s.active:
		return session{}, effect{kind: effectCommit, anchor: s.anchor, point: ev.Pos}
	default:
		return s, effect{kind: effectNone}
	}
}
