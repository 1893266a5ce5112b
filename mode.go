// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMode is returned by ParseMode for unrecognized tool names.
var ErrUnknownMode = errors.New("sketch: unknown tool mode")

// Mode selects the shape a stroke produces.
type Mode int

const (
	// ModeRectangle draws an axis-aligned rectangle between anchor and pointer.
	ModeRectangle Mode = iota

	// ModeCircle draws a circle centered on the anchor through the pointer.
	ModeCircle

	// ModeLine draws a straight segment from anchor to pointer.
	ModeLine

	// ModeEraser draws a line in the canvas background color.
	ModeEraser
)

var modeNames = [...]string{
	ModeRectangle: "rectangle",
	ModeCircle:    "circle",
	ModeLine:      "line",
	ModeEraser:    "eraser",
}

// Modes returns all tool modes in shortcut order.
func Modes() []Mode {
	return []Mode{ModeRectangle, ModeCircle, ModeLine, ModeEraser}
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Label returns the upper-case name shown in the status line.
// A Caser is stateful, so each call builds its own.
func (m Mode) Label() string {
	return cases.Upper(language.English).String(m.String())
}

// Shortcut returns the keyboard letter selecting m.
func (m Mode) Shortcut() rune {
	if !m.IsValid() {
		return 0
	}
	return rune(modeNames[m][0])
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool {
	return m >= ModeRectangle && m <= ModeEraser
}

// Filled reports whether the fill flag applies to shapes of this mode.
func (m Mode) Filled() bool {
	return m == ModeRectangle || m == ModeCircle
}

// ParseMode accepts a mode name ("circle") or its shortcut letter ("c"),
// case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if s == m.String() || (len(s) == 1 && rune(s[0]) == m.Shortcut()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
