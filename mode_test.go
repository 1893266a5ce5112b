// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"errors"
	"testing"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantName  string
		wantLabel string
		wantKey   rune
	}{
		{ModeRectangle, "rectangle", "RECTANGLE", 'r'},
		{ModeCircle, "circle", "CIRCLE", 'c'},
		{ModeLine, "line", "LINE", 'l'},
		{ModeEraser, "eraser", "ERASER", 'e'},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
			if got := tt.mode.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := tt.mode.Shortcut(); got != tt.wantKey {
				t.Errorf("Shortcut() = %q, want %q", got, tt.wantKey)
			}
		})
	}
}

func TestMode_Invalid(t *testing.T) {
	m := Mode(42)
	if m.IsValid() {
		t.Error("Mode(42).IsValid() = true")
	}
	if got := m.String(); got != "Mode(42)" {
		t.Errorf("String() = %q, want %q", got, "Mode(42)")
	}
	if m.Shortcut() != 0 {
		t.Error("invalid mode should have no shortcut")
	}
}

func TestMode_Filled(t *testing.T) {
	for _, m := range Modes() {
		want := m == ModeRectangle || m == ModeCircle
		if got := m.Filled(); got != want {
			t.Errorf("%v.Filled() = %v, want %v", m, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"rectangle", ModeRectangle, false},
		{"Circle", ModeCircle, false},
		{" line ", ModeLine, false},
		{"e", ModeEraser, false},
		{"R", ModeRectangle, false},
		{"brush", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}
