// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Background() != sketch.White {
		t.Errorf("Background() = %v, want white", cfg.Background())
	}
	if cfg.Style() != sketch.DefaultStyle() {
		t.Errorf("Style() = %+v, want %+v", cfg.Style(), sketch.DefaultStyle())
	}
	if cfg.Mode() != sketch.ModeRectangle {
		t.Errorf("Mode() = %v, want rectangle", cfg.Mode())
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", cfg)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
canvas:
  width: 320
  background: "#202020"
pen:
  mode: c
  color: "#ff0000"
  thickness: 5
  filled: true
history:
  limit: 20
log:
  level: debug
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != 700 {
		t.Errorf("canvas = %dx%d, want 320x700", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Background() != sketch.RGB(0x20, 0x20, 0x20) {
		t.Errorf("Background() = %v", cfg.Background())
	}
	if cfg.Mode() != sketch.ModeCircle {
		t.Errorf("Mode() = %v, want circle", cfg.Mode())
	}
	want := sketch.Style{Color: sketch.Red, Thickness: 5, Filled: true}
	if cfg.Style() != want {
		t.Errorf("Style() = %+v, want %+v", cfg.Style(), want)
	}
	if cfg.History.Limit != 20 {
		t.Errorf("History.Limit = %d, want 20", cfg.History.Limit)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.Files.SavePath != "drawing_saved.png" {
		t.Errorf("SavePath = %q, want default", cfg.Files.SavePath)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "canvas: {width: 0}"},
		{"bad background", "canvas: {background: white}"},
		{"background with alpha", `canvas: {background: "#ffffffff"}`},
		{"short background with alpha", `canvas: {background: "#ffff"}`},
		{"pen color with alpha", `pen: {color: "#ff000080"}`},
		{"bad mode", "pen: {mode: spray}"},
		{"thickness above max", "pen: {thickness: 40}"},
		{"zero thickness", "pen: {thickness: 0}"},
		{"negative limit", "history: {limit: -1}"},
		{"bad log level", "log: {level: loud}"},
		{"save without extension", "files: {save_path: drawing}"},
		{"empty save path", `files: {save_path: ""}`},
		{"autosave unsupported", "files: {autosave_path: out.gif}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("canvas: {depth: 3}"))
	if err == nil {
		t.Fatal("Parse() accepted an unknown key")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("unknown key should be a decode error, not a validation error")
	}
}

func TestAutosaveMayBeDisabled(t *testing.T) {
	cfg, err := Parse([]byte(`files: {autosave_path: ""}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Files.AutosavePath != "" {
		t.Errorf("AutosavePath = %q, want empty", cfg.Files.AutosavePath)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")
	if err := os.WriteFile(path, []byte("overlay: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Overlay {
		t.Error("Overlay = true, want false")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not-exist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Pen.Filled = true
	cfg.Canvas.Image = "photo.jpg"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Pen.Mode = "line"
	cfg.History.Limit = 1

	e := sketch.NewEngine(sketch.NewCanvas(10, 10, cfg.Background()), cfg.EngineOptions()...)
	if e.Mode() != sketch.ModeLine {
		t.Errorf("Mode() = %v, want line", e.Mode())
	}
	e.Clear()
	e.Clear()
	if e.History().UndoDepth() != 1 {
		t.Errorf("UndoDepth = %d, want 1", e.History().UndoDepth())
	}
}

func TestSource(t *testing.T) {
	src := Default().Source()
	if src.BlankWidth != 1000 || src.BlankHeight != 700 {
		t.Errorf("blank size = %dx%d, want 1000x700", src.BlankWidth, src.BlankHeight)
	}
	if src.Width != 800 || src.Height != 600 {
		t.Errorf("image size = %dx%d, want 800x600", src.Width, src.Height)
	}
}
