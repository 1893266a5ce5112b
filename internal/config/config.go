// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads drawing session settings from YAML.
//
// Every field has a default, so a config file only lists what it changes.
// Unknown keys are rejected and values are checked with struct tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imagefile"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full set of session settings.
type Config struct {
	Canvas  Canvas  `yaml:"canvas"`
	Pen     Pen     `yaml:"pen"`
	Files   Files   `yaml:"files"`
	History History `yaml:"history"`
	Log     Log     `yaml:"log"`

	// Overlay draws the mode and fill status over displayed frames.
	Overlay bool `yaml:"overlay"`
}

// Canvas selects the initial canvas.
type Canvas struct {
	Width      int    `yaml:"width" validate:"gt=0,lte=16384"`
	Height     int    `yaml:"height" validate:"gt=0,lte=16384"`
	Background string `yaml:"background" validate:"rgbhex"`

	// Image is an optional backing image, resized to ImageWidth x ImageHeight.
	Image       string `yaml:"image"`
	ImageWidth  int    `yaml:"image_width" validate:"gte=0,lte=16384"`
	ImageHeight int    `yaml:"image_height" validate:"gte=0,lte=16384"`
}

// Pen is the initial tool and style.
type Pen struct {
	Mode         string `yaml:"mode" validate:"mode"`
	Color        string `yaml:"color" validate:"rgbhex"`
	Thickness    int    `yaml:"thickness" validate:"gte=1,ltefield=MaxThickness"`
	MaxThickness int    `yaml:"max_thickness" validate:"gte=1,lte=512"`
	Filled       bool   `yaml:"filled"`
}

// Files names the save targets.
type Files struct {
	SavePath string `yaml:"save_path" validate:"required,imagepath"`
	// AutosavePath is written once at shutdown. Empty disables autosave.
	AutosavePath string `yaml:"autosave_path" validate:"omitempty,imagepath"`
}

// History bounds the undo stack. Zero is unbounded.
type History struct {
	Limit int `yaml:"limit" validate:"gte=0"`
}

// Log selects the log level.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// configValidate is the validator instance for configs.
// Initialized in init() with custom validators.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	_ = configValidate.RegisterValidation("mode", validateMode)
	_ = configValidate.RegisterValidation("imagepath", validateImagePath)
	_ = configValidate.RegisterValidation("rgbhex", validateRGBHex)
}

// validateRGBHex accepts the opaque hex forms sketch.ParseHex understands.
func validateRGBHex(fl validator.FieldLevel) bool {
	_, err := sketch.ParseHex(fl.Field().String())
	return err == nil
}

// validateMode accepts any name or shortcut sketch.ParseMode understands.
func validateMode(fl validator.FieldLevel) bool {
	_, err := sketch.ParseMode(fl.Field().String())
	return err == nil
}

// validateImagePath accepts paths with an extension imagefile can write.
func validateImagePath(fl validator.FieldLevel) bool {
	_, err := imagefile.FormatFromPath(fl.Field().String())
	return err == nil
}

// Default returns the settings of a plain session: a 1000x700 white canvas
// (or an image resized to 800x600), a 2-pixel black rectangle tool.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:       1000,
			Height:      700,
			Background:  "#ffffff",
			ImageWidth:  800,
			ImageHeight: 600,
		},
		Pen: Pen{
			Mode:         sketch.ModeRectangle.String(),
			Color:        "#000000",
			Thickness:    2,
			MaxThickness: sketch.MaxThickness,
		},
		Files: Files{
			SavePath:     "drawing_saved.png",
			AutosavePath: "drawing_autosave.png",
		},
		Log:     Log{Level: "info"},
		Overlay: true,
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

// Background returns the canvas background color.
func (c Config) Background() sketch.Color {
	return sketch.Hex(c.Canvas.Background)
}

// Mode returns the initial tool mode.
func (c Config) Mode() sketch.Mode {
	m, err := sketch.ParseMode(c.Pen.Mode)
	if err != nil {
		return sketch.ModeRectangle
	}
	return m
}

// Style returns the initial pen style.
func (c Config) Style() sketch.Style {
	return sketch.Style{
		Color:     sketch.Hex(c.Pen.Color),
		Thickness: c.Pen.Thickness,
		Filled:    c.Pen.Filled,
	}
}

// Source describes the initial canvas for imagefile.Open.
func (c Config) Source() imagefile.Source {
	return imagefile.Source{
		Path:        c.Canvas.Image,
		Width:       c.Canvas.ImageWidth,
		Height:      c.Canvas.ImageHeight,
		BlankWidth:  c.Canvas.Width,
		BlankHeight: c.Canvas.Height,
		Background:  c.Background(),
	}
}

// EngineOptions returns the engine options these settings imply. The style
// source is left to the caller.
func (c Config) EngineOptions() []sketch.EngineOption {
	return []sketch.EngineOption{
		sketch.WithMode(c.Mode()),
		sketch.WithMaxThickness(c.Pen.MaxThickness),
		sketch.WithHistoryLimit(c.History.Limit),
		sketch.WithAutosavePath(c.Files.AutosavePath),
		sketch.WithOverlay(c.Overlay),
	}
}

// SlogLevel converts Log.Level to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
