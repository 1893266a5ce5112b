// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imagefile reads and writes canvases as standard image files.
//
// Save picks the encoder from the file extension: PNG, JPEG, BMP, TIFF and
// PDF (a single page sized to the image). Load auto-detects PNG, JPEG, GIF,
// BMP, TIFF and WebP from content.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for image.Decode.
	_ "image/gif"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension has no encoder.
	ErrUnsupportedFormat = errors.New("imagefile: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imagefile: empty data")
)

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPDF  Format = "pdf"
)

// DefaultJPEGQuality is used when a Store has no quality set.
const DefaultJPEGQuality = 90

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load loads an image from the given file path, auto-detecting the format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imagefile: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image held in memory.
func LoadFromBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagefile: decode: %w", err)
	}
	return img, nil
}

// Encode writes img to w in the given format. quality applies to JPEG only.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	img = toRGBA(img)
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: min(max(quality, 1), 100)})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return EncodePDF(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imagefile: encode %s: %w", format, err)
	}
	return nil
}

// toRGBA returns img as an 8-bit *image.RGBA. Encoders pick their bit
// depth from the color model, and anything outside the standard models
// would otherwise be written as 16-bit.
func toRGBA(img image.Image) *image.RGBA {
	switch src := img.(type) {
	case *image.RGBA:
		return src
	case interface{ ToImage() *image.RGBA }:
		return src.ToImage()
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Store saves images to the local file system. The zero value is ready to
// use. Store implements sketch.Store.
type Store struct {
	// JPEGQuality is the quality (1-100) used for .jpg files.
	// Zero selects DefaultJPEGQuality.
	JPEGQuality int
}

// Save writes img to path, choosing the encoder from the extension.
// The file is written next to its destination and renamed into place, so
// an interrupted save never leaves a truncated image behind.
func (s Store) Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	quality := s.JPEGQuality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}

	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imagefile: create file: %w", err)
	}
	tmp := f.Name()

	if err := Encode(f, img, format, quality); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("imagefile: close file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("imagefile: rename: %w", err)
	}
	return nil
}

// Save writes img to path with the default Store.
func Save(path string, img image.Image) error {
	return Store{}.Save(path, img)
}
