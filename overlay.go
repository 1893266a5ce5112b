// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// overlayColor is the status text color.
var overlayColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}

// overlayOrigin is the baseline start of the status text.
var overlayOrigin = image.Pt(10, 30)

// StatusLine returns the text shown over frames, e.g.
// "Mode: CIRCLE | Fill: ON".
func StatusLine(m Mode, filled bool) string {
	fill := "OFF"
	if filled {
		fill = "ON"
	}
	return "Mode: " + m.Label() + " | Fill: " + fill
}

// drawStatus draws text onto dst with the built-in 7x13 bitmap face.
func drawStatus(dst *image.RGBA, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(overlayColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(overlayOrigin.X, overlayOrigin.Y),
	}
	d.DrawString(text)
}
