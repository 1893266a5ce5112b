// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfImageName is the resource name of the embedded raster.
const pdfImageName = "canvas"

// EncodePDF writes img as a one-page PDF whose page is exactly the image
// size, one point per pixel. The raster is embedded losslessly as PNG.
func EncodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("imagefile: encode pdf: empty image")
	}

	var raster bytes.Buffer
	if err := png.Encode(&raster, toRGBA(img)); err != nil {
		return fmt.Errorf("imagefile: encode pdf: %w", err)
	}

	width, height := float64(b.Dx()), float64(b.Dy())
	// Portrait keeps Size as given; landscape would swap the sides.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, opts, &raster)
	pdf.ImageOptions(pdfImageName, 0, 0, width, height, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("imagefile: encode pdf: %w", err)
	}
	return nil
}
