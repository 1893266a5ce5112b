// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imagefile"
)

// maxDemoSide matches the canvas size limit of the config file.
const maxDemoSide = 16384

func newDemoCmd(_ *options) *cobra.Command {
	var (
		width, height int
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample drawing made of every tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 || height <= 0 || width > maxDemoSide || height > maxDemoSide {
				return fmt.Errorf("demo: size %dx%d out of range 1..%d", width, height, maxDemoSide)
			}
			c := sketch.NewCanvas(width, height, sketch.White)
			controls := sketch.NewControls(sketch.DefaultStyle(), 0)
			e := sketch.NewEngine(c, sketch.WithStyleSource(controls))

			drawDemo(e, controls, width, height)

			if err := imagefile.Save(outPath, c); err != nil {
				return err
			}
			printf(cmd, "Demo saved to %s (%dx%d)", outPath, width, height)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "image width")
	cmd.Flags().IntVar(&height, "height", 600, "image height")
	cmd.Flags().StringVarP(&outPath, "out", "o", "demo.png", "output file")
	return cmd
}

func drag(e *sketch.Engine, from, to image.Point) {
	e.PointerDown(from)
	e.PointerMove(image.Pt((from.X+to.X)/2, (from.Y+to.Y)/2))
	e.PointerUp(to)
}

// drawDemo exercises each tool once over a w x h canvas.
func drawDemo(e *sketch.Engine, controls *sketch.Controls, w, h int) {
	// Banded background
	e.SetMode(sketch.ModeRectangle)
	controls.SetFilled(true)
	steps := 20
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		controls.SetRGB(int(25+t*100), int(50+t*75), int(100+t*50))
		y0 := h * i / steps
		drag(e, image.Pt(0, y0), image.Pt(w-1, h*(i+1)/steps-1))
	}

	// Overlapping circles
	e.SetMode(sketch.ModeCircle)
	for i, col := range []sketch.Color{sketch.Red, sketch.Green, sketch.Blue} {
		controls.SetColor(col)
		center := image.Pt(w/5+i*w/16, h/4+(i%2)*h/12)
		drag(e, center, center.Add(image.Pt(w/13, 0)))
	}

	// Outlined shapes
	controls.SetFilled(false)
	controls.SetColor(sketch.White)
	controls.SetThickness(4)
	e.SetMode(sketch.ModeRectangle)
	drag(e, image.Pt(w*7/16, h/6), image.Pt(w*9/16, h*3/10))
	e.SetMode(sketch.ModeCircle)
	drag(e, image.Pt(w*3/4, h/4), image.Pt(w*3/4+w/12, h/4))

	// Star of lines
	e.SetMode(sketch.ModeLine)
	controls.SetColor(sketch.Yellow)
	center := image.Pt(w/2, h*2/3)
	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		tip := center.Add(image.Pt(int(math.Cos(a)*float64(h)/5), int(math.Sin(a)*float64(h)/5)))
		controls.SetThickness(1 + i%4)
		drag(e, center, tip)
	}

	// Erase a band through the star
	e.SetMode(sketch.ModeEraser)
	controls.SetThickness(10)
	drag(e, image.Pt(center.X-h/5, center.Y), image.Pt(center.X+h/5, center.Y))
}
