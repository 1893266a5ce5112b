// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynecanvas

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// ControlPanel is the slider panel setting the pen style.
type ControlPanel struct {
	Red       *widget.Slider
	Green     *widget.Slider
	Blue      *widget.Slider
	Thickness *widget.Slider
	Fill      *widget.Check

	controls *sketch.Controls
	onChange func()
	content  fyne.CanvasObject
}

// NewControlPanel creates sliders initialised from controls. Every change
// is written into controls and then reported to onChange, if set.
func NewControlPanel(controls *sketch.Controls, onChange func()) *ControlPanel {
	s := controls.Style()
	p := &ControlPanel{
		Red:       channelSlider(s.Color.R),
		Green:     channelSlider(s.Color.G),
		Blue:      channelSlider(s.Color.B),
		Thickness: widget.NewSlider(1, float64(controls.MaxThickness())),
		controls:  controls,
		onChange:  onChange,
	}
	p.Thickness.Step = 1
	p.Thickness.SetValue(float64(s.Thickness))
	p.Fill = widget.NewCheck("Fill", nil)
	p.Fill.SetChecked(s.Filled)

	// Handlers are set after the initial values so setup does not echo.
	for _, sl := range []*widget.Slider{p.Red, p.Green, p.Blue} {
		sl.OnChanged = func(float64) { p.applyColor() }
	}
	p.Thickness.OnChanged = func(v float64) {
		p.controls.SetThickness(int(v))
		p.changed()
	}
	p.Fill.OnChanged = func(on bool) {
		p.controls.SetFilled(on)
		p.changed()
	}

	p.content = container.NewHBox(
		labelled("R", p.Red),
		labelled("G", p.Green),
		labelled("B", p.Blue),
		widget.NewSeparator(),
		labelled("Thickness", p.Thickness),
		p.Fill,
		layout.NewSpacer(),
	)
	return p
}

// Content returns the panel layout.
func (p *ControlPanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *ControlPanel) applyColor() {
	p.controls.SetRGB(int(p.Red.Value), int(p.Green.Value), int(p.Blue.Value))
	p.changed()
}

func (p *ControlPanel) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

func channelSlider(v uint8) *widget.Slider {
	s := widget.NewSlider(0, 255)
	s.Step = 1
	s.SetValue(float64(v))
	return s
}

// labelled places a caption before a slider sized for a toolbar row.
func labelled(caption string, s *widget.Slider) fyne.CanvasObject {
	value := widget.NewLabel(strconv.Itoa(int(s.Value)))
	prev := s.OnChanged
	s.OnChanged = func(v float64) {
		value.SetText(strconv.Itoa(int(v)))
		if prev != nil {
			prev(v)
		}
	}
	return container.NewHBox(
		widget.NewLabel(caption),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), s),
		value,
	)
}
