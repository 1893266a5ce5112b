// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imagefile"
	"github.com/gogpu/sketch/integration/fynecanvas"
)

func newRunCmd(opts *options) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the drawing window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("image") {
				cfg.Canvas.Image = imagePath
			}

			c, _ := imagefile.Open(cfg.Source())
			controls := sketch.NewControls(cfg.Style(), cfg.Pen.MaxThickness)

			w := fynecanvas.NewWindow(app.New(), c, fynecanvas.Config{
				Title:    "Sketch",
				Controls: controls,
				SavePath: cfg.Files.SavePath,
				Options:  append(cfg.EngineOptions(), sketch.WithStore(imagefile.Store{})),
			})
			return w.ShowAndRun()
		},
	}
	cmd.Flags().StringVarP(&imagePath, "image", "i", "",
		"Backing image to draw on (resized to the configured image size)")
	return cmd
}
