// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imagefile"
)

func newBlankCmd(opts *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Write a blank canvas of the configured size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			c := sketch.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Background())
			if err := imagefile.Save(outPath, c); err != nil {
				return err
			}
			printf(cmd, "wrote %s (%dx%d)", outPath, c.Width(), c.Height())
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output image file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
