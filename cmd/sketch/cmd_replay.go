// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/imagefile"
	"github.com/gogpu/sketch/internal/script"
	"github.com/gogpu/sketch/metrics"
)

func newReplayCmd(opts *options) *cobra.Command {
	var (
		outPath     string
		autosave    string
		withMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Drive the engine from a command script",
		Long: `Replay reads a script of pointer and tool commands, one per line:

  down X Y | move X Y | up X Y
  mode rectangle|circle|line|eraser
  color #rrggbb | rgb R G B | thickness N | fill on|off
  undo | redo | clear | save PATH

Lines starting with # are comments. The canvas is autosaved on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("autosave") {
				cfg.Files.AutosavePath = autosave
			}

			f, err := os.Open(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("replay: open script: %w", err)
			}
			cmds, err := script.Parse(f)
			_ = f.Close()
			if err != nil {
				return err
			}

			c, _ := imagefile.Open(cfg.Source())
			controls := sketch.NewControls(cfg.Style(), cfg.Pen.MaxThickness)
			engineOpts := append(cfg.EngineOptions(),
				sketch.WithStyleSource(controls),
				sketch.WithStore(imagefile.Store{}),
				sketch.WithAutosavePath(cfg.Files.AutosavePath))
			e := sketch.NewEngine(c, engineOpts...)

			runErr := script.NewPlayer(e, controls).Run(cmd.Context(), cmds)
			if runErr == nil && outPath != "" {
				runErr = e.Save(outPath)
			}
			closeErr := e.Close()
			if err := errors.Join(runErr, closeErr); err != nil {
				return err
			}

			printf(cmd, "replayed %d commands", len(cmds))
			if withMetrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(metrics.ForEngine(e))
				return metrics.WriteText(cmd.OutOrStdout(), reg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Save the final canvas to this file")
	cmd.Flags().StringVar(&autosave, "autosave", "",
		"Override the autosave path; empty disables autosave")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false,
		"Print engine counters in Prometheus text format")
	return cmd
}
