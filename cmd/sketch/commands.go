// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/config"
)

// options holds the flags shared by every subcommand.
type options struct {
	configPath string
	verbose    bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "sketch",
		Short:         "Draw rectangles, circles, lines and erase on a raster canvas",
		Version:       sketch.Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"YAML configuration file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log at debug level")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newReplayCmd(opts),
		newBlankCmd(opts),
		newDemoCmd(opts),
	)
	return rootCmd
}

// load reads the configuration and installs the logger.
func (o *options) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	o.cfg = cfg

	level := cfg.SlogLevel()
	if o.verbose {
		level = slog.LevelDebug
	}
	sketch.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	sketch.Logger().Debug("sketch: configuration loaded", "path", o.configPath)
	return nil
}

// printf writes a progress line to the command output.
func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
