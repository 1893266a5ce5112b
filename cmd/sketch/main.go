// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sketch is an interactive shape drawing tool.
//
// Usage:
//
//	sketch run [--config f] [--image f]
//	sketch replay SCRIPT [--config f] [--out f] [--metrics]
//	sketch blank --out f
//	sketch demo [--out f]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
