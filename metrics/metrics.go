// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package metrics exports engine statistics to Prometheus.
//
// The collector reads a snapshot function on every scrape instead of
// holding the engine, so callers decide how reads are synchronized with
// the goroutine driving it.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/gogpu/sketch"
)

// Namespace prefixes every metric name.
const Namespace = "sketch"

// StatsFunc returns the current engine statistics.
type StatsFunc func() sketch.Stats

// Collector is a prometheus.Collector over one engine's statistics.
type Collector struct {
	stats StatsFunc

	strokes   *prometheus.Desc
	previews  *prometheus.Desc
	commits   *prometheus.Desc
	undos     *prometheus.Desc
	redos     *prometheus.Desc
	clears    *prometheus.Desc
	saves     *prometheus.Desc
	undoDepth *prometheus.Desc
	redoDepth *prometheus.Desc
}

// NewCollector creates a collector labelled with the engine session ID.
func NewCollector(session string, stats StatsFunc) *Collector {
	labels := prometheus.Labels{"session": session}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(Namespace, "", name), help, nil, labels)
	}
	return &Collector{
		stats:     stats,
		strokes:   desc("strokes_total", "Strokes started."),
		previews:  desc("previews_total", "Preview frames rendered."),
		commits:   desc("commits_total", "Strokes committed to the canvas."),
		undos:     desc("undos_total", "Successful undo operations."),
		redos:     desc("redos_total", "Successful redo operations."),
		clears:    desc("clears_total", "Canvas clears."),
		saves:     desc("saves_total", "Successful saves."),
		undoDepth: desc("undo_depth", "Snapshots on the undo stack."),
		redoDepth: desc("redo_depth", "Snapshots on the redo stack."),
	}
}

// ForEngine creates a collector reading e directly. Only scrape it from
// the goroutine driving e.
func ForEngine(e *sketch.Engine) *Collector {
	return NewCollector(e.ID(), e.Stats)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.strokes
	ch <- c.previews
	ch <- c.commits
	ch <- c.undos
	ch <- c.redos
	ch <- c.clears
	ch <- c.saves
	ch <- c.undoDepth
	ch <- c.redoDepth
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	counter(c.strokes, s.Strokes)
	counter(c.previews, s.Previews)
	counter(c.commits, s.Commits)
	counter(c.undos, s.Undos)
	counter(c.redos, s.Redos)
	counter(c.clears, s.Clears)
	counter(c.saves, s.Saves)
	gauge(c.undoDepth, s.UndoDepth)
	gauge(c.redoDepth, s.RedoDepth)
}

// WriteText gathers g and writes it in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write: %w", err)
		}
	}
	return nil
}
