// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package metrics

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/gogpu/sketch"
)

func drawnEngine() *sketch.Engine {
	e := sketch.NewEngine(sketch.NewCanvas(20, 20, sketch.White), sketch.WithID("s1"))
	e.PointerDown(image.Pt(1, 1))
	e.PointerMove(image.Pt(3, 3))
	e.PointerMove(image.Pt(4, 4))
	e.PointerUp(image.Pt(5, 5))
	e.Undo()
	return e
}

func TestCollectorValues(t *testing.T) {
	c := ForEngine(drawnEngine())

	if n := testutil.CollectAndCount(c); n != 9 {
		t.Fatalf("CollectAndCount = %d, want 9", n)
	}

	want := `
# HELP sketch_previews_total Preview frames rendered.
# TYPE sketch_previews_total counter
sketch_previews_total{session="s1"} 2
# HELP sketch_redo_depth Snapshots on the redo stack.
# TYPE sketch_redo_depth gauge
sketch_redo_depth{session="s1"} 1
# HELP sketch_undos_total Successful undo operations.
# TYPE sketch_undos_total counter
sketch_undos_total{session="s1"} 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(want),
		"sketch_previews_total", "sketch_redo_depth", "sketch_undos_total")
	if err != nil {
		t.Error(err)
	}
}

func TestCollectorReadsOnScrape(t *testing.T) {
	var stats sketch.Stats
	c := NewCollector("s2", func() sketch.Stats { return stats })

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(c)

	stats.Commits = 7
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}

	var found bool
	for _, mf := range families {
		if mf.GetName() != "sketch_commits_total" {
			continue
		}
		found = true
		if mf.GetType() != dto.MetricType_COUNTER {
			t.Errorf("type = %v, want counter", mf.GetType())
		}
		if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 7 {
			t.Errorf("value = %v, want 7", got)
		}
	}
	if !found {
		t.Error("sketch_commits_total not gathered")
	}
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ForEngine(drawnEngine()))

	var buf bytes.Buffer
	if err := WriteText(&buf, reg); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(buf.String(), `sketch_strokes_total{session="s1"} 1`) {
		t.Errorf("output missing strokes counter:\n%s", buf.String())
	}
}
