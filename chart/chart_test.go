// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/benchview"
)

func sample(t *testing.T) benchdoc.Collection {
	t.Helper()
	c, err := benchdoc.Parse(benchdoc.Sample())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRender(t *testing.T) {
	view := sample(t)
	for _, test := range []struct {
		name   string
		view   benchdoc.Collection
		opts   Options
		prefix string
	}{
		{"png", view, Options{}, "\x89PNG\r\n\x1a\n"},
		{"dark png", view, Options{Format: PNG, Dark: true}, "\x89PNG\r\n\x1a\n"},
		{"svg", view, Options{Format: SVG}, "<?xml"},
		{"empty png", benchdoc.Collection{}, Options{Format: PNG}, "\x89PNG\r\n\x1a\n"},
		{"empty svg", nil, Options{Format: SVG}, "<?xml"},
	} {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, test.view, nil, test.opts); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.HasPrefix(buf.String(), test.prefix) {
				t.Errorf("output starts with %q, want %q", buf.String()[:min(len(buf.String()), 8)], test.prefix)
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sample(t), nil, Options{Format: "gif"}); err == nil {
		t.Errorf("Render with format gif succeeded")
	}
}

func TestPlotTitle(t *testing.T) {
	view := sample(t)
	for _, test := range []struct {
		view   benchdoc.Collection
		filter *benchview.Filter
		want   string
	}{
		{view, nil, "All benchmarks"},
		{benchview.Derive(view, benchview.NewFilter("startupCompilationNone")), benchview.NewFilter("startupCompilationNone"), "Filtered: startupCompilationNone"},
		{benchdoc.Collection{}, benchview.NewFilter("x"), EmptyTitle},
		{mustParse(t, `{"benchmarks":[{"name":"A"}]}`), nil, NoMetricsTitle},
		{mustParse(t, `{"benchmarks":[{"name":"B","time":20}]}`), benchview.NewFilter("B"), NoMetricsTitle},
	} {
		if got := Plot(test.view, test.filter).Title.Text; got != test.want {
			t.Errorf("title = %q, want %q", got, test.want)
		}
	}
}

func mustParse(t *testing.T, raw string) benchdoc.Collection {
	t.Helper()
	c, err := benchdoc.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRangeBarsDataRange(t *testing.T) {
	r := &rangeBars{lo: []float64{3, nan(), 1}, hi: []float64{5, nan(), 9}}
	xmin, xmax, ymin, ymax := r.DataRange()
	if xmin != 0 || xmax != 2 || ymin != 1 || ymax != 9 {
		t.Errorf("DataRange = %v, %v, %v, %v, want 0, 2, 1, 9", xmin, xmax, ymin, ymax)
	}
}

func nan() float64 { return math.NaN() }
