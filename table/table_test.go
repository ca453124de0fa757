// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

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

func TestBuild(t *testing.T) {
	tab := Build(sample(t), nil)
	if tab.Filter != nil {
		t.Errorf("unfiltered table has filter %v", tab.Filter)
	}
	var got [][]string
	for _, r := range tab.Rows {
		got = append(got, r.Cells()[:5])
	}
	want := [][]string{
		{"startupCompilationNone", "timeToInitialDisplayMs", "402.6ms", "421.3ms", "468.1ms"},
		{"startupCompilationBaselineProfiles", "timeToInitialDisplayMs", "289.7ms", "301.3ms", "331.1ms"},
		{"scrollCompilationNone", "frameDurationCpuMs", "3.100ms", "6.400ms", "48.600ms"},
		{"scrollCompilationBaselineProfiles", "frameDurationCpuMs", "2.700ms", "5.100ms", "31.900ms"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if tab.Rows[0].Sampled || !tab.Rows[2].Sampled {
		t.Errorf("Sampled = %v, %v, want false, true", tab.Rows[0].Sampled, tab.Rows[2].Sampled)
	}
}

func TestRowStats(t *testing.T) {
	r := Build(sample(t), nil).Rows[0]
	if r.Runs != 5 {
		t.Errorf("Runs = %d, want 5", r.Runs)
	}
	if math.Abs(r.Mean-429.1366354) > 1e-6 {
		t.Errorf("Mean = %v, want 429.1366354", r.Mean)
	}
	if r.StdDev < 20 || r.StdDev > 25 {
		t.Errorf("StdDev = %v, want about 22-24", r.StdDev)
	}
	if got := r.MeanSD(); !strings.HasPrefix(got, "429.1ms ± ") || !strings.HasSuffix(got, "%") {
		t.Errorf("MeanSD = %q, want 429.1ms ± N%%", got)
	}
}

func TestRowWithoutRuns(t *testing.T) {
	c, err := benchdoc.Parse(`{"benchmarks":[{"name":"A","metrics":{"timeNs":{"minimum":1000,"maximum":3000,"median":2000}}},
		{"name":"B","metrics":{"gcCount":{"minimum":1,"maximum":1,"median":1,"runs":[1]}}}]}`)
	if err != nil {
		t.Fatal(err)
	}
	tab := Build(c, nil)
	if got := tab.Rows[0].MeanSD(); got != "-" {
		t.Errorf("MeanSD without runs = %q, want -", got)
	}
	if got := tab.Rows[0].Cells()[3]; got != "2.000µs" {
		t.Errorf("median = %q, want 2.000µs", got)
	}
	if got := tab.Rows[1].MeanSD(); got != "1.000" {
		t.Errorf("MeanSD with one run = %q, want 1.000", got)
	}
}

func TestBuildFiltered(t *testing.T) {
	f := benchview.NewFilter("scrollCompilationNone")
	tab := Build(benchview.Derive(sample(t), f), f)
	if diff := cmp.Diff([]string{"scrollCompilationNone"}, tab.Filter); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
	if len(tab.Rows) != 1 || tab.Rows[0].Benchmark != "scrollCompilationNone" {
		t.Errorf("filtered table has rows %v", tab.Rows)
	}

	tab = Build(benchdoc.Collection{}, benchview.NewFilter())
	if tab.Filter == nil || len(tab.Filter) != 0 || len(tab.Rows) != 0 {
		t.Errorf("empty filter table = %+v", tab)
	}
}

func TestFormatHTML(t *testing.T) {
	var buf bytes.Buffer
	FormatHTML(&buf, Build(sample(t), nil))
	out := buf.String()
	for _, want := range []string{
		"<table class='benchmarks'>",
		"<th>mean ± sd",
		"<td>startupCompilationNone<td>timeToInitialDisplayMs<td>402.6ms",
		"<tr class='sampled'>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	FormatHTML(&buf, Build(nil, nil))
	if !strings.Contains(buf.String(), "No benchmarks to show.") {
		t.Errorf("empty HTML output = %q", buf.String())
	}
}

func TestFormatHTMLEscapes(t *testing.T) {
	c, err := benchdoc.Parse(`{"benchmarks":[{"name":"<script>","metrics":{"x":{"median":1}}}]}`)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	FormatHTML(&buf, Build(c, nil))
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("benchmark name not escaped:\n%s", buf.String())
	}
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatText(&buf, Build(sample(t), nil)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range append(append([]string{}, Headers...), "startupCompilationNone", "402.6ms", "48.600ms") {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if got := Text(Build(nil, nil)); got != "No benchmarks to show.\n" {
		t.Errorf("empty text = %q", got)
	}
}
