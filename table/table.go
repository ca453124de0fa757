// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table summarizes a benchmark view as a table with one row
// per benchmark metric.
package table

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/benchunit"
	"github.com/benchmarkify/benchmarkify/benchview"
)

// A Table is the summary of a view.
type Table struct {
	// Filter lists the selected benchmark names, or is nil if the
	// view is unfiltered.
	Filter []string
	Rows   []*Row
}

// A Row summarizes one metric of one benchmark entry.
type Row struct {
	Benchmark string
	Metric    string
	Sampled   bool // Metric came from sampledMetrics

	Min, Median, Max float64
	// Mean and StdDev are computed over Runs. StdDev is 0 with
	// fewer than two runs. Both are NaN with no runs.
	Mean, StdDev float64
	Runs         int

	Unit   benchunit.Unit
	Scaler benchunit.Scaler
}

// Build returns the table for view.
func Build(view benchdoc.Collection, filter *benchview.Filter) *Table {
	t := &Table{Rows: []*Row{}}
	if filter != nil {
		t.Filter = filter.Names()
		if t.Filter == nil {
			t.Filter = []string{}
		}
	}
	for _, e := range view {
		for _, name := range e.MetricNames() {
			m, _ := e.Metric(name)
			_, regular := e.Metrics[name]
			t.Rows = append(t.Rows, newRow(e.Name, name, !regular, m))
		}
	}
	return t
}

func newRow(bench, metric string, sampled bool, m benchdoc.Metric) *Row {
	r := &Row{
		Benchmark: bench,
		Metric:    metric,
		Sampled:   sampled,
		Min:       m.Minimum,
		Median:    m.Median,
		Max:       m.Maximum,
		Mean:      math.NaN(),
		StdDev:    math.NaN(),
		Runs:      len(m.Runs),
		Unit:      benchunit.UnitOf(metric),
	}
	if r.Runs > 0 {
		s := stats.Sample{Xs: m.Runs}
		r.Mean = s.Mean()
		r.StdDev = 0
		if r.Runs > 1 {
			r.StdDev = s.StdDev()
		}
	}
	vals := []float64{r.Min, r.Median, r.Max}
	if r.Runs > 0 {
		vals = append(vals, r.Mean)
	}
	r.Scaler = r.Unit.Scaler(vals)
	return r
}

// Format formats v, a value of r's metric.
func (r *Row) Format(v float64) string {
	return r.Unit.Format(r.Scaler, v)
}

// MeanSD formats the mean of the runs with the standard deviation as
// a percentage of the mean, such as "421.3ms ± 5%".
func (r *Row) MeanSD() string {
	if r.Runs == 0 {
		return "-"
	}
	mean := r.Format(r.Mean)
	if r.Runs < 2 || r.Mean == 0 {
		return mean
	}
	return fmt.Sprintf("%s ± %.0f%%", mean, 100*r.StdDev/math.Abs(r.Mean))
}

// Headers are the column titles of the formatted table.
var Headers = []string{"benchmark", "metric", "min", "median", "max", "mean ± sd", "runs"}

// Cells returns the formatted columns of r, matching Headers.
func (r *Row) Cells() []string {
	return []string{
		r.Benchmark,
		r.Metric,
		r.Format(r.Min),
		r.Format(r.Median),
		r.Format(r.Max),
		r.MeanSD(),
		fmt.Sprint(r.Runs),
	}
}
