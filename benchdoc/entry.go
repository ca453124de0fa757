// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdoc

import (
	"bytes"
	"encoding/json"
	"sort"
)

// An Entry is one measured benchmark result.
//
// Name is the grouping and filter key. It is not guaranteed to be
// unique within a document.
//
// The remaining decoded fields are read on a best-effort basis for
// the chart and table renderers. A field that is missing or has an
// unexpected type is left at its zero value.
type Entry struct {
	Name             string
	ClassName        string
	TotalRunTimeNs   int64
	WarmupIterations int
	RepeatIterations int

	// Metrics maps a metric name (such as "timeNs" or
	// "timeToInitialDisplayMs") to its measurements.
	Metrics map[string]Metric
	// SampledMetrics holds per-frame metrics such as
	// "frameDurationCpuMs".
	SampledMetrics map[string]Metric

	// Raw is the exact JSON text of the entry as it appeared in
	// the document.
	Raw json.RawMessage
}

// A Metric is the summary of one measured quantity over the runs of
// a benchmark.
type Metric struct {
	Minimum float64   `json:"minimum"`
	Maximum float64   `json:"maximum"`
	Median  float64   `json:"median"`
	Runs    []float64 `json:"runs,omitempty"`
}

// UnmarshalJSON decodes an entry. data must be a JSON object.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*e = Entry{Raw: append(json.RawMessage(nil), data...)}

	// Each field decodes independently; a bad field leaves its
	// zero value rather than failing the entry.
	lenient := func(key string, v interface{}) {
		if f, ok := fields[key]; ok {
			json.Unmarshal(f, v)
		}
	}
	lenient("name", &e.Name)
	lenient("className", &e.ClassName)
	lenient("totalRunTimeNs", &e.TotalRunTimeNs)
	lenient("warmupIterations", &e.WarmupIterations)
	lenient("repeatIterations", &e.RepeatIterations)
	e.Metrics = decodeMetrics(fields["metrics"])
	e.SampledMetrics = decodeMetrics(fields["sampledMetrics"])
	return nil
}

// MarshalJSON returns the entry's original JSON text.
func (e *Entry) MarshalJSON() ([]byte, error) {
	if len(e.Raw) == 0 {
		return json.Marshal(map[string]string{"name": e.Name})
	}
	return e.Raw, nil
}

// Equal reports whether e and o encode the same JSON text, ignoring
// insignificant whitespace.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	var a, b bytes.Buffer
	if json.Compact(&a, e.Raw) != nil || json.Compact(&b, o.Raw) != nil {
		return bytes.Equal(e.Raw, o.Raw)
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// MetricNames returns the names of e's metrics and sampled metrics in
// sorted order. Sampled metrics follow regular metrics.
func (e *Entry) MetricNames() []string {
	names := make([]string, 0, len(e.Metrics)+len(e.SampledMetrics))
	for k := range e.Metrics {
		names = append(names, k)
	}
	sort.Strings(names)
	n := len(names)
	for k := range e.SampledMetrics {
		if _, ok := e.Metrics[k]; !ok {
			names = append(names, k)
		}
	}
	sort.Strings(names[n:])
	return names
}

// Metric returns the metric or sampled metric called name.
func (e *Entry) Metric(name string) (Metric, bool) {
	if m, ok := e.Metrics[name]; ok {
		return m, true
	}
	m, ok := e.SampledMetrics[name]
	return m, ok
}

func decodeMetrics(data json.RawMessage) map[string]Metric {
	if len(data) == 0 {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	metrics := make(map[string]Metric, len(raw))
	for k, v := range raw {
		var m Metric
		if err := json.Unmarshal(v, &m); err != nil {
			continue
		}
		metrics[k] = m
	}
	return metrics
}
