// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func compact(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		t.Fatalf("compact %q: %v", s, err)
	}
	return buf.String()
}

func TestParseValid(t *testing.T) {
	for _, test := range []struct {
		name  string
		raw   string
		array string
		names []string
	}{
		{
			"two",
			`{"benchmarks":[{"name":"A","time":10},{"name":"B","time":20}]}`,
			`[{"name":"A","time":10},{"name":"B","time":20}]`,
			[]string{"A", "B"},
		},
		{
			"empty",
			`{"benchmarks": []}`,
			`[]`,
			nil,
		},
		{
			"duplicate names",
			`{"benchmarks":[{"name":"B"},{"name":"A"},{"name":"B","x":[1,2]}]}`,
			`[{"name":"B"},{"name":"A"},{"name":"B","x":[1,2]}]`,
			[]string{"B", "A"},
		},
		{
			"extra top-level fields",
			`{"context":{"cpuCoreCount":8},"benchmarks":[{"name":"A"}]}`,
			`[{"name":"A"}]`,
			[]string{"A"},
		},
		{
			"unnamed entry",
			`{"benchmarks":[{"time":1}]}`,
			`[{"time":1}]`,
			[]string{""},
		},
		{
			"whitespace",
			"\n  {\n  \"benchmarks\" : [ { \"name\" : \"A\" } ] }\n\n",
			`[{"name":"A"}]`,
			[]string{"A"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := Parse(test.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if want := compact(t, test.array); string(got) != want {
				t.Errorf("re-encoded collection:\n got %s\nwant %s", got, want)
			}
			if diff := cmp.Diff(test.names, c.Names()); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"not json",
		`{"benchmarks":`,
		`[{"name":"A"}]`,
		`"benchmarks"`,
		`42`,
		`null`,
		`{}`,
		`{"benchmarks":null}`,
		`{"Benchmarks":[]}`,
		`{"benchmarks":{"name":"A"}}`,
		`{"benchmarks":"A"}`,
		`{"benchmarks":[{"name":"A"},"B"]}`,
		`{"benchmarks":[{"name":"A"},null]}`,
		`{"benchmarks":[]} {"benchmarks":[]}`,
		`{"benchmarks":[]} trailing`,
	} {
		c, err := Parse(raw)
		if err == nil {
			t.Errorf("Parse(%q) succeeded with %d entries, want error", raw, len(c))
			continue
		}
		if c != nil {
			t.Errorf("Parse(%q) returned partial collection %v", raw, c)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error %T, want *ParseError", raw, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(`{"benchmarks":[{"name":"A"},7]}`)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	if pe.Index != 1 {
		t.Errorf("Index = %d, want 1", pe.Index)
	}
	if !strings.Contains(pe.Error(), "benchmarks[1]") {
		t.Errorf("Error() = %q, want mention of benchmarks[1]", pe.Error())
	}

	_, err = Parse(`{"benchmarks": [}`)
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	if pe.Offset <= 0 {
		t.Errorf("Offset = %d, want positive offset for syntax error", pe.Offset)
	}
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		t.Errorf("ParseError does not unwrap to *json.SyntaxError: %v", err)
	}
}

func TestParseIdempotent(t *testing.T) {
	raw := Sample()
	c1, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !c1.Equal(c2) {
		t.Errorf("parsing the same document twice gave different collections")
	}
}

func TestEntryFields(t *testing.T) {
	c, err := Parse(Sample())
	if err != nil {
		t.Fatalf("sample document does not parse: %v", err)
	}
	if len(c) != 4 {
		t.Fatalf("sample has %d entries, want 4", len(c))
	}
	e := c[0]
	if e.Name != "startupCompilationNone" {
		t.Errorf("Name = %q", e.Name)
	}
	if e.ClassName != "com.example.macrobenchmark.StartupBenchmarks" {
		t.Errorf("ClassName = %q", e.ClassName)
	}
	if e.RepeatIterations != 5 {
		t.Errorf("RepeatIterations = %d, want 5", e.RepeatIterations)
	}
	m, ok := e.Metric("timeToInitialDisplayMs")
	if !ok {
		t.Fatalf("missing timeToInitialDisplayMs")
	}
	want := Metric{
		Minimum: 402.611979,
		Maximum: 468.133646,
		Median:  421.336927,
		Runs:    []float64{420.092448, 402.611979, 468.133646, 421.336927, 433.508177},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("metric mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"timeToInitialDisplayMs", "frameDurationCpuMs"}, c.MetricNames()); diff != "" {
		t.Errorf("MetricNames mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryLenientFields(t *testing.T) {
	c, err := Parse(`{"benchmarks":[{"name":3,"metrics":{"a":{"median":"x"},"b":{"median":2}},"sampledMetrics":[]}]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e := c[0]
	if e.Name != "" {
		t.Errorf("non-string name decoded as %q", e.Name)
	}
	if diff := cmp.Diff([]string{"b"}, e.MetricNames()); diff != "" {
		t.Errorf("MetricNames mismatch (-want +got):\n%s", diff)
	}
	if e.SampledMetrics != nil {
		t.Errorf("SampledMetrics = %v, want nil", e.SampledMetrics)
	}
}
