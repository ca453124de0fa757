// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchview derives the filtered view of a benchmark
// collection and owns the session state that drives it.
//
// The derivation rules form a small dependency graph:
//
//	raw input -> collection -> view
//	filter    -> view
//
// A change of raw input re-parses the document and seeds the view
// with the whole collection. A change of filter narrows the current
// collection without re-parsing.
package benchview

import (
	"encoding/json"
	"sort"

	"github.com/benchmarkify/benchmarkify/benchdoc"
)

// A Filter is a set of selected benchmark names.
//
// A nil *Filter means no selection has been made yet. A non-nil
// Filter with no names selects nothing.
type Filter struct {
	names map[string]bool
}

// NewFilter returns a filter selecting the given names.
func NewFilter(names ...string) *Filter {
	f := &Filter{names: make(map[string]bool, len(names))}
	for _, n := range names {
		f.names[n] = true
	}
	return f
}

// Has reports whether name is selected by f.
func (f *Filter) Has(name string) bool {
	if f == nil {
		return false
	}
	return f.names[name]
}

// Len returns the number of selected names.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Names returns the selected names in sorted order.
func (f *Filter) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.names))
	for n := range f.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Toggle returns a copy of f with name's selection flipped. A nil f
// is treated as an empty selection.
func (f *Filter) Toggle(name string) *Filter {
	g := NewFilter(f.Names()...)
	if g.names[name] {
		delete(g.names, name)
	} else {
		g.names[name] = true
	}
	return g
}

type filterJSON struct {
	BenchmarkNames []string `json:"benchmarkNames"`
}

func (f *Filter) MarshalJSON() ([]byte, error) {
	names := f.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(filterJSON{names})
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	var fj filterJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	*f = *NewFilter(fj.BenchmarkNames...)
	return nil
}

// Derive returns the entries of c whose name is selected by f, in
// the order they appear in c. Names in f that match no entry are
// ignored.
//
// If f is nil, Derive returns c unchanged.
func Derive(c benchdoc.Collection, f *Filter) benchdoc.Collection {
	if f == nil {
		return c
	}
	view := make(benchdoc.Collection, 0, len(c))
	for _, e := range c {
		if f.Has(e.Name) {
			view = append(view, e)
		}
	}
	return view
}
