// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// A Collection is the ordered sequence of entries of a parsed
// document. Order is input order.
type Collection []*Entry

// Names returns the distinct entry names of c in order of first
// appearance.
func (c Collection) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range c {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// MetricNames returns the distinct metric names of all entries in c
// in order of first appearance.
func (c Collection) MetricNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range c {
		for _, m := range e.MetricNames() {
			if !seen[m] {
				seen[m] = true
				names = append(names, m)
			}
		}
	}
	return names
}

// Equal reports whether c and o hold equal entries in the same order.
func (c Collection) Equal(o Collection) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// A ParseError describes why a raw document could not be parsed.
type ParseError struct {
	// Offset is the byte offset in the raw document at which the
	// error was detected, or -1 if unknown.
	Offset int64
	// Index is the index of the offending element of the
	// "benchmarks" array, or -1 if the error is not specific to
	// one element.
	Index int
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse benchmarks")
	if e.Offset >= 0 {
		fmt.Fprintf(&b, ": offset %d", e.Offset)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": benchmarks[%d]", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error) *ParseError {
	pe := &ParseError{Offset: -1, Index: -1, Msg: err.Error(), Err: err}
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syn):
		pe.Offset = syn.Offset
	case errors.As(err, &typ):
		pe.Offset = typ.Offset
		pe.Msg = fmt.Sprintf("document must be a JSON object, found %s", typ.Value)
	case errors.Is(err, io.EOF):
		pe.Offset = 0
		pe.Msg = "empty document"
	}
	return pe
}

// Parse parses raw as a benchmark document and returns its entries
// in document order.
//
// raw must hold a single JSON object whose "benchmarks" field is an
// array of JSON objects. Any other shape is a *ParseError. Parse never
// returns a partial collection: on error the collection is nil.
func Parse(raw string) (Collection, error) {
	// A map keeps the "benchmarks" key match case-sensitive.
	var doc map[string]json.RawMessage
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, newParseError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Offset: dec.InputOffset(), Index: -1, Msg: "unexpected data after document"}
	}

	body := bytes.TrimSpace(doc["benchmarks"])
	switch {
	case len(body) == 0 || bytes.Equal(body, []byte("null")):
		return nil, &ParseError{Offset: -1, Index: -1, Msg: `missing "benchmarks" field`}
	case body[0] != '[':
		return nil, &ParseError{Offset: -1, Index: -1, Msg: `"benchmarks" must be an array`}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, newParseError(err)
	}
	c := make(Collection, 0, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, &ParseError{Offset: -1, Index: i, Msg: "benchmark entry must be a JSON object"}
		}
		e := new(Entry)
		if err := e.UnmarshalJSON(elem); err != nil {
			return nil, &ParseError{Offset: -1, Index: i, Msg: err.Error(), Err: err}
		}
		c = append(c, e)
	}
	return c, nil
}
