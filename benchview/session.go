// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchview

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/profile"
	"github.com/benchmarkify/benchmarkify/share"
)

// A Change identifies which part of a Session changed.
type Change int

const (
	// RawChanged means the raw input was replaced. The collection
	// and view have already been recomputed.
	RawChanged Change = iota
	// FilterChanged means the filter was replaced and the view
	// re-derived.
	FilterChanged
	// ProfilesChanged means a profile was saved.
	ProfilesChanged
)

func (c Change) String() string {
	switch c {
	case RawChanged:
		return "raw"
	case FilterChanged:
		return "filter"
	case ProfilesChanged:
		return "profiles"
	}
	return "unknown"
}

// Options configures a Session. All fields are optional.
type Options struct {
	Log *zap.Logger
	// Profiles is the saved profile store. Without it LoadProfile
	// finds nothing and SaveProfile fails with ErrNoProfiles.
	Profiles *profile.Store
	// OnParse is called after every parse with its outcome.
	OnParse func(err error)
}

// A Session owns the state of one benchmark viewing session: the raw
// input, the parsed collection, the filter, and the derived view.
//
// Every mutation recomputes its dependents before returning, then
// notifies subscribers. A Session is not safe for concurrent use; it
// is driven from a single event loop or request.
type Session struct {
	opts Options
	log  *zap.Logger

	raw        string
	benchmarks benchdoc.Collection
	view       benchdoc.Collection
	filter     *Filter
	err        error

	subs []func(Change)
}

// NewSession returns a session with empty raw input.
func NewSession(opts Options) *Session {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{opts: opts, log: log, benchmarks: benchdoc.Collection{}, view: benchdoc.Collection{}}
}

// Start sets the initial raw input: the shared document in q if
// there is one, otherwise the bundled sample document.
func (s *Session) Start(q url.Values) {
	if raw, ok := share.FromQuery(q); ok {
		s.log.Debug("starting from shared document", zap.Int("bytes", len(raw)))
		s.SetRaw(raw)
		return
	}
	s.SetRaw(benchdoc.Sample())
}

// Subscribe registers fn to be called after each change.
func (s *Session) Subscribe(fn func(Change)) {
	s.subs = append(s.subs, fn)
}

func (s *Session) notify(c Change) {
	for _, fn := range s.subs {
		fn(c)
	}
}

// SetRaw replaces the raw input and re-parses it.
//
// On success the collection is replaced and the view is seeded with
// the whole collection, whatever the current filter. On failure the
// collection and view become empty and the raw text is kept as given.
func (s *Session) SetRaw(raw string) {
	s.raw = raw
	c, err := benchdoc.Parse(raw)
	s.err = err
	if err != nil {
		s.log.Warn("benchmark document does not parse", zap.Error(err))
		s.benchmarks = benchdoc.Collection{}
		s.view = benchdoc.Collection{}
	} else {
		s.benchmarks = c
		s.view = c
	}
	if s.opts.OnParse != nil {
		s.opts.OnParse(err)
	}
	s.notify(RawChanged)
}

// Clear sets the raw input to the empty string.
func (s *Session) Clear() {
	s.SetRaw("")
}

// SetFilter replaces the filter and re-derives the view from the
// current collection. A nil filter restores the full collection.
func (s *Session) SetFilter(f *Filter) {
	s.filter = f
	s.view = Derive(s.benchmarks, f)
	s.notify(FilterChanged)
}

// LoadProfile replaces the raw input with the profile saved under
// name. It reports false, changing nothing, if there is no such
// profile.
func (s *Session) LoadProfile(name string) bool {
	if s.opts.Profiles == nil {
		return false
	}
	raw, ok := s.opts.Profiles.Select(name)
	if !ok {
		s.log.Info("no such profile", zap.String("profile", name))
		return false
	}
	s.SetRaw(raw)
	return true
}

// ErrNoProfiles is returned by SaveProfile when the session has no
// profile store.
var ErrNoProfiles = errors.New("no profile store configured")

// SaveProfile saves the current raw input under name. An empty name
// is a cancelled save and does nothing.
func (s *Session) SaveProfile(ctx context.Context, name string) error {
	if s.opts.Profiles == nil {
		return ErrNoProfiles
	}
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if err := s.opts.Profiles.Save(ctx, name, s.raw); err != nil {
		return err
	}
	s.notify(ProfilesChanged)
	return nil
}

// ShareLink returns a link to base carrying the current raw input.
func (s *Session) ShareLink(base string) (string, error) {
	return share.Link(base, s.raw)
}

// Profiles returns the names of the saved profiles.
func (s *Session) Profiles() []string {
	if s.opts.Profiles == nil {
		return nil
	}
	return s.opts.Profiles.Names()
}

// Raw returns the current raw input.
func (s *Session) Raw() string { return s.raw }

// Benchmarks returns the full parsed collection.
func (s *Session) Benchmarks() benchdoc.Collection { return s.benchmarks }

// View returns the derived view shown by the chart and table.
func (s *Session) View() benchdoc.Collection { return s.view }

// Filter returns the current filter, or nil if none is set.
func (s *Session) Filter() *Filter { return s.filter }

// Err returns the error from the last parse, or nil.
func (s *Session) Err() error { return s.err }
