// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile keeps named baseline profiles: raw benchmark
// documents saved under a user-chosen name for later recall.
//
// All profiles are persisted together as one JSON object, mapping
// profile name to raw document, under the storage key "benchmarks".
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/storage"
)

// Key is the storage key holding the profile map.
const Key = "benchmarks"

// A Store is the set of saved profiles, backed by a storage.Backend.
type Store struct {
	backend storage.Backend
	log     *zap.Logger

	mu       sync.Mutex
	profiles map[string]string
}

// Open loads the profile map from backend. A missing or corrupt
// stored value yields an empty store; the problem is logged and
// otherwise ignored. A nil log discards diagnostics.
func Open(ctx context.Context, backend storage.Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{backend: backend, log: log}
	m, err := s.read(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Debug("no saved profiles")
	case err != nil:
		log.Warn("ignoring unreadable profiles", zap.Error(err))
	}
	if m == nil {
		m = make(map[string]string)
	}
	s.profiles = m
	return s
}

// errCorrupt marks a stored profile map that does not decode.
var errCorrupt = errors.New("corrupt profile map")

// read loads and decodes the persisted map.
func (s *Store) read(ctx context.Context) (map[string]string, error) {
	data, err := s.backend.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	m, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errCorrupt, Key, err)
	}
	return m, nil
}

// decode parses a persisted profile map. Values may be null, which
// is treated as an empty document.
func decode(data []byte) (map[string]string, error) {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		if v != nil {
			m[k] = *v
		} else {
			m[k] = ""
		}
	}
	return m, nil
}

// Save stores raw under name and persists the whole profile map.
// An existing profile with the same name is overwritten.
//
// A name that is empty after trimming spaces is a cancelled save: Save
// does nothing and returns nil. Any other name is stored as given.
//
// Save merges with the currently persisted map, so profiles saved by
// another session since Open are kept. A stored map that cannot be
// read is not overwritten; only a corrupt one is replaced. If the
// write fails, the in-memory map is left unchanged.
func (s *Store) Save(ctx context.Context, name, raw string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errCorrupt):
		if errors.Is(err, errCorrupt) {
			s.log.Warn("overwriting unreadable profiles", zap.Error(err))
		}
		m = make(map[string]string, len(s.profiles)+1)
		for k, v := range s.profiles {
			m[k] = v
		}
	default:
		return fmt.Errorf("save profile %q: reading profiles: %w", name, err)
	}
	m[name] = raw

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, Key, data); err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}
	s.profiles = m
	return nil
}

// Select returns the raw document saved under name.
func (s *Store) Select(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.profiles[name]
	return raw, ok
}

// Names returns the saved profile names in sorted order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.profiles))
	for k := range s.profiles {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of saved profiles.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}
