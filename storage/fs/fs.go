// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides file-like storage backends: an in-memory
// backend for tests and a local directory backend.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/benchmarkify/benchmarkify/storage"
)

// MemFS is an in-memory storage.Backend.
type MemFS struct {
	mu      sync.Mutex
	content map[string][]byte
}

// NewMemFS constructs a new, empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{content: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *MemFS) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.content[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, storage.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (m *MemFS) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[key] = append([]byte(nil), value...)
	return nil
}

// Files returns the sorted list of keys in the filesystem.
func (m *MemFS) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DirFS stores each key as a file named key+".json" in a local
// directory.
type DirFS struct {
	dir string
}

// NewDirFS returns a DirFS rooted at dir, creating dir if needed.
func NewDirFS(dir string) (*DirFS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DirFS{dir: dir}, nil
}

func (d *DirFS) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.dir, key+".json"), nil
}

// Get reads the file for key.
func (d *DirFS) Get(_ context.Context, key string) ([]byte, error) {
	p, err := d.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, storage.ErrNotFound)
	}
	return data, err
}

// Put writes the file for key. The file is replaced atomically so a
// failed write leaves the previous value intact.
func (d *DirFS) Put(_ context.Context, key string, value []byte) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(d.dir, "."+key+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
