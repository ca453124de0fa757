// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage defines the persistent key-value interface used to
// keep named benchmark profiles between sessions.
//
// Implementations live in subpackages: db (SQL databases), fs (memory
// and local directories), and fs/gcs (Google Cloud Storage).
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Backend.Get when no value is stored
// under the requested key.
var ErrNotFound = errors.New("storage: key not found")

// A Backend is a persistent map from string keys to byte values.
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Backend interface {
	// Get returns the value stored under key. It returns an error
	// wrapping ErrNotFound if there is none.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}
