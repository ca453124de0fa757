// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite provides the pure Go "sqlite" driver (modernc.org/sqlite)
// for github.com/benchmarkify/benchmarkify/storage/db, for builds
// without cgo.
package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/benchmarkify/benchmarkify/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite", func(db *sql.DB) error {
		db.SetMaxOpenConns(1)
		return nil
	})
}
