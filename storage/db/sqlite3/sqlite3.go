// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for
// github.com/benchmarkify/benchmarkify/storage/db. It must be imported
// instead of go-sqlite3 to ensure the connection pool is limited.
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/benchmarkify/benchmarkify/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// Each connection to ":memory:" is a separate database,
		// and sqlite3 serializes writers anyway.
		db.SetMaxOpenConns(1)
		return nil
	})
}
