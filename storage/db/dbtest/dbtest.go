// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"flag"
	"fmt"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"

	"github.com/benchmarkify/benchmarkify/storage/db"
	_ "github.com/benchmarkify/benchmarkify/storage/db/sqlite"
	_ "github.com/benchmarkify/benchmarkify/storage/db/sqlite3"
)

var cloud = flag.Bool("cloud", false, "connect to Cloud SQL database instead of in-memory SQLite")
var cloudsql = flag.String("cloudsql", "benchmarkify:us-central1:benchmarkify", "name of Cloud SQL instance to run tests on")

// createEmptyCloudDB makes a new, empty database for the test.
func createEmptyCloudDB(t *testing.T) (dsn string, cleanup func()) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		t.Fatal(err)
	}

	name := "benchmarkify-test-" + base64.RawURLEncoding.EncodeToString(buf)

	prefix := fmt.Sprintf("root:@cloudsql(%s)/", *cloudsql)

	db, err := sql.Open("mysql", prefix)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE `%s`", name)); err != nil {
		db.Close()
		t.Fatal(err)
	}

	t.Logf("Using database %q", name)

	return prefix + name, func() {
		if _, err := db.Exec(fmt.Sprintf("DROP DATABASE `%s`", name)); err != nil {
			t.Error(err)
		}
		db.Close()
	}
}

// NewDB makes a connection to a testing database, either sqlite3 or
// Cloud SQL depending on the -cloud flag. The database is closed when
// the test finishes.
func NewDB(t *testing.T) *db.DB {
	return NewDriverDB(t, "sqlite3")
}

// NewDriverDB is like NewDB but opens an in-memory database with the
// given SQLite driver ("sqlite3" or "sqlite") when -cloud is unset.
func NewDriverDB(t *testing.T, sqliteDriver string) *db.DB {
	t.Helper()
	driverName, dataSourceName := sqliteDriver, ":memory:"
	var cloudCleanup func()
	if *cloud {
		driverName = "mysql"
		dataSourceName, cloudCleanup = createEmptyCloudDB(t)
	}
	d, err := db.OpenSQL(driverName, dataSourceName)
	if err != nil {
		if cloudCleanup != nil {
			cloudCleanup()
		}
		t.Fatalf("open database: %v", err)
	}

	t.Cleanup(func() {
		if cloudCleanup != nil {
			cloudCleanup()
		}
		d.Close()
	})
	// Make sure the database really is empty.
	keys, err := d.CountKeys()
	if err != nil {
		t.Fatal(err)
	}
	if keys != 0 {
		t.Fatalf("found %d row(s) in KeyValues, want 0", keys)
	}
	return d
}
