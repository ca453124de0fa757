// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db provides a storage.Backend on top of a SQL database.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/benchmarkify/benchmarkify/storage"
)

// DB is a key-value store kept in a single SQL table. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	getValue *sql.Stmt
	putValue *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. The drivers "sqlite3",
// "sqlite", "mysql" and "postgres" are explicitly supported; other
// database engines will receive SQLite query syntax which may or may
// not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to limit in-memory databases to one connection.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS KeyValues (
	Name VARCHAR(255) NOT NULL PRIMARY KEY,
	Value {{if .mysql}}LONGBLOB{{else if .postgres}}BYTEA{{else}}BLOB{{end}}
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// rebind rewrites "?" placeholders into the numbered form used by
// postgres.
func rebind(driverName, q string) string {
	if driverName != "postgres" {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	db.getValue, err = db.sql.Prepare(rebind(driverName, "SELECT Value FROM KeyValues WHERE Name = ?"))
	if err != nil {
		return err
	}
	q := "INSERT INTO KeyValues(Name, Value) VALUES (?, ?) ON CONFLICT(Name) DO UPDATE SET Value = excluded.Value"
	if driverName == "mysql" {
		q = "INSERT INTO KeyValues(Name, Value) VALUES (?, ?) ON DUPLICATE KEY UPDATE Value = VALUES(Value)"
	}
	db.putValue, err = db.sql.Prepare(rebind(driverName, q))
	if err != nil {
		return err
	}
	return nil
}

// Get returns the value stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := db.getValue.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db %q: %w", key, storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores value under key, replacing any existing row.
func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := db.putValue.ExecContext(ctx, key, value)
	return err
}

// CountKeys returns the number of keys stored in the database.
func (db *DB) CountKeys() (int, error) {
	var n int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM KeyValues").Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.getValue.Close(); err != nil {
		return err
	}
	if err := db.putValue.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
