// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/benchmarkify/benchmarkify/storage"
	. "github.com/benchmarkify/benchmarkify/storage/db"
	"github.com/benchmarkify/benchmarkify/storage/db/dbtest"
)

// Most of the db package is also exercised through the profile store tests.

func TestRebind(t *testing.T) {
	for _, test := range []struct {
		driver, q, want string
	}{
		{"sqlite3", "SELECT ? FROM t WHERE a = ?", "SELECT ? FROM t WHERE a = ?"},
		{"mysql", "SELECT ?", "SELECT ?"},
		{"postgres", "SELECT ? FROM t WHERE a = ?", "SELECT $1 FROM t WHERE a = $2"},
		{"postgres", "SELECT 1", "SELECT 1"},
	} {
		if have := Rebind(test.driver, test.q); have != test.want {
			t.Errorf("rebind(%q, %q) = %q, want %q", test.driver, test.q, have, test.want)
		}
	}
}

func TestGetPut(t *testing.T) {
	for _, driver := range []string{"sqlite3", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			db := dbtest.NewDriverDB(t, driver)
			ctx := context.Background()

			if _, err := db.Get(ctx, "benchmarks"); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("Get on empty database: err = %v, want ErrNotFound", err)
			}
			for _, v := range []string{`{"a":"1"}`, `{"a":"2"}`, ""} {
				if err := db.Put(ctx, "benchmarks", []byte(v)); err != nil {
					t.Fatalf("Put(%q): %v", v, err)
				}
				got, err := db.Get(ctx, "benchmarks")
				if err != nil {
					t.Fatalf("Get: %v", err)
				}
				if string(got) != v {
					t.Errorf("Get = %q, want %q", got, v)
				}
			}
			if n, err := db.CountKeys(); err != nil || n != 1 {
				t.Errorf("CountKeys() = %d, %v, want 1", n, err)
			}
		})
	}
}

func TestConcurrentPut(t *testing.T) {
	db := dbtest.NewDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := db.Put(ctx, fmt.Sprintf("key%d", i), []byte("v")); err != nil {
				t.Errorf("Put: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var n int
	if err := DBSQL(db).QueryRow("SELECT COUNT(*) FROM KeyValues WHERE Value = ?", []byte("v")).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("found %d rows, want 8", n)
	}
}
