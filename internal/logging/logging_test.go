// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevels(t *testing.T) {
	for _, test := range []struct {
		verbose bool
		console bool
		debug   bool
		info    bool
	}{
		{false, false, false, true},
		{true, false, true, true},
		{false, true, false, false},
		{true, true, true, true},
	} {
		build := New
		if test.console {
			build = Console
		}
		log, err := build(test.verbose)
		if err != nil {
			t.Fatal(err)
		}
		if got := log.Core().Enabled(zapcore.DebugLevel); got != test.debug {
			t.Errorf("verbose=%v console=%v: debug enabled = %v", test.verbose, test.console, got)
		}
		if got := log.Core().Enabled(zapcore.InfoLevel); got != test.info {
			t.Errorf("verbose=%v console=%v: info enabled = %v", test.verbose, test.console, got)
		}
	}
}
