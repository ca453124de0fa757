// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchmarkify views Android benchmark results.
//
// Usage:
//
//	benchmarkify serve [--addr host:port] [--h2c]
//	benchmarkify view [-o text|json|yaml] [--name N]... [--chart out.png] [file|-]
//	benchmarkify tui [file|-]
//	benchmarkify profile save name [file|-]
//	benchmarkify profile list
//	benchmarkify profile show name
//	benchmarkify share [--copy] [file|-]
//
// Without a file argument, view, tui and share use a bundled sample
// document. A file argument of "-" reads standard input.
//
// Settings are read from benchmarkify.yaml, a .env file, and
// BENCHMARKIFY_* environment variables; see the config package.
package main

import (
	"fmt"
	"os"
)

var exit = os.Exit

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchmarkify: %v\n", err)
		exit(1)
	}
}
