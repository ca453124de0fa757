// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdoc defines the benchmark document model and parses
// raw benchmark documents into ordered benchmark collections.
//
// A benchmark document is a JSON object with a "benchmarks" field
// holding an array of benchmark entries:
//
//	{
//	  "benchmarks": [
//	    { "name": "startup", "metrics": { "timeToInitialDisplayMs": { ... } } }
//	  ]
//	}
//
// This is the shape produced by the Android Jetpack benchmark and
// macrobenchmark libraries. Entries are kept verbatim: the parser
// decodes the fields needed for rendering and grouping (name,
// metrics) on a best-effort basis, but never rejects an entry because
// one of those fields has an unexpected type. Only the overall shape
// of the document is validated.
package benchdoc
