// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdoc

import _ "embed"

//go:embed samplebaseline.json
var sample string

// Sample returns the bundled default benchmark document, used when no
// shared document is supplied at startup.
func Sample() string {
	return sample
}
