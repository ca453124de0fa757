// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit derives units from benchmark metric names and
// formats numbers in those units.
//
// Metric names follow the Android benchmark convention of ending in a
// unit suffix, as in "timeNs", "timeToInitialDisplayMs" or
// "memoryHeapSizeMaxKb".
package benchunit

import (
	"fmt"
	"strings"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, using SI prefixes such as "k" and "m".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC prefixes such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Unit describes how to convert a metric's values into a base unit
// and how to scale them for display.
type Unit struct {
	Name   string  // Base unit symbol, such as "s" or "B"; "" for counts
	Factor float64 // Multiplier from the metric's values to the base unit
	Class  Class
}

var suffixes = []struct {
	suffix string
	unit   Unit
}{
	{"Ns", Unit{"s", 1e-9, Decimal}},
	{"Us", Unit{"s", 1e-6, Decimal}},
	{"Ms", Unit{"s", 1e-3, Decimal}},
	{"Sec", Unit{"s", 1, Decimal}},
	{"Kb", Unit{"B", 1 << 10, Binary}},
	{"KB", Unit{"B", 1 << 10, Binary}},
	{"Mb", Unit{"B", 1 << 20, Binary}},
	{"MB", Unit{"B", 1 << 20, Binary}},
	{"Bytes", Unit{"B", 1, Binary}},
	{"Percent", Unit{"%", 1, Decimal}},
}

// UnitOf returns the unit of the metric called name. Names without a
// recognized suffix are plain counts.
func UnitOf(name string) Unit {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.suffix) && len(name) > len(s.suffix) {
			return s.unit
		}
	}
	return Unit{"", 1, Decimal}
}

// Scaler returns a common Scaler for vals, which are in the metric's
// own unit.
func (u Unit) Scaler(vals []float64) Scaler {
	base := make([]float64, len(vals))
	for i, v := range vals {
		base[i] = v * u.Factor
	}
	return CommonScale(base, u.Class)
}

// Format formats val, in the metric's own unit, with s and appends
// the base unit symbol.
func (u Unit) Format(s Scaler, val float64) string {
	return s.Format(val*u.Factor) + u.Name
}

// FormatAll formats vals with a common scale.
func (u Unit) FormatAll(vals ...float64) []string {
	s := u.Scaler(vals)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = u.Format(s, v)
	}
	return out
}
