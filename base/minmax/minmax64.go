// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
// It is the Domain used for clamping data values.
type F64 struct {
	Min float64
	Max float64
}

// New returns a new F64 range with the given min and max.
func New(mn, mx float64) F64 {
	return F64{Min: mn, Max: mx}
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling [F64.FitValInRange].
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Clamp returns Min if val is below Min, Max if it is above Max,
// and val otherwise. A NaN remains a NaN.
func (mr F64) Clamp(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Pad returns a copy expanded on both ends by the given
// fraction of the Range. A zero Range is expanded by the
// fraction of the magnitude of Min, or by the fraction itself
// if Min is also zero.
func (mr F64) Pad(frac float64) F64 {
	d := frac * mr.Range()
	if d == 0 {
		d = frac * math.Abs(mr.Min)
		if d == 0 {
			d = frac
		}
	}
	return F64{Min: mr.Min - d, Max: mr.Max + d}
}
