// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

// Range64 represents a range of values for plotting, where the min or max
// can optionally be fixed to a specific value; unfixed ends follow the data.
type Range64 struct {
	// Min and Max range values
	F64

	// FixMin fixes the minimum end of the range
	FixMin bool

	// FixMax fixes the maximum end of the range
	FixMax bool
}

// SetMin sets a fixed min value
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed max value
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// SetFixed fixes both ends of the range.
func (rr *Range64) SetFixed(mn, mx float64) *Range64 {
	return rr.SetMin(mn).SetMax(mx)
}

// Clamp returns the given min and max values, replaced by
// the fixed ends of this range where those are set.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}
