// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the summary statistics used to scale
// jitter and to describe datasets.
package stats

import (
	"math"

	"cogentcore.org/linelab/base/minmax"
	"gonum.org/v1/gonum/stat"
)

// PopStd returns the population standard deviation of the values
// (normalized by N, not N-1). It is NaN for empty values.
func PopStd(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	_, v := stat.PopMeanVariance(values, nil)
	return math.Sqrt(v)
}

// Mean returns the mean of the values, NaN for empty values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// MeanAbsDiff returns the mean absolute difference between
// corresponding elements of a and b, which must have the same length.
func MeanAbsDiff(a, b []float64) float64 {
	if len(a) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a))
}

// Range returns the min / max range of the values, skipping NaNs.
// The result is not valid (Min > Max) if there are no values.
func Range(values []float64) minmax.F64 {
	var r minmax.F64
	r.SetInfinity()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		r.FitValInRange(v)
	}
	return r
}
