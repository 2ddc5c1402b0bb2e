// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lab

import (
	"math"

	"cogentcore.org/linelab/base/randx"
	"cogentcore.org/linelab/stats"
)

// JitterList returns a copy of the values with independent gaussian
// noise of mean 0 added to each, for plotting ordinal or categorical
// values. The standard deviation is the optional stdDev, or, if that
// is missing or 0, the square root of the population standard
// deviation of the values. Empty values give an empty result.
func JitterList(values []float64, stdDev ...float64) []float64 {
	sd := 0.0
	if len(stdDev) > 0 {
		sd = stdDev[0]
	}
	return JitterListRand(values, sd, nil)
}

// JitterListRand is [JitterList] using the given random source,
// or the global one if rnd is nil.
func JitterListRand(values []float64, stdDev float64, rnd randx.Rand) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if stdDev == 0 {
		stdDev = math.Sqrt(stats.PopStd(values))
	}
	noise := randx.GaussianNoise(len(values), stdDev, rnd)
	for i, v := range values {
		out[i] = v + noise[i]
	}
	return out
}
