// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/linelab/base/errors"
	"cogentcore.org/linelab/base/minmax"
	"cogentcore.org/linelab/stats"
	"gonum.org/v1/plot/plotter"
)

var (
	ErrInfinity = errors.New("plotter: infinite data point")
	ErrNoData   = errors.New("plotter: no data points")
)

// XY is an x and y value.
type XY struct {
	X, Y float64
}

// XYs is a slice of XY, the data held by the artists of an [Axes].
type XYs []XY

// NewXYs returns XYs from separate x and y slices, which must
// have the same length (the shorter length is used otherwise).
func NewXYs(xs, ys []float64) XYs {
	n := min(len(xs), len(ys))
	xys := make(XYs, n)
	for i := range xys {
		xys[i] = XY{X: xs[i], Y: ys[i]}
	}
	return xys
}

// Len implements the [plotter.XYer] interface.
func (xys XYs) Len() int {
	return len(xys)
}

// XY implements the [plotter.XYer] interface.
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// Split returns the x and y values as separate slices.
func (xys XYs) Split() (xs, ys []float64) {
	xs = make([]float64, len(xys))
	ys = make([]float64, len(xys))
	for i, p := range xys {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return
}

// Range returns the min / max ranges of the x and y values,
// skipping points with a NaN or infinite coordinate.
// Ranges are not valid if there are no such points.
func (xys XYs) Range() (xr, yr minmax.F64) {
	xs, ys := xys.valid().Split()
	return stats.Range(xs), stats.Range(ys)
}

var _ plotter.XYer = XYs(nil)

// CheckFloats returns an error if any of the arguments are Infinity.
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// valid returns the points that have no NaN or infinite coordinate,
// which are the only ones the renderer can draw.
func (xys XYs) valid() XYs {
	pts := make(XYs, 0, len(xys))
	for _, p := range xys {
		if CheckFloats(p.X) != nil || CheckFloats(p.Y) != nil {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// finite returns the valid points as gonum plotter data.
func (xys XYs) finite() plotter.XYs {
	v := xys.valid()
	pts := make(plotter.XYs, len(v))
	for i, p := range v {
		pts[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return pts
}
