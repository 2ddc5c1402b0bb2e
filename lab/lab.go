// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lab provides the helpers for the "line lab" exercise:
// clamping data to a domain, plotting points with optional jitter,
// drawing a regression line given its slope and intercept, showing
// the loss, and stepping an animation of the line as it is fit.
//
// The lab code computes the slope, intercept and loss itself;
// these helpers only visualize them.
package lab

import (
	"strconv"

	"cogentcore.org/linelab/base/minmax"
	"cogentcore.org/linelab/plot"
	"cogentcore.org/linelab/table"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg/draw"
)

// DrawJitter is the standard deviation of the jitter added by [Draw].
const DrawJitter = 0.1

// PointAlpha is the opacity of points drawn by [Draw].
const PointAlpha = 0.5

// ClampPoint returns domain.Min if x is below it, domain.Max if x is
// above it, and x otherwise.
func ClampPoint(x float64, domain minmax.F64) float64 {
	return domain.Clamp(x)
}

// ClampDataset clamps the x column of every row of the dataset to
// xDomain and the y column to yDomain, in place, and returns it.
// For example, with xDomain (0, 100), 4424 becomes 100 and -2 becomes 0.
func ClampDataset(ds *table.Dataset, xDomain, yDomain minmax.F64) *table.Dataset {
	return ds.Clamp(xDomain, yDomain)
}

// CreateGraph returns new axes, in a new figure with 10% margins on
// every side, with the given axis labels. Later drawing calls take
// the returned axes.
func CreateGraph(xLabel, yLabel string) *plot.Axes {
	return plot.NewGraph(xLabel, yLabel)
}

// Draw plots the points on the axes as a semi-transparent scatter.
// If jitter is true, both coordinates get gaussian jitter with
// standard deviation [DrawJitter], making overlapping ordinal or
// categorical values visible.
func Draw(points []table.Point, ax *plot.Axes, jitter bool) *plot.Scatter {
	xs, ys := table.Split(points)
	if jitter {
		xs = JitterList(xs, DrawJitter)
		ys = JitterList(ys, DrawJitter)
	}
	sc := ax.AddScatter(plot.NewXYs(xs, ys))
	sc.Style.Alpha = PointAlpha
	return sc
}

// LineEnds returns the y values of the line y = slope*x + intercept
// at xmin and xmax.
func LineEnds(slope, intercept, xmin, xmax float64) (ymin, ymax float64) {
	return intercept + slope*xmin, intercept + slope*xmax
}

// DrawLine draws the line with the given slope and y-intercept
// across the full current width of the axes. When points have
// already been drawn, the line is drawn over them.
func DrawLine(slope, intercept float64, ax *plot.Axes) *plot.Line {
	xmin, xmax := ax.XLim()
	ymin, ymax := LineEnds(slope, intercept, xmin, xmax)
	return ax.AddLine([]float64{xmin, xmax}, []float64{ymin, ymax})
}

// FormatLoss returns the text shown for the given loss.
func FormatLoss(loss float64) string {
	return "loss: " + strconv.FormatFloat(loss, 'g', -1, 64)
}

// AddLoss adds text showing the loss at the top right corner of
// the axes, on a red background, and returns it.
func AddLoss(loss float64, ax *plot.Axes) *plot.Text {
	tx := ax.AddText(1, 1, plot.AxesCoords, FormatLoss(loss))
	tx.Style.XAlign = draw.XRight
	tx.Style.YAlign = draw.YTop
	tx.Style.Background = colornames.Red
	tx.Style.BackgroundAlpha = 0.9
	return tx
}
