// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lab

import (
	"math"
	"testing"

	"cogentcore.org/linelab/base/minmax"
	"cogentcore.org/linelab/base/randx"
	"cogentcore.org/linelab/plot"
	"cogentcore.org/linelab/stats"
	"cogentcore.org/linelab/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg/draw"
)

func TestClampPoint(t *testing.T) {
	d := minmax.New(0, 100)
	assert.Equal(t, 100.0, ClampPoint(150, d))
	assert.Equal(t, 0.0, ClampPoint(-5, d))
	assert.Equal(t, 50.0, ClampPoint(50, d))
	for x := -20.0; x <= 120; x += 0.5 {
		v := ClampPoint(x, d)
		switch {
		case x <= 0:
			assert.Equal(t, 0.0, v)
		case x >= 100:
			assert.Equal(t, 100.0, v)
		default:
			assert.Equal(t, x, v)
		}
	}
}

func TestClampDataset(t *testing.T) {
	ds := table.FromPairs([][2]float64{{4424, -2}, {10, 30}, {45, 55}, {-20, 10}})
	xd, yd := minmax.New(0, 100), minmax.New(5, 50)
	out := ClampDataset(ds, xd, yd)
	assert.Same(t, ds, out)
	require.Equal(t, 4, ds.Len())
	assert.Equal(t, []table.Point{{X: 100, Y: 5}, {X: 10, Y: 30}, {X: 45, Y: 50}, {X: 0, Y: 10}}, ds.Points)
	for _, p := range ds.Points {
		assert.Equal(t, xd.Clamp(p.X), p.X)
		assert.Equal(t, yd.Clamp(p.Y), p.Y)
	}
}

func TestCreateGraph(t *testing.T) {
	ax := CreateGraph("study hours", "score")
	assert.Equal(t, "study hours", ax.X.Label)
	assert.Equal(t, "score", ax.Y.Label)
	assert.Equal(t, plot.Rect{Left: 0.1, Bottom: 0.1, Width: 0.8, Height: 0.8}, ax.Box)
	assert.NotNil(t, ax.Figure())
}

func TestJitterList(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 5, 5, 2}
	out := JitterList(values, 0.1)
	require.Len(t, out, len(values))
	d := stats.MeanAbsDiff(values, out)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)

	// input is not modified
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 5, 5, 2}, values)

	out = JitterList(values)
	require.Len(t, out, len(values))
	assert.Greater(t, stats.MeanAbsDiff(values, out), 0.0)

	assert.Empty(t, JitterList(nil))
	assert.NotNil(t, JitterList([]float64{}))
}

func TestJitterListRand(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	// population std is 2, so default sd is sqrt(2)
	a := JitterListRand(values, 0, randx.NewSysRand(11))
	b := JitterListRand(values, math.Sqrt(2), randx.NewSysRand(11))
	assert.InDeltaSlice(t, a, b, 1e-9)

	big := make([]float64, 20000)
	for i := range big {
		big[i] = float64(i % 2)
	}
	out := JitterListRand(big, 0.1, randx.NewSysRand(3))
	diff := make([]float64, len(big))
	for i := range big {
		diff[i] = out[i] - big[i]
	}
	assert.InDelta(t, 0, stats.Mean(diff), 0.01)
	assert.InDelta(t, 0.1, stats.PopStd(diff), 0.01)
	// mean abs of N(0, sd) is sd*sqrt(2/pi)
	assert.InDelta(t, 0.1*math.Sqrt(2/math.Pi), stats.MeanAbsDiff(big, out), 0.01)
}

func TestDraw(t *testing.T) {
	ax := CreateGraph("x", "y")
	pts := []table.Point{{X: 10, Y: 30}, {X: 45, Y: 55}, {X: -20, Y: 10}}
	sc := Draw(pts, ax, false)
	require.Len(t, ax.Scatters, 1)
	assert.Same(t, sc, ax.Scatters[0])
	assert.Equal(t, plot.XYs{{X: 10, Y: 30}, {X: 45, Y: 55}, {X: -20, Y: 10}}, sc.XYs)
	assert.Equal(t, PointAlpha, sc.Style.Alpha)

	sc = Draw(pts, ax, true)
	require.Len(t, ax.Scatters, 2)
	require.Len(t, sc.XYs, 3)
	for i, p := range pts {
		assert.InDelta(t, p.X, sc.XYs[i].X, 1)
		assert.InDelta(t, p.Y, sc.XYs[i].Y, 1)
	}
}

func TestDrawLine(t *testing.T) {
	ax := CreateGraph("x", "y")
	ax.SetXLim(0, 10)
	ln := DrawLine(2, 1, ax)
	require.Len(t, ax.Lines, 1)
	assert.Equal(t, plot.XYs{{X: 0, Y: 1}, {X: 10, Y: 21}}, ln.XYs)

	ax = CreateGraph("x", "y")
	Draw([]table.Point{{X: 0, Y: 0}, {X: 20, Y: 20}}, ax, false)
	ln = DrawLine(1, 0, ax)
	xmin, xmax := ax.XLim()
	assert.Equal(t, plot.XYs{{X: xmin, Y: xmin}, {X: xmax, Y: xmax}}, ln.XYs)
}

func TestAddLoss(t *testing.T) {
	ax := CreateGraph("x", "y")
	tx := AddLoss(3.14, ax)
	assert.Equal(t, "loss: 3.14", tx.Text)
	assert.Equal(t, []*plot.Text{tx}, ax.Texts)
	assert.Equal(t, 1.0, tx.X)
	assert.Equal(t, 1.0, tx.Y)
	assert.Equal(t, plot.AxesCoords, tx.Coords)
	assert.Equal(t, draw.XRight, tx.Style.XAlign)
	assert.Equal(t, draw.YTop, tx.Style.YAlign)
	assert.Equal(t, colornames.Red, tx.Style.Background)
	assert.Equal(t, 0.9, tx.Style.BackgroundAlpha)
}

func TestFormatLoss(t *testing.T) {
	assert.Equal(t, "loss: 3.14", FormatLoss(3.14))
	assert.Equal(t, "loss: 5", FormatLoss(5))
	assert.Equal(t, "loss: 0.001", FormatLoss(0.001))
	assert.Equal(t, "loss: NaN", FormatLoss(math.NaN()))
}
