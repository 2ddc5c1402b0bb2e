// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"slices"

	"cogentcore.org/linelab/base/errors"
	"cogentcore.org/linelab/base/minmax"
	"github.com/jinzhu/copier"
)

// DefaultMargin is the fraction of the data range added on each side
// of an autoscaled axis.
var DefaultMargin = 0.05

// Axis is one axis of an [Axes].
type Axis struct {
	// Label is the text shown along the axis.
	Label string

	// Range holds the limits of the axis. Ends that are not fixed
	// follow the scatter data.
	Range minmax.Range64
}

// Axes is the drawable region of a [Figure] onto which artists are
// added. It is the handle that all drawing operations take.
type Axes struct {
	// Box is the position of the axes in the figure.
	Box Rect

	// X and Y are the horizontal and vertical axes.
	X, Y Axis

	// Margin is the fraction of the data range added on each side
	// of an autoscaled axis.
	Margin float64

	// Scatters, Lines and Texts are the artists of the axes,
	// drawn in that order and in the order they were added.
	Scatters []*Scatter
	Lines    []*Line
	Texts    []*Text

	// Metadata holds values attached to the axes by other packages.
	Metadata map[string]any `copier:"-"`

	fig    *Figure
	ncolor int
}

// Figure returns the figure the axes belong to.
func (ax *Axes) Figure() *Figure {
	return ax.fig
}

// SetXLabel sets the label of the x axis.
func (ax *Axes) SetXLabel(label string) *Axes {
	ax.X.Label = label
	return ax
}

// SetYLabel sets the label of the y axis.
func (ax *Axes) SetYLabel(label string) *Axes {
	ax.Y.Label = label
	return ax
}

// SetXLim fixes the x axis limits.
func (ax *Axes) SetXLim(mn, mx float64) *Axes {
	ax.X.Range.SetFixed(mn, mx)
	return ax
}

// SetYLim fixes the y axis limits.
func (ax *Axes) SetYLim(mn, mx float64) *Axes {
	ax.Y.Range.SetFixed(mn, mx)
	return ax
}

// XLim returns the current x axis limits: the fixed ends of the
// x [Axis.Range], and otherwise the scatter data range expanded by
// [Axes.Margin], or (0, 1) when there is no data.
func (ax *Axes) XLim() (mn, mx float64) {
	xr, _ := ax.dataRange()
	return ax.limits(&ax.X, xr)
}

// YLim returns the current y axis limits, as [Axes.XLim] does for x.
func (ax *Axes) YLim() (mn, mx float64) {
	_, yr := ax.dataRange()
	return ax.limits(&ax.Y, yr)
}

func (ax *Axes) limits(a *Axis, dr minmax.F64) (mn, mx float64) {
	if !dr.IsValid() {
		dr = minmax.New(0, 1)
	} else {
		dr = dr.Pad(ax.Margin)
	}
	return a.Range.Clamp(dr.Min, dr.Max)
}

// dataRange returns the range of all scatter data.
// Lines and texts do not take part in autoscaling.
func (ax *Axes) dataRange() (xr, yr minmax.F64) {
	var all XYs
	for _, sc := range ax.Scatters {
		all = append(all, sc.XYs...)
	}
	return all.Range()
}

// nextColor returns the next color of [DefaultColors].
func (ax *Axes) nextColor() int {
	c := ax.ncolor % len(DefaultColors)
	ax.ncolor++
	return c
}

// AddScatter adds a new [Scatter] of a copy of the given points,
// in the next color of the color cycle.
func (ax *Axes) AddScatter(xys XYs) *Scatter {
	sc := &Scatter{}
	sc.Style.Defaults(DefaultColors[ax.nextColor()])
	sc.SetData(xys)
	ax.Scatters = append(ax.Scatters, sc)
	return sc
}

// AddLine adds a new [Line] through the given points,
// in the next color of the color cycle.
func (ax *Axes) AddLine(xs, ys []float64) *Line {
	ln := &Line{}
	ln.Style.Defaults(DefaultColors[ax.nextColor()])
	ln.SetData(xs, ys)
	ax.Lines = append(ax.Lines, ln)
	return ln
}

// AddText adds a new [Text] at the given position.
func (ax *Axes) AddText(x, y float64, coords Coords, s string) *Text {
	tx := &Text{}
	tx.Style.Defaults()
	tx.SetText(s).SetPosition(x, y, coords)
	ax.Texts = append(ax.Texts, tx)
	return tx
}

// RemoveLine removes the given line, returning false if it is not
// on the axes.
func (ax *Axes) RemoveLine(ln *Line) bool {
	i := slices.Index(ax.Lines, ln)
	if i < 0 {
		return false
	}
	ax.Lines = slices.Delete(ax.Lines, i, i+1)
	return true
}

// RemoveText removes the given text, returning false if it is not
// on the axes.
func (ax *Axes) RemoveText(tx *Text) bool {
	i := slices.Index(ax.Texts, tx)
	if i < 0 {
		return false
	}
	ax.Texts = slices.Delete(ax.Texts, i, i+1)
	return true
}

// Clear removes all artists and unfixes the axis limits.
// Labels and metadata are kept.
func (ax *Axes) Clear() {
	ax.Scatters = nil
	ax.Lines = nil
	ax.Texts = nil
	ax.X.Range = minmax.Range64{}
	ax.Y.Range = minmax.Range64{}
	ax.ncolor = 0
}

// Clone returns a deep copy of the axes and their artists, belonging
// to the same figure but not added to it. Metadata is not copied.
func (ax *Axes) Clone() *Axes {
	cl := &Axes{}
	errors.Log(copier.CopyWithOption(cl, ax, copier.Option{DeepCopy: true}))
	cl.fig = ax.fig
	cl.ncolor = ax.ncolor
	return cl
}

// SetMeta attaches the given value to the axes under the given key.
func (ax *Axes) SetMeta(key string, v any) {
	if ax.Metadata == nil {
		ax.Metadata = make(map[string]any)
	}
	ax.Metadata[key] = v
}

// Meta returns the value attached to the axes under the given key.
func (ax *Axes) Meta(key string) (any, bool) {
	v, ok := ax.Metadata[key]
	return v, ok
}
