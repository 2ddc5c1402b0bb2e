// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides an explicit, caller-owned plot surface:
// a [Figure] holding [Axes], onto which [Scatter], [Line] and [Text]
// artists are added and then mutated in place. Figures are rendered
// to image and vector formats with gonum.org/v1/plot.
//
// There is no global current figure: every operation takes the
// handle it acts on.
package plot

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

// Rect is a rectangle in normalized figure coordinates, where
// (0, 0) is the lower left and (1, 1) the upper right of the figure.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// DefaultAxesBox is the box of axes created by [NewGraph]:
// 10% margins on every side of the figure.
var DefaultAxesBox = Rect{Left: 0.1, Bottom: 0.1, Width: 0.8, Height: 0.8}

// Figure is the top-level plot surface, holding one or more [Axes].
type Figure struct {
	// Width and Height are the size of the rendered figure.
	Width, Height vg.Length

	// Background is the color the figure is filled with before drawing.
	Background color.RGBA

	axes []*Axes
}

// NewFigure returns a new empty Figure with the default size of
// 6.4 x 4.8 inches and a white background.
func NewFigure() *Figure {
	return &Figure{
		Width:      6.4 * vg.Inch,
		Height:     4.8 * vg.Inch,
		Background: colornames.White,
	}
}

// NewGraph returns new [Axes] on a new [Figure], placed in
// [DefaultAxesBox], with the given axis labels.
func NewGraph(xLabel, yLabel string) *Axes {
	ax := NewFigure().AddAxes(DefaultAxesBox)
	ax.X.Label = xLabel
	ax.Y.Label = yLabel
	return ax
}

// AddAxes adds new [Axes] in the given box of the figure.
func (fg *Figure) AddAxes(box Rect) *Axes {
	ax := &Axes{Box: box, Margin: DefaultMargin, fig: fg}
	fg.axes = append(fg.axes, ax)
	return ax
}

// Axes returns the axes of the figure, in the order they were added.
func (fg *Figure) Axes() []*Axes {
	return fg.axes
}
