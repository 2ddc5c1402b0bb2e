// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultColors is the color cycle used for successive scatter and
// line artists added to an [Axes].
var DefaultColors = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Forestgreen,
	colornames.Crimson,
	colornames.Mediumpurple,
	colornames.Sienna,
	colornames.Orchid,
	colornames.Gray,
	colornames.Olive,
	colornames.Darkturquoise,
}

// LineStyle has style properties for drawing lines.
type LineStyle struct {
	// Color is the stroke color.
	Color color.RGBA

	// Width is the line width; zero disables the line.
	Width vg.Length
}

// Defaults sets the default line style for the given color.
func (ls *LineStyle) Defaults(c color.RGBA) {
	ls.Color = c
	ls.Width = vg.Points(1.5)
}

// PointStyle has style properties for drawing points.
type PointStyle struct {
	// Color is the fill color, to which Alpha is applied.
	Color color.RGBA

	// Alpha is the opacity of the points, from 0 to 1.
	Alpha float64

	// Radius is the radius of the circle drawn for each point.
	Radius vg.Length
}

// Defaults sets the default point style for the given color.
func (ps *PointStyle) Defaults(c color.RGBA) {
	ps.Color = c
	ps.Alpha = 1
	ps.Radius = vg.Points(3)
}

// TextStyle has style properties for rendering text artists.
type TextStyle struct {
	// Color is the text color.
	Color color.RGBA

	// Background is the color of the box drawn behind the text,
	// to which BackgroundAlpha is applied. A zero BackgroundAlpha
	// disables the box.
	Background color.RGBA

	// BackgroundAlpha is the opacity of the background box.
	BackgroundAlpha float64

	// XAlign and YAlign align the text relative to its position.
	XAlign draw.XAlignment
	YAlign draw.YAlignment

	// Padding is the space between the text and its background box edges.
	Padding vg.Length
}

// Defaults sets the default text style: black, left / bottom aligned,
// with no background box.
func (ts *TextStyle) Defaults() {
	ts.Color = colornames.Black
	ts.XAlign = draw.XLeft
	ts.YAlign = draw.YBottom
	ts.Padding = vg.Points(3)
}

// withAlpha returns the color with its alpha channel set to
// the given opacity, for use as a non-premultiplied color.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
