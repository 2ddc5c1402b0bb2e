// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Scatter is an artist drawing a circle for each point.
type Scatter struct {
	// XYs is a copy of the points for this scatter.
	XYs XYs

	// Style is the style of the points.
	Style PointStyle
}

// SetData replaces the points of the scatter.
func (sc *Scatter) SetData(xys XYs) *Scatter {
	sc.XYs = append(XYs(nil), xys...)
	return sc
}

// Line is an artist drawing straight segments through its points.
type Line struct {
	// XYs is a copy of the points for this line.
	XYs XYs

	// Style is the style of the line.
	Style LineStyle
}

// SetData replaces the points of the line with the given x and y
// values, as set_data does for a matplotlib line.
func (ln *Line) SetData(xs, ys []float64) *Line {
	ln.XYs = NewXYs(xs, ys)
	return ln
}

// Coords specifies the coordinate system of a position.
type Coords int32

const (
	// DataCoords positions are in data units of the axes.
	DataCoords Coords = iota

	// AxesCoords positions are relative to the axes box, where
	// (0, 0) is the lower left and (1, 1) is the upper right.
	AxesCoords
)

// String returns the name of the coordinate system.
func (c Coords) String() string {
	switch c {
	case DataCoords:
		return "DataCoords"
	case AxesCoords:
		return "AxesCoords"
	}
	return "Coords(?)"
}

// Text is an artist drawing a single text element.
type Text struct {
	// Text is the string to render.
	Text string

	// X and Y are the position of the text, in Coords.
	X, Y float64

	// Coords is the coordinate system of X and Y.
	Coords Coords

	// Style is the style of the text.
	Style TextStyle
}

// SetText sets the string to render.
func (tx *Text) SetText(s string) *Text {
	tx.Text = s
	return tx
}

// SetPosition sets the position of the text in the given coordinates.
func (tx *Text) SetPosition(x, y float64, coords Coords) *Text {
	tx.X, tx.Y, tx.Coords = x, y, coords
	return tx
}
