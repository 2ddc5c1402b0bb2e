// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides Dataset, an ordered two-column table of
// (x, y) points, with reading from CSV / TSV files and clamping.
package table

import (
	"cogentcore.org/linelab/base/minmax"
)

// Point is a pair of numeric coordinates.
type Point struct {
	X float64
	Y float64
}

// Dataset is an ordered collection of Points, with a name for
// each of the two columns.
type Dataset struct {
	// Columns are the names of the x and y columns, typically
	// from the header row of the file the data was read from.
	Columns [2]string

	// Points are the rows of the table, in order.
	Points []Point
}

// NewDataset returns a new Dataset with the given points and
// default column names "x" and "y".
func NewDataset(points ...Point) *Dataset {
	return &Dataset{Columns: [2]string{"x", "y"}, Points: points}
}

// FromPairs returns a new Dataset from [x, y] pairs, as in
// [][2]float64{{10, 30}, {45, 55}}.
func FromPairs(pairs [][2]float64) *Dataset {
	ds := NewDataset()
	ds.Points = make([]Point, len(pairs))
	for i, p := range pairs {
		ds.Points[i] = Point{X: p[0], Y: p[1]}
	}
	return ds
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	return len(ds.Points)
}

// XYs returns the x and y columns as separate slices.
func (ds *Dataset) XYs() (xs, ys []float64) {
	return Split(ds.Points)
}

// Clamp clamps the X of every row to xDomain and the Y
// to yDomain, in place, and returns the dataset.
func (ds *Dataset) Clamp(xDomain, yDomain minmax.F64) *Dataset {
	for i := range ds.Points {
		p := &ds.Points[i]
		p.X = xDomain.Clamp(p.X)
		p.Y = yDomain.Clamp(p.Y)
	}
	return ds
}

// Split returns the x and y values of the points as separate slices.
func Split(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return
}
