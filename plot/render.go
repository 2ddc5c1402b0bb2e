// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/linelab/base/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("plot: unknown output format")

// Formats are the supported output formats.
var Formats = []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff"}

// FormatFromExt returns the output format for the given filename.
func FormatFromExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func checkFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save renders the figure to the given file, in the format
// given by its extension.
func (fg *Figure) Save(filename string) error {
	format := FormatFromExt(filename)
	if err := checkFormat(format); err != nil {
		return err
	}
	return writeFile(filename, func(w io.Writer) error {
		_, err := fg.WriteTo(w, format)
		return err
	})
}

// writeFile creates the named file and writes it through a buffer
// with the given function. The file is removed if writing fails.
func writeFile(filename string, write func(w io.Writer) error) (err error) {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			errors.Log(os.Remove(filename))
		}
	}()
	bw := bufio.NewWriter(fp)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteTo renders the figure in the given format to the writer.
func (fg *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	format = strings.ToLower(format)
	if err := checkFormat(format); err != nil {
		return 0, err
	}
	cw, err := draw.NewFormattedCanvas(fg.Width, fg.Height, format)
	if err != nil {
		return 0, err
	}
	if err := fg.Draw(draw.New(cw)); err != nil {
		return 0, err
	}
	return cw.WriteTo(w)
}

// Draw draws the figure background and all of its axes onto
// the given canvas. Axes are drawn in the order they were added.
func (fg *Figure) Draw(c draw.Canvas) error {
	c.SetColor(fg.Background)
	c.Fill(c.Rectangle.Path())
	for _, ax := range fg.axes {
		p, err := ax.Plot()
		if err != nil {
			return err
		}
		p.Draw(ax.Box.crop(c))
	}
	return nil
}

// crop returns the part of the canvas covered by the box.
func (r Rect) crop(c draw.Canvas) draw.Canvas {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	left := vg.Length(r.Left) * w
	bottom := vg.Length(r.Bottom) * h
	right := -(w - vg.Length(r.Left+r.Width)*w)
	top := -(h - vg.Length(r.Bottom+r.Height)*h)
	return draw.Crop(c, left, right, bottom, top)
}

// Plot returns a gonum [plot.Plot] showing the current state of the
// axes: labels, limits and all artists.
func (ax *Axes) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = nil
	p.X.Label.Text = ax.X.Label
	p.Y.Label.Text = ax.Y.Label
	p.X.Min, p.X.Max = ax.XLim()
	p.Y.Min, p.Y.Max = ax.YLim()

	for _, sc := range ax.Scatters {
		pts := sc.XYs.finite()
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = withAlpha(sc.Style.Color, sc.Style.Alpha)
		s.GlyphStyle.Radius = sc.Style.Radius
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}
	for _, ln := range ax.Lines {
		pts := ln.XYs.finite()
		if len(pts) == 0 || ln.Style.Width == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = ln.Style.Color
		l.LineStyle.Width = ln.Style.Width
		p.Add(l)
	}
	for _, tx := range ax.Texts {
		if tx.Text == "" {
			continue
		}
		p.Add(&textPlotter{Text: *tx})
	}
	// artists never widen the limits computed above
	p.X.Min, p.X.Max = ax.XLim()
	p.Y.Min, p.Y.Max = ax.YLim()
	return p, nil
}

// textPlotter draws a [Text], with its optional background box,
// implementing the [plot.Plotter] interface.
type textPlotter struct {
	Text
}

func (tp *textPlotter) Plot(c draw.Canvas, p *plot.Plot) {
	tx := &tp.Text
	var pt vg.Point
	switch tx.Coords {
	case AxesCoords:
		pt.X = c.Min.X + vg.Length(tx.X)*(c.Max.X-c.Min.X)
		pt.Y = c.Min.Y + vg.Length(tx.Y)*(c.Max.Y-c.Min.Y)
	default:
		xf, yf := p.Transforms(&c)
		pt.X, pt.Y = xf(tx.X), yf(tx.Y)
	}

	sty := p.Legend.TextStyle
	sty.Color = tx.Style.Color
	sty.XAlign = tx.Style.XAlign
	sty.YAlign = tx.Style.YAlign

	pad := tx.Style.Padding
	w := sty.Width(tx.Text) + 2*pad
	h := sty.Height(tx.Text) + 2*pad
	// lower left of the padded box, from the alignment fractions
	// (0 for left / bottom, -0.5 for center, -1 for right / top)
	ll := vg.Point{X: pt.X + vg.Length(tx.Style.XAlign)*w, Y: pt.Y + vg.Length(tx.Style.YAlign)*h}
	if tx.Style.BackgroundAlpha > 0 {
		c.FillPolygon(withAlpha(tx.Style.Background, tx.Style.BackgroundAlpha), []vg.Point{
			ll,
			{X: ll.X + w, Y: ll.Y},
			{X: ll.X + w, Y: ll.Y + h},
			{X: ll.X, Y: ll.Y + h},
		})
	}
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YBottom
	c.FillText(sty, vg.Point{X: ll.X + pad, Y: ll.Y + pad}, tx.Text)
}
