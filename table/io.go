// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/linelab/base/errors"
)

// Delimiters are the supported column separators.
type Delimiters rune

const (
	// Tab is the tab rune, used for .tsv files.
	Tab Delimiters = '\t'

	// Comma is the comma rune, used for .csv files.
	Comma Delimiters = ','
)

// ErrColumns is returned when a row does not have exactly two columns.
var ErrColumns = errors.New("table: expected exactly 2 columns")

// DelimFromExt returns the delimiter for the given filename,
// Tab for .tsv and .tab files and Comma otherwise.
func DelimFromExt(filename string) Delimiters {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsv", ".tab":
		return Tab
	}
	return Comma
}

// OpenFile reads a Dataset from the given CSV or TSV file,
// chosen by extension.
func OpenFile(filename string) (*Dataset, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	ds, err := ReadCSV(fp, DelimFromExt(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ds, nil
}

// ReadCSV reads a Dataset from delimited text: a header row giving
// the two column names, then rows of exactly two numeric values.
// Blank lines are skipped. Errors name the offending line.
func ReadCSV(r io.Reader, delim Delimiters) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("table: no header row")
	}
	if err != nil {
		return nil, err
	}
	line, _ := cr.FieldPos(0)
	if len(hdr) != 2 {
		return nil, fmt.Errorf("line %d: %w, got %d", line, ErrColumns, len(hdr))
	}
	ds := NewDataset()
	ds.Columns = [2]string{strings.TrimSpace(hdr[0]), strings.TrimSpace(hdr[1])}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ = cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, fmt.Errorf("line %d: %w, got %d", line, ErrColumns, len(rec))
		}
		var pt Point
		if pt.X, err = parseCell(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d, column %q: %w", line, ds.Columns[0], err)
		}
		if pt.Y, err = parseCell(rec[1]); err != nil {
			return nil, fmt.Errorf("line %d, column %q: %w", line, ds.Columns[1], err)
		}
		ds.Points = append(ds.Points, pt)
	}
	return ds, nil
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteCSV writes the Dataset as delimited text with a header row.
func (ds *Dataset) WriteCSV(w io.Writer, delim Delimiters) error {
	cw := csv.NewWriter(w)
	cw.Comma = rune(delim)
	if err := cw.Write(ds.Columns[:]); err != nil {
		return err
	}
	for _, p := range ds.Points {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
