// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/linelab/lab"
	"cogentcore.org/linelab/table"
	"github.com/spf13/cobra"
)

var plotFlags struct {
	output    string
	xLabel    string
	yLabel    string
	clampX    []float64
	clampY    []float64
	jitter    bool
	slope     float64
	intercept float64
	loss      float64
}

var plotCmd = &cobra.Command{
	Use:   "plot <data.csv>",
	Short: "Plot a dataset, with an optional line and loss",
	Long: `Plot the points of a CSV or TSV dataset and save the figure.
If --slope or --intercept is given, the line is drawn over the points,
and if --loss is given, it is shown in the top right corner.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := table.OpenFile(args[0])
		if err != nil {
			return err
		}
		xd, err := pair("clamp-x", plotFlags.clampX)
		if err != nil {
			return err
		}
		yd, err := pair("clamp-y", plotFlags.clampY)
		if err != nil {
			return err
		}
		if xd != nil || yd != nil {
			clampDataset(ds, xd, yd)
		}
		xl, yl := labels(ds, plotFlags.xLabel, plotFlags.yLabel)
		ax := lab.CreateGraph(xl, yl)
		lab.Draw(ds.Points, ax, plotFlags.jitter)
		fl := cmd.Flags()
		if fl.Changed("slope") || fl.Changed("intercept") {
			lab.DrawLine(plotFlags.slope, plotFlags.intercept, ax)
		}
		if fl.Changed("loss") {
			lab.AddLoss(plotFlags.loss, ax)
		}
		if err := ax.Figure().Save(plotFlags.output); err != nil {
			return fmt.Errorf("saving plot: %w", err)
		}
		slog.Info("saved plot", "file", plotFlags.output, "points", ds.Len())
		return nil
	},
}

func init() {
	fl := plotCmd.Flags()
	fl.StringVarP(&plotFlags.output, "output", "o", "plot.png", "output file; the format is taken from the extension")
	fl.StringVar(&plotFlags.xLabel, "x-label", "", "x axis label (default: first column name)")
	fl.StringVar(&plotFlags.yLabel, "y-label", "", "y axis label (default: second column name)")
	fl.Float64SliceVar(&plotFlags.clampX, "clamp-x", nil, "clamp x values to min,max")
	fl.Float64SliceVar(&plotFlags.clampY, "clamp-y", nil, "clamp y values to min,max")
	fl.BoolVar(&plotFlags.jitter, "jitter", false, "add jitter to the points")
	fl.Float64Var(&plotFlags.slope, "slope", 0, "slope of the line to draw")
	fl.Float64Var(&plotFlags.intercept, "intercept", 0, "y-intercept of the line to draw")
	fl.Float64Var(&plotFlags.loss, "loss", 0, "loss to show")
}

// labels returns the given axis labels, defaulting to the
// column names of the dataset.
func labels(ds *table.Dataset, xl, yl string) (string, string) {
	if xl == "" {
		xl = ds.Columns[0]
	}
	if yl == "" {
		yl = ds.Columns[1]
	}
	return xl, yl
}
