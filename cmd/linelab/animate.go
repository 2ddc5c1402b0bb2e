// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/linelab/base/minmax"
	"cogentcore.org/linelab/lab"
	"cogentcore.org/linelab/plot"
	"cogentcore.org/linelab/table"
	"github.com/spf13/cobra"
)

var noPace bool

var animateCmd = &cobra.Command{
	Use:   "animate <lab.toml>",
	Short: "Animate the lines of a lab config over its dataset",
	Long: `Plot the dataset of a lab config (TOML or YAML) and step through its lines,
one frame per step, saving frames and pausing between them as configured.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		cfg, err := OpenConfig(args[0])
		if err != nil {
			return err
		}
		_, err = runAnimation(ctx, cfg, !noPace)
		return err
	},
}

func init() {
	animateCmd.Flags().BoolVar(&noPace, "no-pace", false, "do not pause between frames")
}

// unbounded is the domain that leaves values unchanged.
var unbounded = minmax.New(math.Inf(-1), math.Inf(1))

// clampDataset clamps the dataset to the given domains, where
// a nil domain leaves that column unchanged.
func clampDataset(ds *table.Dataset, xd, yd *minmax.F64) {
	x, y := unbounded, unbounded
	if xd != nil {
		x = *xd
	}
	if yd != nil {
		y = *yd
	}
	lab.ClampDataset(ds, x, y)
}

// runAnimation plots the dataset of the config and steps an animation
// through its lines, returning the axes of the last frame.
func runAnimation(ctx context.Context, cfg *Config, pace bool) (*plot.Axes, error) {
	ds, err := table.OpenFile(cfg.Path(cfg.Data))
	if err != nil {
		return nil, err
	}
	xd, err := pair("x_domain", cfg.XDomain)
	if err != nil {
		return nil, err
	}
	yd, err := pair("y_domain", cfg.YDomain)
	if err != nil {
		return nil, err
	}
	xlim, err := pair("x_lim", cfg.XLim)
	if err != nil {
		return nil, err
	}
	if xd != nil || yd != nil {
		clampDataset(ds, xd, yd)
	}
	xl, yl := labels(ds, cfg.XLabel, cfg.YLabel)
	ax := lab.CreateGraph(xl, yl)
	if xlim != nil {
		ax.SetXLim(xlim.Min, xlim.Max)
	}
	lab.Draw(ds.Points, ax, cfg.Jitter)

	fns := []lab.FrameFunc{logFrame}
	if cfg.Frames != "" {
		pattern := cfg.Path(cfg.Frames)
		if err := os.MkdirAll(filepath.Dir(pattern), 0755); err != nil {
			return nil, err
		}
		fns = append(fns, lab.SaveFrames(pattern))
	}
	if pace {
		delay, err := cfg.DelayDuration()
		if err != nil {
			return nil, err
		}
		fns = append(fns, lab.Paced(ctx, delay))
	}
	an := lab.NewAnimation(ax, fns...)
	for i, st := range cfg.Steps {
		if err := ctx.Err(); err != nil {
			return ax, err
		}
		if _, err := an.Step(st.Slope, st.Intercept, st.Loss); err != nil {
			return ax, fmt.Errorf("step %d: %w", i, err)
		}
	}
	if cfg.Final != "" {
		final := cfg.Path(cfg.Final)
		if err := ax.Figure().Save(final); err != nil {
			return ax, err
		}
		slog.Info("saved final frame", "file", final)
	}
	return ax, nil
}

func logFrame(f lab.Frame) error {
	slog.Info("frame", "index", f.Index, "slope", f.Slope, "intercept", f.Intercept, "loss", f.Loss)
	return nil
}
