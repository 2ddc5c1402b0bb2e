// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/linelab/base/minmax"
	"cogentcore.org/linelab/lab"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is a lab config file: the dataset to plot and the
// sequence of lines computed by the lab, one per frame.
type Config struct {

	// Data is the CSV or TSV file of points, relative to the config file.
	Data string `toml:"data" yaml:"data"`

	// XLabel and YLabel are the axis labels, defaulting
	// to the column names of the data.
	XLabel string `toml:"x_label" yaml:"x_label"`
	YLabel string `toml:"y_label" yaml:"y_label"`

	// XDomain and YDomain, if set, are the domains the data is clamped to.
	XDomain []float64 `toml:"x_domain" yaml:"x_domain"`
	YDomain []float64 `toml:"y_domain" yaml:"y_domain"`

	// XLim, if set, fixes the x axis limits that lines span.
	XLim []float64 `toml:"x_lim" yaml:"x_lim"`

	// Jitter adds jitter to the plotted points.
	Jitter bool `toml:"jitter" yaml:"jitter"`

	// Frames is an optional file name pattern for saving each frame,
	// formatted with the frame index, as in "out/frame-%03d.png".
	Frames string `toml:"frames" yaml:"frames"`

	// Final is an optional file name for saving the last frame.
	Final string `toml:"final" yaml:"final"`

	// Delay is the pause after each frame, as in "500ms".
	Delay string `toml:"delay" yaml:"delay"`

	// Steps are the lines to animate, in order.
	Steps []Step `toml:"steps" yaml:"steps"`

	// dir is the directory of the config file.
	dir string
}

// Step is one line computed by the lab.
type Step struct {
	Slope     float64 `toml:"slope" yaml:"slope"`
	Intercept float64 `toml:"intercept" yaml:"intercept"`
	Loss      float64 `toml:"loss" yaml:"loss"`
}

// OpenConfig reads a [Config] from the given TOML or YAML file.
func OpenConfig(filename string) (*Config, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := &Config{dir: filepath.Dir(filename)}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("%s: unsupported config format %q", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the config for missing or malformed values.
func (cfg *Config) Validate() error {
	if cfg.Data == "" {
		return fmt.Errorf("data file is required")
	}
	for name, v := range map[string][]float64{"x_domain": cfg.XDomain, "y_domain": cfg.YDomain, "x_lim": cfg.XLim} {
		if _, err := pair(name, v); err != nil {
			return err
		}
	}
	if cfg.Frames != "" {
		if err := lab.CheckFramePattern(cfg.Frames); err != nil {
			return fmt.Errorf("frames: %w", err)
		}
	}
	_, err := cfg.DelayDuration()
	return err
}

// Path returns the given config path with ~ expanded and made
// relative to the directory of the config file.
func (cfg *Config) Path(p string) string {
	if p == "" {
		return ""
	}
	if ep, err := homedir.Expand(p); err == nil {
		p = ep
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.dir, p)
}

// DelayDuration returns the parsed Delay, [lab.DefaultDelay] if
// it is not set.
func (cfg *Config) DelayDuration() (time.Duration, error) {
	if cfg.Delay == "" {
		return lab.DefaultDelay, nil
	}
	d, err := time.ParseDuration(cfg.Delay)
	if err != nil {
		return 0, fmt.Errorf("delay: %w", err)
	}
	return d, nil
}

// pair returns a range from an optional [min, max] list.
// It returns nil for an empty list.
func pair(name string, v []float64) (*minmax.F64, error) {
	if len(v) == 0 {
		return nil, nil
	}
	if len(v) != 2 {
		return nil, fmt.Errorf("%s: expected [min, max], got %d values", name, len(v))
	}
	r := minmax.New(v[0], v[1])
	if !r.IsValid() {
		return nil, fmt.Errorf("%s: min %g is greater than max %g", name, r.Min, r.Max)
	}
	return &r, nil
}
