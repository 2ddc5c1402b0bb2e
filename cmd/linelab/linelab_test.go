// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/linelab/lab"
	"cogentcore.org/linelab/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConfigTOML(t *testing.T) {
	cfg, err := OpenConfig("testdata/lab.toml")
	require.NoError(t, err)
	assert.Equal(t, "scores.csv", cfg.Data)
	assert.Equal(t, "exam score", cfg.YLabel)
	assert.Equal(t, []float64{0, 100}, cfg.YDomain)
	assert.Equal(t, []float64{0, 7}, cfg.XLim)
	require.Len(t, cfg.Steps, 3)
	assert.Equal(t, Step{Slope: 4.5, Intercept: 48, Loss: 1.25}, cfg.Steps[2])
	assert.Equal(t, filepath.Join("testdata", "scores.csv"), cfg.Path(cfg.Data))
	d, err := cfg.DelayDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, d)
}

func TestOpenConfigYAML(t *testing.T) {
	cfg, err := OpenConfig("testdata/lab.yaml")
	require.NoError(t, err)
	assert.Equal(t, "hours studied", cfg.XLabel)
	assert.Equal(t, []float64{0, 5}, cfg.XDomain)
	assert.True(t, cfg.Jitter)
	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, Step{Slope: 2, Intercept: 1, Loss: 3}, cfg.Steps[1])
	d, err := cfg.DelayDuration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestOpenConfigErrors(t *testing.T) {
	_, err := OpenConfig("testdata/bad.toml")
	assert.ErrorContains(t, err, "x_lim")
	_, err = OpenConfig("testdata/scores.csv")
	assert.ErrorContains(t, err, "unsupported config format")
	_, err = OpenConfig("testdata/missing.toml")
	assert.Error(t, err)

	cfg := &Config{Data: "a.csv", Delay: "soon"}
	assert.ErrorContains(t, cfg.Validate(), "delay")
	cfg = &Config{}
	assert.ErrorContains(t, cfg.Validate(), "data")

	cfg = &Config{Data: "a.csv", Frames: "out/frame.png"}
	assert.ErrorIs(t, cfg.Validate(), lab.ErrFramePattern)
	cfg.Frames = "out/frame-%03d.png"
	assert.NoError(t, cfg.Validate())

	cfg = &Config{}
	d, err := cfg.DelayDuration()
	require.NoError(t, err)
	assert.Equal(t, lab.DefaultDelay, d)
}

func TestRunAnimation(t *testing.T) {
	cfg, err := OpenConfig("testdata/lab.toml")
	require.NoError(t, err)
	dir := t.TempDir()
	cfg.Frames = filepath.Join(dir, "frames", "frame-%03d.png")
	cfg.Final = filepath.Join(dir, "final.svg")

	ax, err := runAnimation(context.Background(), cfg, true)
	require.NoError(t, err)
	require.Len(t, ax.Lines, 1)
	require.Len(t, ax.Texts, 1)
	assert.Equal(t, plot.XYs{{X: 0, Y: 48}, {X: 7, Y: 79.5}}, ax.Lines[0].XYs)
	assert.Equal(t, "loss: 1.25", ax.Texts[0].Text)
	assert.Equal(t, "hours", ax.X.Label)
	assert.Equal(t, "exam score", ax.Y.Label)

	// clamped to the y domain
	require.Len(t, ax.Scatters, 1)
	for _, p := range ax.Scatters[0].XYs {
		assert.True(t, p.Y >= 0 && p.Y <= 100, "y %g", p.Y)
	}
	for i := 0; i < 3; i++ {
		_, err := os.Stat(filepath.Join(dir, "frames", fmt.Sprintf("frame-%03d.png", i)))
		assert.NoError(t, err)
	}
	_, err = os.Stat(cfg.Final)
	assert.NoError(t, err)
}

func TestRunAnimationBadRange(t *testing.T) {
	cfg, err := OpenConfig("testdata/lab.toml")
	require.NoError(t, err)
	cfg.YDomain = []float64{100, 0}
	_, err = runAnimation(context.Background(), cfg, false)
	assert.ErrorContains(t, err, "y_domain")
}

func TestRunAnimationCanceled(t *testing.T) {
	cfg, err := OpenConfig("testdata/lab.toml")
	require.NoError(t, err)
	cfg.Delay = "1h"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runAnimation(ctx, cfg, true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plot.png")
	rootCmd.SetArgs([]string{"plot", "testdata/scores.csv", "-o", out,
		"--clamp-y", "0,100", "--slope", "2", "--intercept", "50", "--loss", "3.14"})
	require.NoError(t, rootCmd.Execute())
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))

	rootCmd.SetArgs([]string{"plot", "testdata/scores.csv", "-o", out, "--clamp-x", "1,2,3"})
	assert.ErrorContains(t, rootCmd.Execute(), "clamp-x")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/scores.csv")
	require.NoError(t, err)
	dfn := filepath.Join(dir, "scores.csv")
	require.NoError(t, os.WriteFile(dfn, data, 0644))
	conf := "data = \"scores.csv\"\nfinal = \"final.png\"\n[[steps]]\nslope = 1\nintercept = 0\nloss = 1\n"
	cfn := filepath.Join(dir, "lab.toml")
	require.NoError(t, os.WriteFile(cfn, []byte(conf), 0644))
	final := filepath.Join(dir, "final.png")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- watch(ctx, cfn, false) }()

	saved := func() bool {
		_, err := os.Stat(final)
		return err == nil
	}
	require.Eventually(t, saved, 3*time.Second, 20*time.Millisecond, "first run")

	// editing the config runs it again
	require.NoError(t, os.Remove(final))
	require.NoError(t, os.WriteFile(cfn, []byte(conf+"\n[[steps]]\nslope = 2\nintercept = 1\nloss = 0.5\n"), 0644))
	require.Eventually(t, saved, 3*time.Second, 20*time.Millisecond, "after config edit")

	// and so does editing the data
	require.NoError(t, os.Remove(final))
	require.NoError(t, os.WriteFile(dfn, append(data, "7,88\n"...), 0644))
	require.Eventually(t, saved, 3*time.Second, 20*time.Millisecond, "after data edit")

	// other files in the directory are ignored
	require.NoError(t, os.Remove(final))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	time.Sleep(3 * watchSettle)
	assert.False(t, saved(), "unrelated file")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}
