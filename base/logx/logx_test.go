// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	l := slog.New(NewHandler(b, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("frame", "index", 2, "loss", 3.5)
	assert.Equal(t, "INFO frame index=2 loss=3.5\n", b.String())

	b.Reset()
	l.With("lab", "line").WithGroup("step").Warn("slow", "ms", 500)
	assert.Equal(t, "WARN slow lab=line step.ms=500\n", b.String())
}

func TestDefaultLogger(t *testing.T) {
	prevLevel, prevLogger, prevOut := UserLevel, slog.Default(), stderr
	t.Cleanup(func() {
		UserLevel, stderr = prevLevel, prevOut
		slog.SetDefault(prevLogger)
	})
	b := &bytes.Buffer{}
	stderr = b

	UserLevel = slog.LevelInfo
	SetDefaultLogger()
	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn", "n", 1)
	assert.Equal(t, "INFO this is info\nWARN this is warn n=1\n", b.String())

	b.Reset()
	UserLevel = LevelFromFlags(false, false, true)
	SetDefaultLogger()
	slog.Warn("hidden")
	slog.Error("shown")
	assert.Equal(t, "ERROR shown\n", b.String())
}
