// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var b bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&b, nil)))

	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("bad")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "level=ERROR")
	assert.Contains(t, b.String(), "bad | ")
	assert.Contains(t, b.String(), "errors_test.go:")
}

func TestIs(t *testing.T) {
	base := New("base")
	assert.True(t, Is(fmt.Errorf("outer: %w", base), base))
	assert.False(t, Is(New("base"), base))
}
