// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lab

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cogentcore.org/linelab/base/errors"
	"cogentcore.org/linelab/plot"
)

// DefaultDelay is the pause between frames used by the lab.
const DefaultDelay = 500 * time.Millisecond

// ErrNoAxes is returned when animating without axes.
var ErrNoAxes = errors.New("lab: no axes to animate")

// ErrFramePattern is returned for a frame file name pattern that does
// not format the frame index with exactly one integer verb.
var ErrFramePattern = errors.New("lab: frame pattern needs exactly one integer verb, as in frame-%03d.png")

// States are the states of an [Animation].
type States int32

const (
	// Uninitialized is the state before the first step:
	// the animation has no line or text on its axes.
	Uninitialized States = iota

	// Running is the state after the first step: the
	// animation updates its line and text in place.
	Running
)

// String returns the name of the state.
func (st States) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// Frame is the result of one [Animation.Step].
type Frame struct {
	// Index is the number of steps taken before this one.
	Index int

	// Slope, Intercept and Loss are the values shown in the frame.
	Slope, Intercept, Loss float64

	// Axes are the axes that were updated.
	Axes *plot.Axes
}

// FrameFunc is called after each step of an [Animation], and is where
// the caller decides what to do with the frame: render it, record it,
// or pause before returning to its loop.
type FrameFunc func(f Frame) error

// Animation animates a regression line and its loss on axes, one
// step per iteration of the caller's training loop. The first step
// draws a line and a loss text; later steps move that line and
// change that text.
type Animation struct {
	// Axes are the axes the animation draws on.
	Axes *plot.Axes

	// OnFrame, if set, is called after each step.
	OnFrame FrameFunc

	state  States
	line   *plot.Line
	text   *plot.Text
	frames int
}

// NewAnimation returns a new [Animation] on the given axes, calling
// the given frame functions in order after each step.
func NewAnimation(ax *plot.Axes, onFrame ...FrameFunc) *Animation {
	an := &Animation{Axes: ax}
	if len(onFrame) > 0 {
		an.OnFrame = Chain(onFrame...)
	}
	return an
}

// State returns the current state.
func (an *Animation) State() States {
	return an.state
}

// Line returns the animated line, nil before the first step.
func (an *Animation) Line() *plot.Line {
	return an.line
}

// Text returns the animated loss text, nil before the first step.
func (an *Animation) Text() *plot.Text {
	return an.text
}

// Frames returns the number of steps taken.
func (an *Animation) Frames() int {
	return an.frames
}

// Step shows the line with the given slope and intercept across the
// current x limits of the axes, and the given loss. It then calls
// OnFrame, returning its error.
func (an *Animation) Step(slope, intercept, loss float64) (Frame, error) {
	ax := an.Axes
	if ax == nil {
		return Frame{}, ErrNoAxes
	}
	if an.state == Running && !an.attached() {
		slog.Debug("lab: animation artists were removed, redrawing")
		an.detach()
	}
	switch an.state {
	case Uninitialized:
		an.line = DrawLine(slope, intercept, ax)
		an.text = AddLoss(loss, ax)
		an.state = Running
	case Running:
		xmin, xmax := ax.XLim()
		ymin, ymax := LineEnds(slope, intercept, xmin, xmax)
		an.line.SetData([]float64{xmin, xmax}, []float64{ymin, ymax})
		an.text.SetText(FormatLoss(loss))
	}
	fr := Frame{Index: an.frames, Slope: slope, Intercept: intercept, Loss: loss, Axes: ax}
	an.frames++
	slog.Debug("lab: frame", "index", fr.Index, "slope", slope, "intercept", intercept, "loss", loss)
	if an.OnFrame == nil {
		return fr, nil
	}
	return fr, an.OnFrame(fr)
}

// Reset removes the line and text of the animation from its axes and
// returns it to the [Uninitialized] state.
func (an *Animation) Reset() {
	an.detach()
	an.frames = 0
}

// attached returns whether the line and text are still on the axes.
func (an *Animation) attached() bool {
	return slices.Contains(an.Axes.Lines, an.line) && slices.Contains(an.Axes.Texts, an.text)
}

func (an *Animation) detach() {
	if an.Axes != nil {
		an.Axes.RemoveLine(an.line)
		an.Axes.RemoveText(an.text)
	}
	an.line = nil
	an.text = nil
	an.state = Uninitialized
}

// Chain returns a [FrameFunc] calling each of the given functions in
// order, stopping at the first error.
func Chain(fns ...FrameFunc) FrameFunc {
	return func(f Frame) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(f); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wait blocks for the given delay, or until the context is done,
// in which case it returns the context error.
func Wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Paced returns a [FrameFunc] that waits for the given delay after
// each frame, so that a loop of steps is visibly paced. Canceling
// the context stops the wait and the animation.
func Paced(ctx context.Context, delay time.Duration) FrameFunc {
	return func(f Frame) error {
		return Wait(ctx, delay)
	}
}

// SaveFrames returns a [FrameFunc] that saves the figure of each frame
// to a file named by formatting the pattern with the frame index,
// as in "frame-%03d.png". An invalid pattern fails every frame
// with [ErrFramePattern].
func SaveFrames(pattern string) FrameFunc {
	perr := CheckFramePattern(pattern)
	return func(f Frame) error {
		if perr != nil {
			return perr
		}
		return f.Axes.Figure().Save(fmt.Sprintf(pattern, f.Index))
	}
}

// CheckFramePattern returns an error wrapping [ErrFramePattern] unless
// the pattern has exactly one integer verb, such as %d or %03d.
// A literal %% is allowed.
func CheckFramePattern(pattern string) error {
	bad := fmt.Errorf("%w: %q", ErrFramePattern, pattern)
	n := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		for i < len(pattern) && strings.IndexByte("+-# .0123456789", pattern[i]) >= 0 {
			i++
		}
		if i == len(pattern) {
			return bad
		}
		switch pattern[i] {
		case '%':
		case 'd', 'x', 'X', 'o', 'O', 'b':
			n++
		default:
			return bad
		}
	}
	if n != 1 {
		return bad
	}
	return nil
}

// Recorder is a [FrameFunc] target that keeps a snapshot of the axes
// of every frame, for rendering after the animation has finished.
type Recorder struct {
	Frames []Frame
}

// Record records a copy of the frame. It is a [FrameFunc].
func (rc *Recorder) Record(f Frame) error {
	f.Axes = f.Axes.Clone()
	rc.Frames = append(rc.Frames, f)
	return nil
}

const animationKey = "lab.Animation"

// AnimationFor returns the [Animation] attached to the axes,
// attaching a new one on first use.
func AnimationFor(ax *plot.Axes) *Animation {
	if v, ok := ax.Meta(animationKey); ok {
		if an, ok := v.(*Animation); ok {
			return an
		}
	}
	an := NewAnimation(ax)
	ax.SetMeta(animationKey, an)
	return an
}

// AnimatedDraw produces one step of an animated plot on the axes:
// on the first call it draws the line and the loss text, and on
// later calls it updates them. It then blocks for the delay, in
// anticipation of being called again by a training loop. Use an
// [Animation] directly for control over pacing.
//
// The frame is only redrawn where the animation's OnFrame sends it,
// for example to files with
//
//	lab.AnimationFor(ax).OnFrame = lab.SaveFrames("frame-%03d.png")
//
// set before the first call; otherwise save the figure when done.
func AnimatedDraw(slope, intercept, loss float64, ax *plot.Axes, delay time.Duration) error {
	if ax == nil {
		return ErrNoAxes
	}
	if _, err := AnimationFor(ax).Step(slope, intercept, loss); err != nil {
		return err
	}
	return Wait(context.Background(), delay)
}
