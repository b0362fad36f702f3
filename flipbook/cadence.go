// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flipbook

import (
	"time"

	"github.com/bureau-foundation/flipbook/lib/clock"
	"github.com/bureau-foundation/flipbook/lib/screen"
)

// DefaultInterval is the minimum time between two emitted frames.
const DefaultInterval = time.Second

// Screen is the part of a terminal emulator the cadence engine reads.
// lib/vterm.Emulator satisfies it.
type Screen interface {
	Snapshot() *screen.Grid
	Dirty() bool
	ClearDirty()
}

// Cadence decides when a terminal screen is worth emitting as a frame.
//
// Frames are rate limited to one per interval, are only emitted when the
// screen changed, and an all-blank screen is never emitted as the first
// or the last frame. The one exception: a session that ends before any
// frame was emitted always gets exactly one frame, blank or not.
//
// A Cadence is owned by a single capture loop and is not safe for
// concurrent use.
type Cadence struct {
	clock    clock.Clock
	interval time.Duration
	renderer *screen.Renderer

	lastCheck   time.Time
	frameNumber int
}

// NewCadence returns a Cadence whose first rate-limit window starts now.
// A non-positive interval selects DefaultInterval. A nil renderer uses
// screen.DefaultWidth.
func NewCadence(clk clock.Clock, interval time.Duration, renderer *screen.Renderer) *Cadence {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if renderer == nil {
		renderer = screen.NewRenderer(nil)
	}
	return &Cadence{
		clock:       clk,
		interval:    interval,
		renderer:    renderer,
		lastCheck:   clk.Now(),
		frameNumber: 1,
	}
}

// FrameNumber returns the number the next emitted frame will carry.
func (c *Cadence) FrameNumber() int { return c.frameNumber }

// MaybeEmit returns a frame when one is due. final marks the last call of
// a session; it bypasses the rate limit.
//
// Every call that passes the rate limit restarts the interval, whether or
// not it produces a frame.
func (c *Cadence) MaybeEmit(s Screen, final bool) (Frame, bool) {
	now := c.clock.Now()
	if !final && now.Sub(c.lastCheck) < c.interval {
		return Frame{}, false
	}
	c.lastCheck = now

	grid := s.Snapshot()
	rows := c.renderer.RenderGrid(grid)
	first := c.frameNumber == 1

	emit := first && final
	if !emit && s.Dirty() {
		emit = !((first || final) && screen.IsBlank(rows))
	}
	if !emit {
		return Frame{}, false
	}

	frame := Frame{
		Number:  c.frameNumber,
		Columns: grid.Columns,
		Lines:   grid.Lines,
		Rows:    rows,
	}
	s.ClearDirty()
	c.frameNumber++
	return frame, true
}
