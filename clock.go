// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import "time"

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time { return time.Now() }

// StepClock advances by a fixed period on every call, so exported
// animations play at the same speed no matter how long a frame takes to
// render.
type StepClock struct {
	t      time.Time
	period time.Duration
	primed bool
}

// NewStepClock returns a clock starting at start that advances by period.
func NewStepClock(start time.Time, period time.Duration) *StepClock {
	return &StepClock{t: start, period: period}
}

// NewFPSClock returns a step clock for the given frame rate starting at the
// Unix epoch.
func NewFPSClock(fps float64) *StepClock {
	if fps <= 0 {
		fps = 30
	}
	return NewStepClock(time.Unix(0, 0), time.Duration(float64(time.Second)/fps))
}

// Now returns the start time on the first call and advances by one period
// on each later call.
func (c *StepClock) Now() time.Time {
	if !c.primed {
		c.primed = true
		return c.t
	}
	c.t = c.t.Add(c.period)
	return c.t
}

// Period returns the step size.
func (c *StepClock) Period() time.Duration { return c.period }
