// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "time"

// Timer tracks a single animation run. The zero value is inactive.
//
// Progress is derived from timestamps rather than frame counts, so
// animations run at the same speed regardless of frame rate.
type Timer struct {
	start  time.Time
	active bool
}

// Start records now as the origin of the animation, restarting it if it
// was already running.
func (t *Timer) Start(now time.Time) {
	t.start = now
	t.active = true
}

// Active reports whether an origin is recorded.
func (t *Timer) Active() bool { return t.active }

// Started returns the origin of the current run.
func (t *Timer) Started() time.Time { return t.start }

// Fraction returns (now - origin) / d. The result is not clamped; values
// of 1 or more mean the run is complete. An inactive timer returns 0 and
// callers must check Active first. A non-positive duration completes
// immediately.
func (t *Timer) Fraction(now time.Time, d time.Duration) float64 {
	if !t.active {
		return 0
	}
	if d <= 0 {
		return 1
	}
	f := float64(now.Sub(t.start)) / float64(d)
	if f < 0 {
		return 0
	}
	return f
}

// Clear returns the timer to the inactive state.
func (t *Timer) Clear() {
	t.start = time.Time{}
	t.active = false
}

// ClearIfComplete clears the timer once its fraction reaches 1 and reports
// whether it did. Owners call it once per frame after drawing, so exactly
// one frame sees a fraction of 1 or more.
func (t *Timer) ClearIfComplete(now time.Time, d time.Duration) bool {
	if t.active && t.Fraction(now, d) >= 1 {
		t.Clear()
		return true
	}
	return false
}

// Seconds converts a duration parameter expressed in seconds.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
