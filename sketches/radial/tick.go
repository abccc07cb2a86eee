// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package radial

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gogpu/sketchbook/anim"
	"github.com/gogpu/sketchbook/surface"
)

// TickEnv carries the per-frame values a tick needs.
type TickEnv struct {
	Now      time.Time
	Duration time.Duration

	// Radius is the distance from the centre at which ticks start.
	Radius float64

	// Chance is the per-frame trigger probability (tickChance / tickCount).
	Chance float64

	// Override lets an animating tick retrigger itself.
	Override bool

	Rand *rand.Rand
}

// Tick is one spoke of the ring.
type Tick struct {
	// Angle is the spoke direction in radians, measured from +Y towards +X.
	Angle float64

	// Width and Length are the configured mark size.
	Width  float64
	Length float64

	// Scale is the length multiplier drawn when the current run started.
	Scale float64

	timer anim.Timer
}

// NewTick creates an idle tick.
func NewTick(w, l, angle float64) *Tick {
	t := &Tick{Scale: 1}
	t.Update(w, l, angle)
	return t
}

// Update refreshes the layout-derived geometry without touching the
// animation.
func (t *Tick) Update(w, l, angle float64) {
	t.Width, t.Length, t.Angle = w, l, angle
}

// Animating reports whether the tick is travelling.
func (t *Tick) Animating() bool { return t.timer.Active() }

// Timer exposes the animation timer.
func (t *Tick) Timer() *anim.Timer { return &t.timer }

// Distance returns the distance from the centre at the given fraction. It
// falls linearly from radius to 0 and does not overshoot the centre.
func Distance(fraction, radius float64) float64 {
	return radius * math.Max(0, 1-fraction)
}

// Position returns the tick centre relative to the ring centre.
func (t *Tick) Position(fraction, radius float64) (x, y float64) {
	d := Distance(fraction, radius)
	return d * math.Sin(t.Angle), d * math.Cos(t.Angle)
}

// Trigger runs this frame's Bernoulli trial. Idle ticks always take part;
// animating ticks only when override is set, in which case a success
// restarts the run mid-flight. A fresh run draws a new length multiplier.
func (t *Tick) Trigger(env TickEnv) bool {
	if t.timer.Active() && !env.Override {
		return false
	}
	if !anim.Chance(env.Rand, env.Chance) {
		return false
	}
	if !t.timer.Active() {
		t.Scale = anim.Range(env.Rand, 0.3, 1)
	}
	t.timer.Start(env.Now)
	return true
}

// Draw triggers and renders the tick. Idle ticks are invisible. The mark is
// filled with the surface's current fill colour, oriented along its spoke,
// and shortens as it approaches the centre.
func (t *Tick) Draw(s surface.Surface, env TickEnv) error {
	t.Trigger(env)
	if !t.timer.Active() {
		return nil
	}

	f := t.timer.Fraction(env.Now, env.Duration)
	x, y := t.Position(f, env.Radius)
	w := t.Width
	h := t.Length * t.Scale * math.Max(0, 1-f)

	s.Save()
	s.Translate(x, y)
	s.Rotate(-t.Angle)
	s.BeginPath()
	s.Rect(-w/2, -h/2, w, h)
	err := s.Fill()
	s.Restore()
	if err != nil {
		return err
	}

	t.timer.ClearIfComplete(env.Now, env.Duration)
	return nil
}
