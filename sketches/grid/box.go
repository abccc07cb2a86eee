// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"math/rand/v2"
	"time"

	"github.com/gogpu/sketchbook/anim"
	"github.com/gogpu/sketchbook/surface"
)

// Env carries the per-frame values a box needs to draw itself.
type Env struct {
	Now      time.Time
	Duration time.Duration

	// Inset is the inset ratio reached at the end of the animation.
	Inset float64

	// Randomness is the per-frame probability of NOT starting an animation
	// while idle.
	Randomness float64

	Rand *rand.Rand
}

// Box is one grid cell. Geometry is refreshed every frame; the animation
// timer persists.
type Box struct {
	X, Y          float64
	Width, Height float64

	timer anim.Timer
}

// NewBox creates an idle box.
func NewBox(x, y, w, h float64) *Box {
	b := &Box{}
	b.Reposition(x, y)
	b.Resize(w, h)
	return b
}

// Reposition moves the box.
func (b *Box) Reposition(x, y float64) {
	b.X, b.Y = x, y
}

// Resize changes the box size. Sizes are not validated.
func (b *Box) Resize(w, h float64) {
	b.Width, b.Height = w, h
}

// Animating reports whether an inset animation is running.
func (b *Box) Animating() bool { return b.timer.Active() }

// Timer exposes the animation timer.
func (b *Box) Timer() *anim.Timer { return &b.timer }

// InsetRect returns the inner rectangle, relative to the box origin, at the
// given animation fraction. The total inset grows linearly from 0 to
// ratio*(Width, Height) and is split evenly between both sides.
func (b *Box) InsetRect(fraction, ratio float64) (x, y, w, h float64) {
	inset := ratio * fraction
	return inset * b.Width / 2, inset * b.Height / 2,
		b.Width - inset*b.Width, b.Height - inset*b.Height
}

// Draw strokes the outline and advances the inset animation.
//
// While idle, every frame runs an independent trial that starts the
// animation with probability 1-Randomness; the animation is first drawn on
// the following frame. While animating, the inset outline is drawn and the
// timer is cleared once the fraction reaches 1.
func (b *Box) Draw(s surface.Surface, env Env) error {
	s.Save()
	defer s.Restore()

	s.Translate(b.X, b.Y)
	s.BeginPath()
	s.Rect(0, 0, b.Width, b.Height)
	if err := s.Stroke(); err != nil {
		return err
	}

	if !b.timer.Active() {
		if anim.Chance(env.Rand, 1-env.Randomness) {
			b.timer.Start(env.Now)
		}
		return nil
	}

	f := b.timer.Fraction(env.Now, env.Duration)
	s.BeginPath()
	s.Rect(b.InsetRect(f, env.Inset))
	if err := s.Stroke(); err != nil {
		return err
	}
	b.timer.ClearIfComplete(env.Now, env.Duration)
	return nil
}
