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

func deg2rad(deg float64) float64 { return deg / 180 * math.Pi }

// ArcEnv carries the per-frame values an arc needs.
type ArcEnv struct {
	Now      time.Time
	Duration time.Duration
	Width    float64
}

// Arc is a ring segment rotating at a constant angular velocity. Its shape
// is sampled once at construction. Start, Length and Target are in degrees;
// the rotation they produce is applied in radians.
type Arc struct {
	Radius float64
	Length float64
	Start  float64
	Target float64
	Speed  float64

	timer anim.Timer
}

// NewArc samples an arc. The radius is 30-100% of tickRadius and the
// length lies in [minLen, maxLen); with legacyLength it lies in
// [0, minLen*maxLen) instead.
func NewArc(r *rand.Rand, tickRadius, minLen, maxLen float64, legacyLength bool) *Arc {
	a := &Arc{Radius: anim.Range(r, 0.3, 1) * tickRadius}
	if legacyLength {
		a.Length = anim.Range(r, 0, minLen*maxLen)
	} else {
		a.Length = anim.Range(r, minLen, maxLen)
	}
	a.Start = anim.Range(r, 0, 360)
	a.Target = anim.Range(r, -360, 360)
	a.Speed = anim.Range(r, 0.01, 0.09)
	return a
}

// Rotation returns the rotation in radians at the given fraction: Target is
// scaled by fraction and Speed without a unit conversion. The timer is never
// reset, so the rotation grows without bound at a constant rate.
func (a *Arc) Rotation(fraction float64) float64 {
	return a.Target * fraction * a.Speed
}

// Animating reports whether the arc has started rotating.
func (a *Arc) Animating() bool { return a.timer.Active() }

// Draw starts the rotation on first use and strokes the arc with the
// surface's current stroke colour.
func (a *Arc) Draw(s surface.Surface, env ArcEnv) error {
	if !a.timer.Active() {
		a.timer.Start(env.Now)
	}
	rot := a.Rotation(a.timer.Fraction(env.Now, env.Duration))

	s.Save()
	defer s.Restore()
	s.Rotate(rot)
	s.SetLineWidth(env.Width)
	s.BeginPath()
	s.Arc(0, 0, a.Radius, deg2rad(a.Start), deg2rad(a.Start+a.Length))
	return s.Stroke()
}
