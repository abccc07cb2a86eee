// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package player drives a sketch frame by frame.
//
// A Player owns one sketch, one surface and one clock. Each Step reads the
// clock, builds the Frame and renders it. Playback speed follows the clock,
// never the render rate: a StepClock yields identical animations however
// long frames take, which is what exports use.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
)

// ErrNotResizable is returned by Resize for fixed-size surfaces.
var ErrNotResizable = errors.New("player: surface cannot be resized")

// Option configures a Player.
type Option func(*Player)

// WithClock sets the frame clock. The default is the wall clock.
func WithClock(c sketchbook.Clock) Option {
	return func(p *Player) {
		p.clock = c
	}
}

// Player renders successive frames of a sketch.
//
// Player is not safe for concurrent use.
type Player struct {
	sketch  sketchbook.Sketch
	surface surface.Surface
	clock   sketchbook.Clock

	index int
	start time.Time
}

// New creates a player. It does not render anything.
func New(sk sketchbook.Sketch, s surface.Surface, opts ...Option) *Player {
	p := &Player{sketch: sk, surface: s, clock: sketchbook.WallClock{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sketch returns the sketch being played.
func (p *Player) Sketch() sketchbook.Sketch { return p.sketch }

// Surface returns the render target.
func (p *Player) Surface() surface.Surface { return p.surface }

// Frames returns the number of frames rendered so far.
func (p *Player) Frames() int { return p.index }

// Step renders the next frame.
func (p *Player) Step(ctx context.Context) (sketchbook.Frame, error) {
	if err := ctx.Err(); err != nil {
		return sketchbook.Frame{}, err
	}

	now := p.clock.Now()
	if p.index == 0 {
		p.start = now
	}
	f := sketchbook.Frame{
		Index:   p.index,
		Time:    now,
		Elapsed: now.Sub(p.start),
		Width:   p.surface.Width(),
		Height:  p.surface.Height(),
	}

	began := time.Now()
	if err := p.sketch.Render(p.surface, f); err != nil {
		return f, fmt.Errorf("player: %s frame %d: %w", p.sketch.Name(), f.Index, err)
	}
	p.index++

	sketchbook.Logger().Debug("frame rendered",
		"sketch", p.sketch.Name(), "index", f.Index, "took", time.Since(began))
	return f, nil
}

// Run renders n frames, or frames until ctx is cancelled when n <= 0, and
// passes each to sink after it is drawn. A nil sink is allowed. Run stops at
// the first error from the sketch or the sink.
func (p *Player) Run(ctx context.Context, n int, sink func(sketchbook.Frame) error) error {
	for i := 0; n <= 0 || i < n; i++ {
		f, err := p.Step(ctx)
		if err != nil {
			return err
		}
		if sink == nil {
			continue
		}
		if err := sink(f); err != nil {
			return fmt.Errorf("player: sink frame %d: %w", f.Index, err)
		}
	}
	return nil
}

// Resize changes the surface size when the backend supports it. Sketch
// state survives; the next frame lays out against the new size.
func (p *Player) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("player: %w: %dx%d", sketchbook.ErrInvalidSize, width, height)
	}
	r, ok := p.surface.(surface.Resizable)
	if !ok {
		return ErrNotResizable
	}
	return r.Resize(width, height)
}
