// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
)

// countingSketch records the frames it is asked to render.
type countingSketch struct {
	params *sketchbook.Params
	frames []sketchbook.Frame
	fail   error
}

func (c *countingSketch) Name() string               { return "counting" }
func (c *countingSketch) Size() (int, int)           { return 10, 10 }
func (c *countingSketch) Params() *sketchbook.Params { return c.params }

func (c *countingSketch) Render(s surface.Surface, f sketchbook.Frame) error {
	if c.fail != nil {
		return c.fail
	}
	c.frames = append(c.frames, f)
	return s.FillRect(0, 0, float64(f.Width), float64(f.Height))
}

func newCounting() *countingSketch {
	return &countingSketch{params: sketchbook.NewParams()}
}

func TestStepAdvancesClock(t *testing.T) {
	sk := newCounting()
	start := time.Unix(100, 0)
	p := New(sk, surface.NewRecorder(64, 32), WithClock(sketchbook.NewStepClock(start, 40*time.Millisecond)))

	for i := range 5 {
		f, err := p.Step(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if f.Index != i {
			t.Errorf("Index = %d, want %d", f.Index, i)
		}
		want := time.Duration(i) * 40 * time.Millisecond
		if f.Elapsed != want {
			t.Errorf("frame %d Elapsed = %v, want %v", i, f.Elapsed, want)
		}
		if !f.Time.Equal(start.Add(want)) {
			t.Errorf("frame %d Time = %v, want %v", i, f.Time, start.Add(want))
		}
		if f.Width != 64 || f.Height != 32 {
			t.Errorf("frame size = %dx%d, want 64x32", f.Width, f.Height)
		}
	}
	if p.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", p.Frames())
	}
}

func TestRunCallsSink(t *testing.T) {
	sk := newCounting()
	p := New(sk, surface.NewRecorder(8, 8), WithClock(sketchbook.NewFPSClock(25)))

	var seen []int
	err := p.Run(context.Background(), 3, func(f sketchbook.Frame) error {
		seen = append(seen, f.Index)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 || seen[2] != 2 {
		t.Errorf("sink saw %v, want [0 1 2]", seen)
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	p := New(newCounting(), surface.NewRecorder(8, 8), WithClock(sketchbook.NewFPSClock(25)))
	stop := errors.New("disk full")

	err := p.Run(context.Background(), 10, func(f sketchbook.Frame) error {
		if f.Index == 1 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Run() = %v, want %v", err, stop)
	}
	if p.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", p.Frames())
	}
}

func TestRunUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(newCounting(), surface.NewRecorder(8, 8), WithClock(sketchbook.NewFPSClock(25)))

	err := p.Run(ctx, 0, func(f sketchbook.Frame) error {
		if f.Index == 9 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if p.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", p.Frames())
	}
}

func TestStepWrapsRenderError(t *testing.T) {
	sk := newCounting()
	sk.fail = errors.New("boom")
	p := New(sk, surface.NewRecorder(8, 8))

	if _, err := p.Step(context.Background()); !errors.Is(err, sk.fail) {
		t.Errorf("Step() = %v, want wrapped boom", err)
	}
	if p.Frames() != 0 {
		t.Errorf("Frames() = %d after failure, want 0", p.Frames())
	}
}

func TestResize(t *testing.T) {
	sk := newCounting()
	rec := surface.NewRecorder(8, 8)
	p := New(sk, rec, WithClock(sketchbook.NewFPSClock(25)))

	if err := p.Resize(20, 10); err != nil {
		t.Fatal(err)
	}
	f, err := p.Step(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 20 || f.Height != 10 {
		t.Errorf("frame size = %dx%d, want 20x10", f.Width, f.Height)
	}
	if err := p.Resize(0, 10); !errors.Is(err, sketchbook.ErrInvalidSize) {
		t.Errorf("Resize(0, 10) = %v, want ErrInvalidSize", err)
	}
}
