// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package radial

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gogpu/sketchbook/surface"
)

func TestNewArcRanges(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		a := NewArc(r, 900, 30, 270, false)
		if a.Radius < 270 || a.Radius >= 900 {
			t.Fatalf("Radius = %v, want [270, 900)", a.Radius)
		}
		if a.Length < 30 || a.Length >= 270 {
			t.Fatalf("Length = %v, want [30, 270)", a.Length)
		}
		if a.Start < 0 || a.Start >= 360 {
			t.Fatalf("Start = %v, want [0, 360)", a.Start)
		}
		if a.Target < -360 || a.Target >= 360 {
			t.Fatalf("Target = %v, want [-360, 360)", a.Target)
		}
		if a.Speed < 0.01 || a.Speed >= 0.09 {
			t.Fatalf("Speed = %v, want [0.01, 0.09)", a.Speed)
		}
	}
}

func TestNewArcLegacyLength(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	longest := 0.0
	for range 1000 {
		a := NewArc(r, 900, 30, 270, true)
		if a.Length < 0 || a.Length >= 30*270 {
			t.Fatalf("Length = %v, want [0, 8100)", a.Length)
		}
		longest = math.Max(longest, a.Length)
	}
	if longest <= 360 {
		t.Errorf("longest legacy arc = %v, expected lengths beyond a full turn", longest)
	}
}

func TestArcRotationMonotonic(t *testing.T) {
	a := &Arc{Radius: 500, Length: 90, Target: 200, Speed: 0.05}
	prev := a.Rotation(0)
	if prev != 0 {
		t.Fatalf("Rotation(0) = %v, want 0", prev)
	}
	for i := 1; i <= 100; i++ {
		got := a.Rotation(float64(i) / 10)
		if got <= prev {
			t.Fatalf("Rotation(%v) = %v, not above %v", float64(i)/10, got, prev)
		}
		prev = got
	}
}

func TestArcDraw(t *testing.T) {
	a := &Arc{Radius: 500, Length: 90, Start: 45, Target: 180, Speed: 0.5}
	rec := surface.NewRecorder(100, 100)
	t0 := time.Unix(0, 0)
	env := ArcEnv{Now: t0, Duration: time.Second, Width: 5}

	if err := a.Draw(rec, env); err != nil {
		t.Fatal(err)
	}
	if !a.Animating() {
		t.Fatal("arc did not start on first draw")
	}

	// Fraction 2 after two durations.
	rec.Reset()
	env.Now = t0.Add(2 * time.Second)
	if err := a.Draw(rec, env); err != nil {
		t.Fatal(err)
	}
	strokes := rec.Painted(surface.OpStroke)
	if len(strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(strokes))
	}
	s := strokes[0]
	if s.LineWidth != 5 {
		t.Errorf("LineWidth = %v, want 5", s.LineWidth)
	}
	if len(s.Path) != 1 || s.Path[0].Kind != surface.OpArc {
		t.Fatalf("path = %+v, want one arc", s.Path)
	}
	args := s.Path[0].Args
	if args[2] != 500 || math.Abs(args[3]-math.Pi/4) > 1e-12 || math.Abs(args[4]-3*math.Pi/4) > 1e-12 {
		t.Errorf("arc args = %v, want r=500 from pi/4 to 3pi/4", args)
	}
	// 180 * 2 * 0.5 = 180, applied as radians.
	m := s.Path[0].Transform
	want := 180.0
	if math.Abs(m.A-math.Cos(want)) > 1e-9 || math.Abs(m.D-math.Sin(want)) > 1e-9 {
		t.Errorf("transform = %+v, want rotation of %v rad", m, want)
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", rec.Depth())
	}
}

func TestArcRotationRadians(t *testing.T) {
	a := &Arc{Radius: 100, Target: 360, Speed: 0.09}
	rec := surface.NewRecorder(100, 100)
	t0 := time.Unix(0, 0)
	env := ArcEnv{Now: t0, Duration: 5 * time.Second, Width: 1}
	if err := a.Draw(rec, env); err != nil {
		t.Fatal(err)
	}

	rec.Reset()
	env.Now = t0.Add(env.Duration)
	if err := a.Draw(rec, env); err != nil {
		t.Fatal(err)
	}
	if got := a.Rotation(1); math.Abs(got-32.4) > 1e-9 {
		t.Fatalf("Rotation(1) = %v, want 32.4", got)
	}
	m := rec.Painted(surface.OpStroke)[0].Path[0].Transform
	got := math.Atan2(m.D, m.A)
	want := math.Remainder(32.4, 2*math.Pi)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("applied rotation = %v rad, want %v", got, want)
	}
}
