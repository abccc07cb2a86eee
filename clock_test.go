// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import (
	"testing"
	"time"
)

func TestStepClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewStepClock(start, 40*time.Millisecond)

	if got := c.Now(); !got.Equal(start) {
		t.Errorf("first Now() = %v, want %v", got, start)
	}
	for i := 1; i <= 3; i++ {
		want := start.Add(time.Duration(i) * 40 * time.Millisecond)
		if got := c.Now(); !got.Equal(want) {
			t.Errorf("Now() #%d = %v, want %v", i, got, want)
		}
	}
}

func TestFPSClock(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{25, 40 * time.Millisecond},
		{50, 20 * time.Millisecond},
		{0, time.Second / 30},
	}
	for _, tt := range tests {
		if got := NewFPSClock(tt.fps).Period(); got != tt.want {
			t.Errorf("NewFPSClock(%v).Period() = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestResolveOptions(t *testing.T) {
	o := ResolveOptions()
	if o.Rand == nil {
		t.Fatal("default Rand is nil")
	}

	o = ResolveOptions(
		WithParams(map[string]float64{"rows": 3}),
		WithParams(map[string]float64{"cols": 4}),
		WithCompat("legacy"),
	)
	if o.Params["rows"] != 3 || o.Params["cols"] != 4 {
		t.Errorf("Params = %v, want merged overrides", o.Params)
	}
	if !o.Quirk("legacy") || o.Quirk("other") {
		t.Errorf("Quirk() mismatch: %v", o.Compat)
	}
}

func TestFrameSeconds(t *testing.T) {
	f := Frame{Elapsed: 1500 * time.Millisecond}
	if f.Seconds() != 1.5 {
		t.Errorf("Seconds() = %v, want 1.5", f.Seconds())
	}
}
