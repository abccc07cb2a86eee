// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"testing"
	"time"
)

func TestTimerLifecycle(t *testing.T) {
	var tm Timer
	if tm.Active() {
		t.Fatal("zero Timer is active")
	}
	if got := tm.Fraction(time.Now(), time.Second); got != 0 {
		t.Errorf("inactive Fraction() = %v, want 0", got)
	}

	t0 := time.Unix(10, 0)
	tm.Start(t0)
	if !tm.Active() {
		t.Fatal("Start() did not activate the timer")
	}
	if !tm.Started().Equal(t0) {
		t.Errorf("Started() = %v, want %v", tm.Started(), t0)
	}

	d := 2 * time.Second
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0.25},
		{time.Second, 0.5},
		{2 * time.Second, 1},
		{3 * time.Second, 1.5},
	}
	for _, tt := range tests {
		if got := tm.Fraction(t0.Add(tt.at), d); got != tt.want {
			t.Errorf("Fraction(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestTimerClearIfComplete(t *testing.T) {
	t0 := time.Unix(0, 0)
	d := time.Second

	tests := []struct {
		name        string
		at          time.Duration
		wantCleared bool
	}{
		{"before end", 999 * time.Millisecond, false},
		{"exactly one", time.Second, true},
		{"overshoot", 5 * time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tm Timer
			tm.Start(t0)
			cleared := tm.ClearIfComplete(t0.Add(tt.at), d)
			if cleared != tt.wantCleared {
				t.Errorf("ClearIfComplete() = %v, want %v", cleared, tt.wantCleared)
			}
			if tm.Active() == tt.wantCleared {
				t.Errorf("Active() = %v after ClearIfComplete", tm.Active())
			}
		})
	}
}

func TestTimerZeroDuration(t *testing.T) {
	var tm Timer
	now := time.Unix(0, 0)
	tm.Start(now)
	if got := tm.Fraction(now, 0); got != 1 {
		t.Errorf("Fraction with zero duration = %v, want 1", got)
	}
	if !tm.ClearIfComplete(now, 0) {
		t.Error("zero-length animation should clear on its first frame")
	}
}

func TestTimerRestart(t *testing.T) {
	var tm Timer
	t0 := time.Unix(0, 0)
	tm.Start(t0)
	tm.Start(t0.Add(time.Second))
	if got := tm.Fraction(t0.Add(time.Second), time.Second); got != 0 {
		t.Errorf("restarted Fraction() = %v, want 0", got)
	}
}

func TestTimerClockSkew(t *testing.T) {
	var tm Timer
	t0 := time.Unix(100, 0)
	tm.Start(t0)
	if got := tm.Fraction(t0.Add(-time.Second), time.Second); got != 0 {
		t.Errorf("Fraction before origin = %v, want 0", got)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(2.5); got != 2500*time.Millisecond {
		t.Errorf("Seconds(2.5) = %v", got)
	}
}
