// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestCells(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	img.SetRGBA(1, 0, red)
	img.SetRGBA(1, 1, blue)

	cs := cells(img)
	if len(cs) != 4 {
		t.Fatalf("len = %d, want 4", len(cs))
	}
	if cs[1].top != red || cs[1].bottom != blue {
		t.Errorf("cell (1,0) = %v/%v, want red over blue", cs[1].top, cs[1].bottom)
	}
}

func TestDownscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	dst := downscale(src, 8, 4)
	if b := dst.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 8x8", b)
	}
	if c := dst.RGBAAt(3, 5); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %v, want white", c)
	}
}

func TestTermColor(t *testing.T) {
	if got, want := termColor(color.RGBA{10, 20, 30, 255}), tcell.NewRGBColor(10, 20, 30); got != want {
		t.Errorf("termColor() = %v, want %v", got, want)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'>', 1},
		{'日', 2},
		{'Ａ', 2},
	}
	for _, tt := range tests {
		if got := runeWidth(tt.r); got != tt.want {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pumpEvents(poll, events, done)
		close(exited)
	}()

	<-events
	close(done)
	select {
	case <-exited:
	case <-time.After(5 * time.Second):
		t.Fatal("pumpEvents still blocked after done was closed")
	}
}

func TestPumpEventsStopsOnNil(t *testing.T) {
	n := 0
	poll := func() tcell.Event {
		n++
		if n > 2 {
			return nil
		}
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	}
	events := make(chan tcell.Event, 4)
	pumpEvents(poll, events, make(chan struct{}))
	if len(events) != 2 {
		t.Errorf("forwarded %d events, want 2", len(events))
	}
}
