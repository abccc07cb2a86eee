// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketches

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
)

func TestNames(t *testing.T) {
	want := []string{"grid", "radial", "iris", "depth", "lit"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("spiral")
	if !errors.Is(err, sketchbook.ErrUnknownSketch) {
		t.Errorf("New(spiral) = %v, want ErrUnknownSketch", err)
	}
}

func TestNewEverySketchRenders(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			sk, err := New(name, sketchbook.WithRand(rand.New(rand.NewPCG(1, 1))))
			if err != nil {
				t.Fatal(err)
			}
			if sk.Name() != name {
				t.Errorf("Name() = %q, want %q", sk.Name(), name)
			}
			if w, h := sk.Size(); w <= 0 || h <= 0 {
				t.Errorf("Size() = %dx%d", w, h)
			}

			rec := surface.NewRecorder(48, 48)
			f := sketchbook.Frame{Time: time.Unix(0, 0), Width: 48, Height: 48}
			if err := sk.Render(rec, f); err != nil {
				t.Fatalf("Render() = %v", err)
			}
			if len(rec.Ops) == 0 {
				t.Error("Render() drew nothing")
			}
		})
	}
}

func TestNewPassesParams(t *testing.T) {
	sk, err := New("grid", sketchbook.WithParams(map[string]float64{"rows": 4}))
	if err != nil {
		t.Fatal(err)
	}
	if got := sk.Params().Int("rows"); got != 4 {
		t.Errorf("rows = %d, want 4", got)
	}

	_, err = New("radial", sketchbook.WithParams(map[string]float64{"rows": 4}))
	if !errors.Is(err, sketchbook.ErrUnknownParam) {
		t.Errorf("New(radial, rows) = %v, want ErrUnknownParam", err)
	}
}
