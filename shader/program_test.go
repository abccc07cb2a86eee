// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"encoding/binary"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/gogpu/sketchbook"
)

func TestRGBAClamps(t *testing.T) {
	tests := []struct {
		in   RGB
		want color.RGBA
	}{
		{RGB{0, 0.5, 1}, color.RGBA{0, 128, 255, 255}},
		{RGB{-1, 2, float32(math.NaN())}, color.RGBA{0, 255, 0, 255}},
		{Gray(0.2), color.RGBA{51, 51, 51, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.RGBA(); got != tt.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUniformsLayout(t *testing.T) {
	p := Lit()
	u := p.Uniforms(sketchbook.Frame{Elapsed: 1500 * time.Millisecond, Width: 640, Height: 480})
	if u.Time != 1.5 {
		t.Errorf("Time = %v, want 1.5", u.Time)
	}

	b := u.Bytes()
	if len(b) != UniformSize {
		t.Fatalf("len = %d, want %d", len(b), UniformSize)
	}
	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }
	if f(0) != 1.5 || f(8) != 640 || f(12) != 480 {
		t.Errorf("block = [%v _ %v %v], want [1.5 _ 640 480]", f(0), f(8), f(12))
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"iris", "depth", "lit"} {
		p, ok := Lookup(name)
		if !ok || p.Name != name {
			t.Errorf("Lookup(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := Lookup("plasma"); ok {
		t.Error("Lookup(plasma) found a program")
	}
}

func TestShadeFinite(t *testing.T) {
	for _, p := range Programs() {
		t.Run(p.Name, func(t *testing.T) {
			for _, tm := range []float32{0, 1.3, 40} {
				for y := range 12 {
					for x := range 12 {
						uv := Vec2{(float32(x) + 0.5) / 12, (float32(y) + 0.5) / 12}
						c := p.Shade(uv, tm)
						for _, v := range []float32{c.R, c.G, c.B} {
							if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
								t.Fatalf("Shade(%v, %v) = %+v", uv, tm, c)
							}
						}
					}
				}
			}
		})
	}
}

func TestIrisOutsideIsBlack(t *testing.T) {
	for _, uv := range []Vec2{{0.01, 0.01}, {0.99, 0.5}, {0.5, 0.02}} {
		if c := shadeIris(uv, 0); c != (RGB{}) {
			t.Errorf("shadeIris(%v) = %+v, want black", uv, c)
		}
	}
	if c := shadeIris(Vec2{0.65, 0.5}, 0); c == (RGB{}) {
		t.Error("iris ring pixel is black")
	}
}

func TestDepthFloorAndSky(t *testing.T) {
	// Looking down 45° from y=1 hits the floor after √2.
	floor := shadeDepth(Vec2{0.5, 0}, 0)
	if floor.R < 0.2 || floor.R > 0.25 {
		t.Errorf("floor depth = %v, want about √2/6", floor.R)
	}
	// Looking up the ray escapes past the march limit.
	sky := shadeDepth(Vec2{0.5, 1}, 0)
	if sky.R < 1 {
		t.Errorf("sky depth = %v, want saturated", sky.R)
	}
}

func TestLitDiffuseRange(t *testing.T) {
	for y := range 8 {
		for x := range 8 {
			c := shadeLit(Vec2{(float32(x) + 0.5) / 8, (float32(y) + 0.5) / 8}, 0.7)
			if c.R < 0 || c.R > 1 {
				t.Fatalf("diffuse = %v, want [0, 1]", c.R)
			}
		}
	}
}

func TestLightOrbits(t *testing.T) {
	centre := Vec3{0, 5, 6}
	for _, tm := range []float32{0, 1, 2.5, 6} {
		lp := LightPosition(tm)
		if lp.Y != 5 {
			t.Errorf("LightPosition(%v).Y = %v, want 5", tm, lp.Y)
		}
		if r := lp.Sub(centre).Len(); math.Abs(float64(r-1)) > 1e-5 {
			t.Errorf("orbit radius at %v = %v, want 1", tm, r)
		}
	}
}
