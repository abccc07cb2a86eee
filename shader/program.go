// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/sketchbook"
)

// RGB is a linear colour as produced by a fragment shader. Components are
// not clamped.
type RGB struct{ R, G, B float32 }

// Gray returns an RGB with all components set to v.
func Gray(v float32) RGB { return RGB{v, v, v} }

// RGBA converts to an opaque 8-bit colour, clamping each component to [0, 1].
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: unorm8(c.R), G: unorm8(c.G), B: unorm8(c.B), A: 255}
}

func unorm8(v float32) uint8 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Uniforms mirrors the WGSL uniform block shared by every program.
type Uniforms struct {
	Time       float32
	Resolution Vec2
}

// UniformSize is the size of the uniform block in bytes. The resolution
// vector is 8-byte aligned, so the time field is followed by 4 bytes of
// padding.
const UniformSize = 16

// Bytes returns the uniform block in the layout the WGSL expects.
func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(u.Time))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(u.Resolution.X))
	binary.LittleEndian.PutUint32(b[12:], math.Float32bits(u.Resolution.Y))
	return b
}

// ShadeFunc evaluates a fragment at uv in [0,1]², origin bottom-left.
type ShadeFunc func(uv Vec2, time float32) RGB

// Program is a fragment shader scene.
type Program struct {
	Name   string
	Width  int
	Height int

	// Source is the WGSL module with vs_main and fs_main entry points.
	Source string

	// Shade is the CPU evaluator of fs_main.
	Shade ShadeFunc
}

// Uniforms returns the uniform values for a frame: seconds since the first
// frame and the frame size.
func (p *Program) Uniforms(f sketchbook.Frame) Uniforms {
	return Uniforms{
		Time:       float32(f.Seconds()),
		Resolution: Vec2{float32(f.Width), float32(f.Height)},
	}
}

// Programs returns every scene in a fixed order.
func Programs() []*Program {
	return []*Program{Iris(), Depth(), Lit()}
}

// Lookup returns the named scene.
func Lookup(name string) (*Program, bool) {
	for _, p := range Programs() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
