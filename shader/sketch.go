// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
	"golang.org/x/image/draw"
)

// Parameter names.
const (
	ParamSpeed      = "speed"
	ParamResolution = "resolution"
)

// Sketch renders a Program on the CPU and draws the result onto the
// surface.
type Sketch struct {
	program *Program
	params  *sketchbook.Params
}

var _ sketchbook.Sketch = (*Sketch)(nil)

// NewSketch wraps p. The speed parameter scales the time uniform; the
// resolution parameter shades a smaller image and scales it up to the frame.
func NewSketch(p *Program, opts ...sketchbook.Option) (*Sketch, error) {
	o := sketchbook.ResolveOptions(opts...)
	params := sketchbook.NewParams(
		sketchbook.Float("Shader", ParamSpeed, 1, 0, 4),
		sketchbook.Float("Shader", ParamResolution, 1, 0.25, 1),
	)
	if err := params.Apply(o.Params); err != nil {
		return nil, fmt.Errorf("shader %s: %w", p.Name, err)
	}
	return &Sketch{program: p, params: params}, nil
}

func (s *Sketch) Name() string               { return s.program.Name }
func (s *Sketch) Size() (int, int)           { return s.program.Width, s.program.Height }
func (s *Sketch) Params() *sketchbook.Params { return s.params }

// Program returns the wrapped program.
func (s *Sketch) Program() *Program { return s.program }

// Render shades the frame and draws it at the origin.
func (s *Sketch) Render(dst surface.Surface, f sketchbook.Frame) error {
	res := s.params.Float(ParamResolution)
	w := max(1, int(math.Round(float64(f.Width)*res)))
	h := max(1, int(math.Round(float64(f.Height)*res)))
	t := s.program.Uniforms(f).Time * float32(s.params.Float(ParamSpeed))

	img, err := Rasterize(context.Background(), s.program, w, h, t)
	if err != nil {
		return fmt.Errorf("shader %s: %w", s.program.Name, err)
	}

	var out image.Image = img
	if w != f.Width || h != f.Height {
		scaled := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = scaled
	}
	return dst.DrawImage(out, 0, 0)
}
