// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package radial

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/anim"
	"github.com/gogpu/sketchbook/surface"
)

// Name is the registry name of the sketch.
const Name = "radial"

var (
	trailColor = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	tickColor  = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	arcColor   = color.Black
)

// Sketch draws the ticks and arcs.
type Sketch struct {
	params       *sketchbook.Params
	rand         *rand.Rand
	legacyLength bool

	ticks anim.Arena[Tick]
	arcs  anim.Arena[Arc]
}

var _ sketchbook.Sketch = (*Sketch)(nil)

// New creates the radial sketch.
func New(opts ...sketchbook.Option) (*Sketch, error) {
	o := sketchbook.ResolveOptions(opts...)
	params := DefaultParams()
	if err := params.Apply(o.Params); err != nil {
		return nil, fmt.Errorf("radial: %w", err)
	}
	return &Sketch{
		params:       params,
		rand:         o.Rand,
		legacyLength: o.Quirk(CompatArcLengthProduct),
	}, nil
}

func (r *Sketch) Name() string               { return Name }
func (r *Sketch) Size() (int, int)           { return 2048, 2048 }
func (r *Sketch) Params() *sketchbook.Params { return r.params }

// Tick returns tick i, or nil if it was never laid out.
func (r *Sketch) Tick(i int) *Tick { return r.ticks.At(i) }

// Arc returns arc i, or nil if it was never drawn.
func (r *Sketch) Arc(i int) *Arc { return r.arcs.At(i) }

// Render paints the trail background, then the ticks and the arcs around
// the canvas centre.
func (r *Sketch) Render(s surface.Surface, f sketchbook.Frame) error {
	p := r.params
	w, h := float64(f.Width), float64(f.Height)

	s.SetFillColor(trailColor)
	if err := s.FillRect(0, 0, w, h); err != nil {
		return err
	}

	duration := anim.Seconds(p.Float(ParamAnimationLength))
	if err := r.drawTicks(s, f, w, h); err != nil {
		return err
	}

	s.Save()
	defer s.Restore()
	s.Translate(w/2, h/2)
	s.SetStrokeColor(arcColor)

	env := ArcEnv{Now: f.Time, Duration: duration, Width: p.Float(ParamArcWidth)}
	for i := range p.Int(ParamArcCount) {
		arc, created := r.arcs.Get(i, func() *Arc {
			return NewArc(r.rand, p.Float(ParamTickRadius), p.Float(ParamArcMinLength), p.Float(ParamArcMaxLength), r.legacyLength)
		}, nil)
		if created {
			sketchbook.Logger().Debug("radial: arc sampled", "index", i, "radius", arc.Radius, "length", arc.Length)
		}
		if err := arc.Draw(s, env); err != nil {
			return fmt.Errorf("radial: draw arc %d: %w", i, err)
		}
	}
	return nil
}

func (r *Sketch) drawTicks(s surface.Surface, f sketchbook.Frame, w, h float64) error {
	p := r.params
	count := p.Int(ParamTickCount)
	if count <= 0 {
		return nil
	}

	s.Save()
	defer s.Restore()
	s.Translate(w/2, h/2)
	s.SetFillColor(tickColor)

	tw := w * p.Float(ParamTickWidth)
	tl := h * p.Float(ParamTickLength)
	slice := 2 * math.Pi / float64(count)
	env := TickEnv{
		Now:      f.Time,
		Duration: anim.Seconds(p.Float(ParamAnimationLength)),
		Radius:   p.Float(ParamTickRadius),
		Chance:   p.Float(ParamTickChance) / float64(count),
		Override: p.Bool(ParamWithAnimationOverride),
		Rand:     r.rand,
	}

	for i := range count {
		angle := slice * float64(i)
		tick, _ := r.ticks.Get(i,
			func() *Tick { return NewTick(tw, tl, angle) },
			func(t *Tick) { t.Update(tw, tl, angle) })
		if err := tick.Draw(s, env); err != nil {
			return fmt.Errorf("radial: draw tick %d: %w", i, err)
		}
	}
	return nil
}
