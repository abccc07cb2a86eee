// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/anim"
	"github.com/gogpu/sketchbook/surface"
)

// Name is the registry name of the sketch.
const Name = "grid"

// Sketch draws the box grid.
type Sketch struct {
	params *sketchbook.Params
	rand   *rand.Rand
	boxes  anim.Arena[Box]
}

var _ sketchbook.Sketch = (*Sketch)(nil)

// New creates the grid sketch.
func New(opts ...sketchbook.Option) (*Sketch, error) {
	o := sketchbook.ResolveOptions(opts...)
	params := DefaultParams()
	if err := params.Apply(o.Params); err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	return &Sketch{params: params, rand: o.Rand}, nil
}

func (g *Sketch) Name() string               { return Name }
func (g *Sketch) Size() (int, int)           { return 2048, 2048 }
func (g *Sketch) Params() *sketchbook.Params { return g.params }

// Box returns the box stored in slot i, or nil if the slot was never laid
// out.
func (g *Sketch) Box(i int) *Box { return g.boxes.At(i) }

// Allocated returns the number of boxes created so far.
func (g *Sketch) Allocated() int { return g.boxes.Populated() }

// Render paints the background and draws every cell of the current layout.
func (g *Sketch) Render(s surface.Surface, f sketchbook.Frame) error {
	p := g.params
	w, h := float64(f.Width), float64(f.Height)

	s.SetLineWidth(p.Float(ParamLineWidth))
	s.SetFillColor(color.White)
	if err := s.FillRect(0, 0, w, h); err != nil {
		return err
	}
	s.SetStrokeColor(color.Black)

	l := ComputeLayout(w, h, p.Int(ParamRows), p.Int(ParamCols), p.Float(ParamMargin), p.Float(ParamGap))
	env := Env{
		Now:        f.Time,
		Duration:   anim.Seconds(p.Float(ParamAnimationLength)),
		Inset:      p.Float(ParamInset),
		Randomness: p.Float(ParamInsetBoxRandomness),
		Rand:       g.rand,
	}

	before := g.boxes.Len()
	for row := range l.Rows {
		for col := range l.Cols {
			left, top := l.Cell(row, col)
			box, _ := g.boxes.Get(l.Index(row, col),
				func() *Box { return NewBox(left, top, l.CellW, l.CellH) },
				func(b *Box) {
					b.Reposition(left, top)
					b.Resize(l.CellW, l.CellH)
				})
			if err := box.Draw(s, env); err != nil {
				return fmt.Errorf("grid: draw box %d,%d: %w", row, col, err)
			}
		}
	}
	if n := g.boxes.Len(); n > before {
		sketchbook.Logger().Debug("grid: box store grew", "from", before, "to", n)
	}
	return nil
}
