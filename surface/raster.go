// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// style is the part of the canvas state saved by Save. gg's own Push/Pop
// only covers the transform, so colours and line width are tracked here.
type style struct {
	lineWidth float64
	fill      color.Color
	stroke    color.Color
}

func defaultStyle() style {
	return style{lineWidth: 1, fill: color.Black, stroke: color.Black}
}

// Raster renders onto a gg software context.
type Raster struct {
	dc       *gg.Context
	state    style
	stack    []style
	hasPoint bool
}

var (
	_ Resizable   = (*Raster)(nil)
	_ Snapshotter = (*Raster)(nil)
)

// NewRaster creates a raster surface of the given size.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		dc:    gg.NewContext(width, height),
		state: defaultStyle(),
		stack: make([]style, 0, 8),
	}
	r.dc.SetLineWidth(r.state.lineWidth)
	return r
}

// Context exposes the underlying gg context, for text overlays and direct
// encoding.
func (r *Raster) Context() *gg.Context { return r.dc }

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Save() {
	r.dc.Push()
	r.stack = append(r.stack, r.state)
}

func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.dc.Pop()
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.dc.SetLineWidth(r.state.lineWidth)
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.dc.Rotate(angle) }

func (r *Raster) SetLineWidth(w float64) {
	r.state.lineWidth = w
	r.dc.SetLineWidth(w)
}

func (r *Raster) SetFillColor(c color.Color)   { r.state.fill = c }
func (r *Raster) SetStrokeColor(c color.Color) { r.state.stroke = c }

func (r *Raster) FillRect(x, y, w, h float64) error {
	r.BeginPath()
	r.dc.DrawRectangle(x, y, w, h)
	return r.Fill()
}

func (r *Raster) BeginPath() {
	r.dc.ClearPath()
	r.hasPoint = false
}

func (r *Raster) Rect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.hasPoint = true
}

// Arc emits transformed cubic segments through the context so that the
// current rotation applies to the arc angles as well as its centre.
func (r *Raster) Arc(cx, cy, radius, a0, a1 float64) {
	sx, sy, segs := arcCubics(cx, cy, radius, a0, a1)
	if r.hasPoint {
		r.dc.LineTo(sx, sy)
	} else {
		r.dc.MoveTo(sx, sy)
	}
	for _, s := range segs {
		r.dc.CubicTo(s.C1x, s.C1y, s.C2x, s.C2y, s.X, s.Y)
	}
	r.hasPoint = true
}

func (r *Raster) Fill() error {
	r.dc.SetColor(r.state.fill)
	r.hasPoint = false
	return r.dc.Fill()
}

func (r *Raster) Stroke() error {
	r.dc.SetColor(r.state.stroke)
	r.dc.SetLineWidth(r.state.lineWidth)
	r.hasPoint = false
	return r.dc.Stroke()
}

func (r *Raster) DrawImage(img image.Image, x, y float64) error {
	r.dc.DrawImage(gg.ImageBufFromImage(img), x, y)
	return nil
}

// Resize reallocates the pixel buffer. The transform and saved state are
// kept, matching gg's Resize.
func (r *Raster) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	r.hasPoint = false
	return r.dc.Resize(width, height)
}

// Image returns a copy of the current pixels.
func (r *Raster) Image() image.Image {
	_ = r.dc.FlushGPU()
	return r.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// SavePNG writes the current pixels to a PNG file.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

func (r *Raster) Close() error { return r.dc.Close() }
