// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// OpKind identifies a recorded operation.
type OpKind int

const (
	OpRect OpKind = iota
	OpArc
	OpFill
	OpStroke
	OpFillRect
	OpImage
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpArc:
		return "arc"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpFillRect:
		return "fillRect"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one recorded operation. Path elements (rect, arc) keep the user
// space arguments and the transform active when they were added. Paint
// operations carry the path they consumed.
type Op struct {
	Kind      OpKind
	Args      []float64
	Transform gg.Matrix
	LineWidth float64
	Color     color.Color
	Path      []Op
}

// Origin returns where the element's user-space point (Args[0], Args[1])
// lands on the canvas.
func (o Op) Origin() gg.Point {
	if len(o.Args) < 2 {
		return o.Transform.TransformPoint(gg.Pt(0, 0))
	}
	return o.Transform.TransformPoint(gg.Pt(o.Args[0], o.Args[1]))
}

// Recorder is a Surface that keeps an operation log instead of pixels.
type Recorder struct {
	width  int
	height int

	state svgState
	stack []svgState
	path  []Op

	Ops []Op
}

var _ Resizable = (*Recorder)(nil)

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		state:  svgState{style: defaultStyle(), m: gg.Identity()},
	}
}

// Reset drops the log, the pending path and any saved state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.path = nil
	r.stack = r.stack[:0]
	r.state = svgState{style: defaultStyle(), m: gg.Identity()}
}

// Painted returns the paint operations of the given kind.
func (r *Recorder) Painted(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save() { r.stack = append(r.stack, r.state) }

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.state.m = r.state.m.Multiply(gg.Translate(x, y))
}

func (r *Recorder) Rotate(angle float64) {
	r.state.m = r.state.m.Multiply(gg.Rotate(angle))
}

func (r *Recorder) SetLineWidth(w float64)       { r.state.lineWidth = w }
func (r *Recorder) SetFillColor(c color.Color)   { r.state.fill = c }
func (r *Recorder) SetStrokeColor(c color.Color) { r.state.stroke = c }

func (r *Recorder) FillRect(x, y, w, h float64) error {
	r.path = nil
	r.Ops = append(r.Ops, Op{
		Kind:      OpFillRect,
		Args:      []float64{x, y, w, h},
		Transform: r.state.m,
		Color:     r.state.fill,
	})
	return nil
}

func (r *Recorder) BeginPath() { r.path = nil }

func (r *Recorder) Rect(x, y, w, h float64) {
	r.path = append(r.path, Op{Kind: OpRect, Args: []float64{x, y, w, h}, Transform: r.state.m})
}

func (r *Recorder) Arc(cx, cy, radius, a0, a1 float64) {
	r.path = append(r.path, Op{Kind: OpArc, Args: []float64{cx, cy, radius, a0, a1}, Transform: r.state.m})
}

func (r *Recorder) Fill() error {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: r.state.fill, Path: r.path, Transform: r.state.m})
	r.path = nil
	return nil
}

func (r *Recorder) Stroke() error {
	r.Ops = append(r.Ops, Op{
		Kind:      OpStroke,
		Color:     r.state.stroke,
		LineWidth: r.state.lineWidth,
		Path:      r.path,
		Transform: r.state.m,
	})
	r.path = nil
	return nil
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) error {
	b := img.Bounds()
	r.Ops = append(r.Ops, Op{
		Kind:      OpImage,
		Args:      []float64{x, y, float64(b.Dx()), float64(b.Dy())},
		Transform: r.state.m,
	})
	return nil
}

func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	r.width, r.height = width, height
	return nil
}

func (r *Recorder) Close() error { return nil }
