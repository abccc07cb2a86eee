// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

type svgState struct {
	style
	m gg.Matrix
}

// SVG writes drawing operations as an SVG document. Coordinates are
// transformed on the way out so every path is written in absolute canvas
// space.
//
// The document is opened by NewSVG and closed by Close.
type SVG struct {
	canvas *svg.SVG
	width  int
	height int

	state svgState
	stack []svgState

	path     strings.Builder
	hasPoint bool
	closed   bool
}

// NewSVG starts an SVG document of the given size on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{
		canvas: svg.New(w),
		width:  width,
		height: height,
		state:  svgState{style: defaultStyle(), m: gg.Identity()},
	}
	s.canvas.Start(width, height)
	return s
}

func (s *SVG) Width() int  { return s.width }
func (s *SVG) Height() int { return s.height }

func (s *SVG) Save() { s.stack = append(s.stack, s.state) }

func (s *SVG) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *SVG) Translate(x, y float64) {
	s.state.m = s.state.m.Multiply(gg.Translate(x, y))
}

func (s *SVG) Rotate(angle float64) {
	s.state.m = s.state.m.Multiply(gg.Rotate(angle))
}

func (s *SVG) SetLineWidth(w float64)       { s.state.lineWidth = w }
func (s *SVG) SetFillColor(c color.Color)   { s.state.fill = c }
func (s *SVG) SetStrokeColor(c color.Color) { s.state.stroke = c }

func (s *SVG) FillRect(x, y, w, h float64) error {
	s.BeginPath()
	s.Rect(x, y, w, h)
	return s.Fill()
}

func (s *SVG) BeginPath() {
	s.path.Reset()
	s.hasPoint = false
}

func (s *SVG) point(cmd byte, x, y float64) {
	p := s.state.m.TransformPoint(gg.Pt(x, y))
	if s.path.Len() > 0 {
		s.path.WriteByte(' ')
	}
	if cmd != 0 {
		s.path.WriteByte(cmd)
	}
	s.path.WriteString(num(p.X))
	s.path.WriteByte(',')
	s.path.WriteString(num(p.Y))
}

func (s *SVG) Rect(x, y, w, h float64) {
	s.point('M', x, y)
	s.point('L', x+w, y)
	s.point('L', x+w, y+h)
	s.point('L', x, y+h)
	s.path.WriteString(" Z")
	s.hasPoint = true
}

func (s *SVG) Arc(cx, cy, r, a0, a1 float64) {
	sx, sy, segs := arcCubics(cx, cy, r, a0, a1)
	if s.hasPoint {
		s.point('L', sx, sy)
	} else {
		s.point('M', sx, sy)
	}
	for _, c := range segs {
		s.point('C', c.C1x, c.C1y)
		s.point(0, c.C2x, c.C2y)
		s.point(0, c.X, c.Y)
	}
	s.hasPoint = true
}

func (s *SVG) Fill() error {
	if s.path.Len() > 0 {
		s.canvas.Path(s.path.String(), "fill:"+paint(s.state.fill)+";stroke:none")
	}
	s.BeginPath()
	return nil
}

func (s *SVG) Stroke() error {
	if s.path.Len() > 0 {
		s.canvas.Path(s.path.String(),
			"fill:none;stroke:"+paint(s.state.stroke)+";stroke-width:"+num(s.state.lineWidth))
	}
	s.BeginPath()
	return nil
}

// DrawImage embeds img as a base64 PNG data URI.
func (s *SVG) DrawImage(img image.Image, x, y float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("svg: encode image: %w", err)
	}
	m := s.state.m.Multiply(gg.Translate(x, y))
	s.canvas.Gtransform(fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F)))
	b := img.Bounds()
	s.canvas.Image(0, 0, b.Dx(), b.Dy(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(buf.Bytes()))
	s.canvas.Gend()
	return nil
}

// Close ends the SVG document.
func (s *SVG) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.canvas.End()
	return nil
}

// paint formats c as an SVG colour with an optional opacity suffix.
func paint(c color.Color) string {
	if c == nil {
		return "none"
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	cf, _ := colorful.MakeColor(c)
	if a == 0xffff {
		return cf.Hex()
	}
	return cf.Hex() + ";opacity:" + num(float64(a)/0xffff)
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
