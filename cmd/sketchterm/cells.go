// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/text/width"
)

// upperHalf draws the top pixel in the foreground colour and the bottom
// pixel in the background colour.
const upperHalf = '▀'

// cell is one terminal cell: two stacked pixels.
type cell struct {
	top, bottom color.Color
}

// downscale resizes src to cols × 2*rows pixels.
func downscale(src image.Image, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// cells splits a downscaled frame into half-block cells, row-major.
func cells(img *image.RGBA) []cell {
	b := img.Bounds()
	cols, rows := b.Dx(), b.Dy()/2
	out := make([]cell, 0, cols*rows)
	for y := range rows {
		for x := range cols {
			out = append(out, cell{
				top:    img.RGBAAt(b.Min.X+x, b.Min.Y+2*y),
				bottom: img.RGBAAt(b.Min.X+x, b.Min.Y+2*y+1),
			})
		}
	}
	return out
}

// termColor converts to a 24-bit terminal colour.
func termColor(c color.Color) tcell.Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c cell) style() tcell.Style {
	return tcell.StyleDefault.Foreground(termColor(c.top)).Background(termColor(c.bottom))
}

// runeWidth returns the number of cells r occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// drawText writes s on row y, clipped to cols cells.
func drawText(s tcell.Screen, y, cols int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		w := runeWidth(r)
		if x+w > cols {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
}
