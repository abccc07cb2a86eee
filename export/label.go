// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelSize is the font size of frame labels in pixels.
const LabelSize = 24

var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// FrameLabel formats the default label: the sketch name and frame index.
func FrameLabel(name string) func(sketchbook.Frame) string {
	return func(f sketchbook.Frame) string {
		return fmt.Sprintf("%s #%d", name, f.Index)
	}
}

// Label stamps s onto the top-left corner of the raster surface, black on
// a white plate.
func Label(r *surface.Raster, s string) error {
	src, err := labelFont()
	if err != nil {
		return fmt.Errorf("export: label font: %w", err)
	}

	dc := r.Context()
	dc.Push()
	defer dc.Pop()
	dc.Identity()
	dc.SetFont(src.Face(LabelSize))

	pad := LabelSize / 3.0
	w, h := dc.MeasureString(s)
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, w+2*pad, h+2*pad)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("export: label plate: %w", err)
	}

	dc.SetColor(color.Black)
	dc.DrawString(s, pad, pad+h*0.8)
	return nil
}
