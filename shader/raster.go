// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/gogpu/sketchbook"
	"golang.org/x/sync/errgroup"
)

// Rasterize evaluates p for every pixel of a w×h image at the given time.
// Rows are shaded in parallel, at most GOMAXPROCS at a time. Pixel centres
// are sampled and uv.y grows upwards.
func Rasterize(ctx context.Context, p *Program, w, h int, time float32) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shader: %w: %dx%d", sketchbook.ErrInvalidSize, w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	fw, fh := float32(w), float32(h)
	for y := range h {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v := 1 - (float32(y)+0.5)/fh
			row := img.Pix[y*img.Stride : y*img.Stride+w*4]
			for x := range w {
				c := p.Shade(Vec2{(float32(x) + 0.5) / fw, v}, time).RGBA()
				row[x*4+0] = c.R
				row[x*4+1] = c.G
				row[x*4+2] = c.B
				row[x*4+3] = c.A
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
