// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Surface is a canvas-like drawing target.
//
// Surfaces are not safe for concurrent use. Each surface is driven by a
// single frame loop.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Save pushes the transform, line width and colours.
	Save()

	// Restore pops the state pushed by the matching Save. Unbalanced calls
	// are ignored.
	Restore()

	// Translate moves the origin.
	Translate(x, y float64)

	// Rotate rotates the coordinate system clockwise by angle radians
	// (y points down).
	Rotate(angle float64)

	// SetLineWidth sets the stroke width in user units.
	SetLineWidth(w float64)

	// SetFillColor sets the colour used by Fill and FillRect.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the colour used by Stroke.
	SetStrokeColor(c color.Color)

	// FillRect paints a rectangle immediately and resets the current path.
	FillRect(x, y, w, h float64) error

	// BeginPath discards the current path.
	BeginPath()

	// Rect adds a closed rectangle subpath.
	Rect(x, y, w, h float64)

	// Arc adds a circular arc from angle a0 to a1 (radians), sweeping in the
	// direction of increasing angle. If the path has a current point a line
	// joins it to the arc start.
	Arc(cx, cy, r, a0, a1 float64)

	// Fill fills the current path and clears it.
	Fill() error

	// Stroke strokes the current path and clears it.
	Stroke() error

	// DrawImage paints img with its top-left corner at (x, y) in user space.
	DrawImage(img image.Image, x, y float64) error

	// Close releases resources. Close is idempotent.
	Close() error
}

// Resizable is implemented by surfaces whose dimensions can change while a
// sketch is running.
type Resizable interface {
	Surface

	// Resize changes the surface dimensions. Content is discarded.
	Resize(width, height int) error
}

// Snapshotter is implemented by surfaces that hold pixels.
type Snapshotter interface {
	// Image returns a copy of the current pixels.
	Image() image.Image
}
