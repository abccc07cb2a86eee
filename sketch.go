// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import (
	"time"

	"github.com/gogpu/sketchbook/surface"
)

// Frame describes one invocation of a sketch's draw callback.
type Frame struct {
	// Index counts frames from zero.
	Index int

	// Time is the frame timestamp. Animations derive their progress from it,
	// so playback speed does not depend on frame rate.
	Time time.Time

	// Elapsed is the time since the first frame.
	Elapsed time.Duration

	// Width and Height are the current surface dimensions.
	Width  int
	Height int
}

// Seconds returns the elapsed time in seconds, the value shaders receive as
// their time uniform.
func (f Frame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Sketch is a self-contained animated drawing.
//
// Implementations are not safe for concurrent use: a sketch is owned by the
// frame driver that renders it.
type Sketch interface {
	// Name returns the registry name of the sketch.
	Name() string

	// Size returns the preferred canvas dimensions.
	Size() (width, height int)

	// Params returns the live parameter set. Edits take effect on the next
	// frame.
	Params() *Params

	// Render draws one frame onto s.
	Render(s surface.Surface, f Frame) error
}
