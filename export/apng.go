// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
	"github.com/setanarut/apng"
	"golang.org/x/image/draw"
)

// APNGFPS is the playback rate of exported animations. Frame delays are
// stored in hundredths of a second.
const (
	APNGFPS   = 25
	apngDelay = 100 / APNGFPS
)

// ErrNoFrames is returned when an animation is closed before any frame was
// captured.
var ErrNoFrames = errors.New("export: no frames captured")

// APNG collects frames of a raster surface into one animated PNG, written
// on Close. Drive it with a sketchbook.NewFPSClock(APNGFPS) clock so the
// animation plays at the rendered speed.
type APNG struct {
	src  *surface.Raster
	path string

	// Label, when set, stamps each frame before it is captured.
	Label func(sketchbook.Frame) string

	frames []image.Image
}

// NewAPNG captures frames of src for the file at path.
func NewAPNG(src *surface.Raster, path string) *APNG {
	return &APNG{src: src, path: path}
}

// Write captures the current contents of the surface.
func (a *APNG) Write(f sketchbook.Frame) error {
	if a.Label != nil {
		if err := Label(a.src, a.Label(f)); err != nil {
			return err
		}
	}
	src := a.src.Image()
	frame := image.NewRGBA(src.Bounds())
	draw.Copy(frame, frame.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	a.frames = append(a.frames, frame)
	return nil
}

// Frames returns the number of captured frames.
func (a *APNG) Frames() int { return len(a.frames) }

// Close encodes the animation.
func (a *APNG) Close() error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	if dir := filepath.Dir(a.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	// apng.Save reports no error, so only a fresh file counts as written.
	if err := os.Remove(a.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("export: apng %s: %w", a.path, err)
	}
	apng.Save(a.path, a.frames, apngDelay)
	if _, err := os.Stat(a.path); err != nil {
		return fmt.Errorf("export: apng %s: %w", a.path, err)
	}
	sketchbook.Logger().Info("animation written", "path", a.path, "frames", len(a.frames))
	a.frames = nil
	return nil
}
