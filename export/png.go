// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
)

// FrameName returns the file name of frame index: prefix-00042.ext.
func FrameName(prefix string, index int, ext string) string {
	return fmt.Sprintf("%s-%05d.%s", prefix, index, ext)
}

// PNGSequence saves every frame of a raster surface as a numbered PNG.
type PNGSequence struct {
	src    *surface.Raster
	dir    string
	prefix string

	// Label, when set, stamps each frame before it is saved.
	Label func(sketchbook.Frame) string

	written int
}

// NewPNGSequence writes frames of src into dir.
func NewPNGSequence(src *surface.Raster, dir, prefix string) *PNGSequence {
	return &PNGSequence{src: src, dir: dir, prefix: prefix}
}

// Write saves the current contents of the surface as frame f.
func (s *PNGSequence) Write(f sketchbook.Frame) error {
	if s.Label != nil {
		if err := Label(s.src, s.Label(f)); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(s.dir, FrameName(s.prefix, f.Index, "png"))
	if err := s.src.SavePNG(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	s.written++
	return nil
}

// Written returns the number of files saved.
func (s *PNGSequence) Written() int { return s.written }
