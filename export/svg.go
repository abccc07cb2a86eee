// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/surface"
)

// SVGFrames is a surface that records each frame as a separate SVG
// document. Render onto it and call Write after every frame.
type SVGFrames struct {
	*surface.SVG

	dir    string
	prefix string
	width  int
	height int
	buf    bytes.Buffer

	written int
}

var _ surface.Resizable = (*SVGFrames)(nil)

// NewSVGFrames creates the surface. Files go to dir/prefix-00000.svg.
func NewSVGFrames(dir, prefix string, width, height int) *SVGFrames {
	s := &SVGFrames{dir: dir, prefix: prefix, width: width, height: height}
	s.begin()
	return s
}

func (s *SVGFrames) begin() {
	s.buf.Reset()
	s.SVG = surface.NewSVG(&s.buf, s.width, s.height)
}

// Write finishes the current document, saves it as frame f and starts the
// next one.
func (s *SVGFrames) Write(f sketchbook.Frame) error {
	if err := s.SVG.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(s.dir, FrameName(s.prefix, f.Index, "svg"))
	if err := os.WriteFile(path, s.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.written++
	s.begin()
	return nil
}

// Written returns the number of files saved.
func (s *SVGFrames) Written() int { return s.written }

// Resize changes the size of the next document. The current one is
// discarded.
func (s *SVGFrames) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return surface.ErrInvalidSize
	}
	s.width, s.height = width, height
	s.begin()
	return nil
}

// Close drops the unfinished document.
func (s *SVGFrames) Close() error {
	s.buf.Reset()
	return nil
}
