// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the 2D drawing contract the canvas sketches render
// onto, with interchangeable backends.
//
// The contract follows the HTML canvas model: a current path built with
// BeginPath, Rect and Arc, consumed by Fill or Stroke, an affine transform
// changed by Translate and Rotate, and Save/Restore scoping the transform,
// line width and colours together.
//
// # Backends
//
//   - Raster: software rendering with gg, PNG output, resizable
//   - SVG: vector output written with svgo, one document per frame
//   - Recorder: in-memory operation log for tests
//
// Backends are also reachable by name through the registry:
//
//	s, err := surface.NewByName("svg", surface.Options{Width: 512, Height: 512, Writer: w})
package surface
