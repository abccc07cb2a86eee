// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sketchbook provides the shared contracts for a small collection of
// animated generative-art sketches rendered with gg.
//
// # Overview
//
// A sketch is a parametric draw function. A frame driver (see package player)
// calls [Sketch.Render] once per frame with a drawing surface and a [Frame]
// describing the current time and canvas size. Sketches keep their own shape
// state between frames and read their [Params] on every frame, so parameters
// can be edited live.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketchbook/player"
//	    "github.com/gogpu/sketchbook/sketches"
//	    "github.com/gogpu/sketchbook/surface"
//	)
//
//	sk, _ := sketches.New("grid")
//	w, h := sk.Size()
//	s := surface.NewRaster(w, h)
//	p := player.New(sk, s)
//	frame, _ := p.Step(ctx)
//
// # Families
//
// Canvas sketches (grid, radial) draw shapes with paths, strokes and fills.
// Shader sketches (iris, depth, lit) carry WGSL sources compiled with naga
// and a float32 CPU evaluator that produces the same image off-GPU.
//
// # Coordinate System
//
// Canvas conventions: origin at top-left, X right, Y down, angles in
// radians unless a parameter says degrees.
package sketchbook
