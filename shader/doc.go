// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader holds the fragment shader sketches.
//
// Each Program pairs a WGSL source, compiled to SPIR-V with naga for GPU
// hosts, with a float32 CPU evaluator of the same scene. The CPU path is
// what the raster and SVG surfaces use:
//
//	img, err := shader.Rasterize(ctx, shader.Lit(), 512, 512, 1.5)
//
// Scenes:
//   - iris: an eye drawn from layered value noise
//   - depth: ray-marched distance to a sphere resting on a plane
//   - lit: diffuse lighting and hard shadows over five primitives, with the
//     light orbiting over time
package shader
