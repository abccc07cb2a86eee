// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package export writes rendered frames to disk.
//
// The writers are frame sinks for player.Run:
//
//	r := surface.NewRaster(w, h)
//	seq := export.NewPNGSequence(r, "out", "grid")
//	err := player.New(sk, r, player.WithClock(sketchbook.NewFPSClock(30))).
//		Run(ctx, 120, seq.Write)
//
// PNGSequence and APNG read pixels from a raster surface. SVGFrames is
// itself the surface: it starts a new document for every frame.
package export
