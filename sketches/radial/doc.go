// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package radial implements a clock face: a ring of ticks that randomly fire
// and fall towards the centre, and a set of arcs rotating at constant
// speeds.
//
// Frames are painted over a translucent white background, so moving marks
// leave fading trails.
package radial
