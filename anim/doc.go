// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim holds the small building blocks shared by the canvas
// sketches: a wall-clock animation timer, an index-addressed shape store
// and the random helpers used for per-frame trials.
package anim
