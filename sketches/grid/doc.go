// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package grid implements a grid of outlined boxes. Each box randomly starts
// an inset animation: a second outline that shrinks towards the box centre
// over animationLength seconds.
package grid
