// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import "errors"

var (
	// ErrUnknownParam is returned when a parameter name is not defined by
	// the sketch.
	ErrUnknownParam = errors.New("sketchbook: unknown parameter")

	// ErrUnknownSketch is returned when a sketch name is not registered.
	ErrUnknownSketch = errors.New("sketchbook: unknown sketch")

	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("sketchbook: invalid canvas size")
)
