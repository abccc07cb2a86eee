// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

import "github.com/gogpu/sketchbook"

// Parameter names.
const (
	ParamRows               = "rows"
	ParamCols               = "cols"
	ParamMargin             = "margin"
	ParamGap                = "gap"
	ParamInset              = "inset"
	ParamInsetBoxRandomness = "insetBoxRandomness"
	ParamLineWidth          = "lineWidth"
	ParamAnimationLength    = "animationLength"
)

// DefaultParams returns the grid parameters with their panel ranges.
func DefaultParams() *sketchbook.Params {
	const folder = "Sketch"
	return sketchbook.NewParams(
		sketchbook.Float(folder, ParamLineWidth, 2, 0.1, 20),
		sketchbook.Int(folder, ParamRows, 10, 2, 20),
		sketchbook.Int(folder, ParamCols, 10, 2, 20),
		sketchbook.Float(folder, ParamMargin, 0.1, 0.01, 0.9),
		sketchbook.Float(folder, ParamGap, 0.01, 0.01, 0.9),
		sketchbook.Float(folder, ParamInset, 0.2, 0.01, 0.9),
		sketchbook.Float(folder, ParamInsetBoxRandomness, 0, 0, 1),
		sketchbook.Float(folder, ParamAnimationLength, 2, 0, 10),
	)
}
