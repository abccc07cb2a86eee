// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package radial

import "github.com/gogpu/sketchbook"

// Parameter names.
const (
	ParamAnimationLength       = "animationLength"
	ParamWithAnimationOverride = "withAnimationOverride"
	ParamTickCount             = "tickCount"
	ParamTickRadius            = "tickRadius"
	ParamTickLength            = "tickLength"
	ParamTickWidth             = "tickWidth"
	ParamTickChance            = "tickChance"
	ParamArcCount              = "arcCount"
	ParamArcMinLength          = "arcMinLength"
	ParamArcMaxLength          = "arcMaxLength"
	ParamArcWidth              = "arcWidth"
)

// CompatArcLengthProduct samples arc lengths from [0, arcMinLength*arcMaxLength)
// instead of [arcMinLength, arcMaxLength), reproducing the first rendition
// of this sketch. Enable it with sketchbook.WithCompat.
const CompatArcLengthProduct = "radial.arc-length-product"

// DefaultParams returns the radial parameters with their panel ranges.
func DefaultParams() *sketchbook.Params {
	return sketchbook.NewParams(
		sketchbook.Float("Sketch", ParamAnimationLength, 5, 0, 10),

		sketchbook.Bool("Tick", ParamWithAnimationOverride, true),
		sketchbook.Int("Tick", ParamTickCount, 81, 1, 100),
		sketchbook.Int("Tick", ParamTickRadius, 900, 1, 2048),
		sketchbook.Float("Tick", ParamTickLength, 0.2, 0, 1),
		sketchbook.Float("Tick", ParamTickWidth, 0.01, 0, 1),
		sketchbook.Float("Tick", ParamTickChance, 0.5, 0, 1),

		sketchbook.Int("Arc", ParamArcCount, 10, 0, 30),
		sketchbook.Float("Arc", ParamArcWidth, 5, 0, 100),
		sketchbook.Float("Arc", ParamArcMinLength, 30, 0, 360),
		sketchbook.Float("Arc", ParamArcMaxLength, 270, 0, 360),
	)
}
