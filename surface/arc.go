// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "math"

// cubic is one Bezier segment in user space. P0 is implied by the previous
// segment or by the arc start.
type cubic struct {
	C1x, C1y float64
	C2x, C2y float64
	X, Y     float64
}

// arcSweep normalizes a canvas arc (non-anticlockwise) to a sweep in
// [0, 2π]. A span of a full turn or more draws a full circle.
func arcSweep(a0, a1 float64) float64 {
	d := a1 - a0
	if d >= 2*math.Pi {
		return 2 * math.Pi
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// arcCubics approximates an arc with at most quarter-turn cubic segments and
// returns its start point and segments.
func arcCubics(cx, cy, r, a0, a1 float64) (sx, sy float64, segs []cubic) {
	sweep := arcSweep(a0, a1)
	sx = cx + r*math.Cos(a0)
	sy = cy + r*math.Sin(a0)
	if sweep == 0 || r <= 0 {
		return sx, sy, nil
	}

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs = make([]cubic, 0, n)
	for i := range n {
		t0 := a0 + float64(i)*step
		t1 := t0 + step
		cos0, sin0 := math.Cos(t0), math.Sin(t0)
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		segs = append(segs, cubic{
			C1x: cx + r*(cos0-k*sin0), C1y: cy + r*(sin0+k*cos0),
			C2x: cx + r*(cos1+k*sin1), C2y: cy + r*(sin1-k*cos1),
			X: cx + r*cos1, Y: cy + r*sin1,
		})
	}
	return sx, sy, segs
}
