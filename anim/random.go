// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "math/rand/v2"

// Chance runs one Bernoulli trial with success probability p. It is meant
// to be evaluated once per frame; nothing is remembered between calls.
func Chance(r *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Range returns a uniform value in [lo, hi).
func Range(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
