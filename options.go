// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import "math/rand/v2"

// Option configures a sketch during creation.
//
// Example:
//
//	// Unseeded randomness, default parameters
//	sk := grid.New()
//
//	// Reproducible run with a preset
//	sk := grid.New(
//	    sketchbook.WithRand(rand.New(rand.NewPCG(1, 2))),
//	    sketchbook.WithParams(map[string]float64{"rows": 4}),
//	)
type Option func(*Options)

// Options holds the resolved creation options. Sketch packages call
// [ResolveOptions] and read the fields.
type Options struct {
	Rand   *rand.Rand
	Params map[string]float64
	Compat map[string]bool
}

// ResolveOptions applies opts over the defaults.
func ResolveOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// Quirk reports whether the named compatibility quirk is enabled.
func (o Options) Quirk(name string) bool { return o.Compat[name] }

// WithRand sets the random source used for per-frame trials and shape
// sampling. The default is an unseeded PCG source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithParams overrides parameter defaults. Unknown names make the sketch
// constructor return ErrUnknownParam.
func WithParams(values map[string]float64) Option {
	return func(o *Options) {
		if o.Params == nil {
			o.Params = make(map[string]float64, len(values))
		}
		for k, v := range values {
			o.Params[k] = v
		}
	}
}

// WithCompat enables named behaviour quirks kept for compatibility with
// earlier renditions of a sketch. Sketch packages export the names they
// understand.
func WithCompat(names ...string) Option {
	return func(o *Options) {
		if o.Compat == nil {
			o.Compat = make(map[string]bool, len(names))
		}
		for _, n := range names {
			o.Compat[n] = true
		}
	}
}
