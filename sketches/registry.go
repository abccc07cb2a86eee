// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sketches is the catalogue of every sketch in the book, addressed
// by name.
package sketches

import (
	"fmt"

	"github.com/gogpu/sketchbook"
	"github.com/gogpu/sketchbook/shader"
	"github.com/gogpu/sketchbook/sketches/grid"
	"github.com/gogpu/sketchbook/sketches/radial"
)

// Constructor builds a sketch from creation options.
type Constructor func(opts ...sketchbook.Option) (sketchbook.Sketch, error)

type entry struct {
	name string
	ctor Constructor
}

var catalogue = []entry{
	{grid.Name, func(opts ...sketchbook.Option) (sketchbook.Sketch, error) { return grid.New(opts...) }},
	{radial.Name, func(opts ...sketchbook.Option) (sketchbook.Sketch, error) { return radial.New(opts...) }},
}

func init() {
	for _, p := range shader.Programs() {
		catalogue = append(catalogue, entry{p.Name, func(opts ...sketchbook.Option) (sketchbook.Sketch, error) {
			return shader.NewSketch(p, opts...)
		}})
	}
}

// Names returns the sketch names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, e := range catalogue {
		names[i] = e.name
	}
	return names
}

// New creates the named sketch.
func New(name string, opts ...sketchbook.Option) (sketchbook.Sketch, error) {
	for _, e := range catalogue {
		if e.name == name {
			sk, err := e.ctor(opts...)
			if err != nil {
				return nil, err
			}
			sketchbook.Logger().Info("sketch created", "name", name)
			return sk, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", sketchbook.ErrUnknownSketch, name)
}
