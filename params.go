// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketchbook

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind is the value type of a parameter.
type Kind int

const (
	// KindFloat is a continuous parameter.
	KindFloat Kind = iota
	// KindInt is a parameter rounded to its step.
	KindInt
	// KindBool is stored as 0 or 1.
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Param is one entry of a sketch's configuration surface.
type Param struct {
	Name   string
	Folder string
	Kind   Kind
	Value  float64
	Min    float64
	Max    float64
	Step   float64
}

// Float declares a continuous parameter.
func Float(folder, name string, value, lo, hi float64) Param {
	return Param{Name: name, Folder: folder, Kind: KindFloat, Value: value, Min: lo, Max: hi}
}

// Int declares an integer parameter with step 1.
func Int(folder, name string, value, lo, hi int) Param {
	return Param{Name: name, Folder: folder, Kind: KindInt, Value: float64(value), Min: float64(lo), Max: float64(hi), Step: 1}
}

// Bool declares a boolean parameter.
func Bool(folder, name string, value bool) Param {
	p := Param{Name: name, Folder: folder, Kind: KindBool, Max: 1, Step: 1}
	if value {
		p.Value = 1
	}
	return p
}

// normalize clamps v into the parameter's range and applies its kind.
func (p *Param) normalize(v float64) float64 {
	if math.IsNaN(v) {
		return p.Value
	}
	if p.Max > p.Min {
		v = math.Max(p.Min, math.Min(p.Max, v))
	}
	switch p.Kind {
	case KindInt:
		step := p.Step
		if step <= 0 {
			step = 1
		}
		v = p.Min + math.Round((v-p.Min)/step)*step
	case KindBool:
		if v != 0 {
			v = 1
		}
	}
	return v
}

// Params is an ordered, flat mapping from parameter name to value.
//
// Params is not safe for concurrent use; viewers edit it on the same
// goroutine that renders.
type Params struct {
	list  []*Param
	index map[string]*Param
}

// NewParams builds a parameter set. Initial values are normalized.
func NewParams(defs ...Param) *Params {
	ps := &Params{index: make(map[string]*Param, len(defs))}
	for _, d := range defs {
		p := d
		p.Value = p.normalize(p.Value)
		ps.list = append(ps.list, &p)
		ps.index[p.Name] = &p
	}
	return ps
}

// Len returns the number of parameters.
func (ps *Params) Len() int { return len(ps.list) }

// At returns a copy of the i-th parameter in declaration order.
func (ps *Params) At(i int) Param { return *ps.list[i] }

// Lookup returns a copy of the named parameter.
func (ps *Params) Lookup(name string) (Param, bool) {
	p, ok := ps.index[name]
	if !ok {
		return Param{}, false
	}
	return *p, true
}

func (ps *Params) get(name string) *Param {
	p, ok := ps.index[name]
	if !ok {
		panic(fmt.Sprintf("sketchbook: parameter %q not declared", name))
	}
	return p
}

// Float returns the value of the named parameter.
// It panics if the name is not declared.
func (ps *Params) Float(name string) float64 { return ps.get(name).Value }

// Int returns the value of the named parameter truncated to int.
func (ps *Params) Int(name string) int { return int(ps.get(name).Value) }

// Bool reports whether the named parameter is non-zero.
func (ps *Params) Bool(name string) bool { return ps.get(name).Value != 0 }

// Set assigns v to the named parameter after clamping it to the declared
// range.
func (ps *Params) Set(name string, v float64) error {
	p, ok := ps.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	p.Value = p.normalize(v)
	return nil
}

// SetString parses text as a bool or a number and assigns it.
func (ps *Params) SetString(name, text string) error {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "true", "on", "yes":
		return ps.Set(name, 1)
	case "false", "off", "no":
		return ps.Set(name, 0)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	return ps.Set(name, v)
}

// Apply assigns every entry of values. If any name is unknown nothing is
// assigned.
func (ps *Params) Apply(values map[string]float64) error {
	for name := range values {
		if _, ok := ps.index[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
	}
	for _, p := range ps.list {
		if v, ok := values[p.Name]; ok {
			p.Value = p.normalize(v)
		}
	}
	return nil
}

// Load reads a JSON preset of the form {"rows": 12, "withAnimationOverride": false}.
func (ps *Params) Load(r io.Reader) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("decode preset: %w", err)
	}
	values := make(map[string]float64, len(raw))
	for name, msg := range raw {
		var b bool
		if err := json.Unmarshal(msg, &b); err == nil {
			values[name] = 0
			if b {
				values[name] = 1
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(msg, &f); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		values[name] = f
	}
	return ps.Apply(values)
}

// Values returns a snapshot of all parameter values.
func (ps *Params) Values() map[string]float64 {
	out := make(map[string]float64, len(ps.list))
	for _, p := range ps.list {
		out[p.Name] = p.Value
	}
	return out
}
