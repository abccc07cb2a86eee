// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pane is a keyboard-driven parameter panel for the viewers.
//
// It groups a sketch's parameters into folders in declaration order, keeps
// a selection, and edits the selected value in place. Rendering is left to
// the viewer: Lines returns plain text.
package pane

import (
	"fmt"
	"strconv"

	"github.com/gogpu/sketchbook"
)

// Folder is a titled group of parameters.
type Folder struct {
	Title  string
	Params []sketchbook.Param
}

// Panel edits one parameter set.
type Panel struct {
	params *sketchbook.Params
	sel    int
}

// New creates a panel over ps with the first parameter selected.
func New(ps *sketchbook.Params) *Panel {
	return &Panel{params: ps}
}

// Bind switches the panel to another parameter set and resets the
// selection.
func (p *Panel) Bind(ps *sketchbook.Params) {
	p.params = ps
	p.sel = 0
}

// Len returns the number of editable parameters.
func (p *Panel) Len() int {
	if p.params == nil {
		return 0
	}
	return p.params.Len()
}

// Selected returns the selected parameter. ok is false for an empty panel.
func (p *Panel) Selected() (sketchbook.Param, bool) {
	if p.Len() == 0 {
		return sketchbook.Param{}, false
	}
	return p.params.At(p.sel), true
}

// Next selects the following parameter, wrapping around.
func (p *Panel) Next() {
	if n := p.Len(); n > 0 {
		p.sel = (p.sel + 1) % n
	}
}

// Prev selects the preceding parameter, wrapping around.
func (p *Panel) Prev() {
	if n := p.Len(); n > 0 {
		p.sel = (p.sel - 1 + n) % n
	}
}

// Increment returns the amount one Nudge moves the parameter: its step,
// or 1% of its range for continuous parameters.
func Increment(prm sketchbook.Param) float64 {
	if prm.Step > 0 {
		return prm.Step
	}
	if r := prm.Max - prm.Min; r > 0 {
		return r / 100
	}
	return 0.01
}

// Nudge moves the selected parameter by dir increments. Booleans toggle
// regardless of direction.
func (p *Panel) Nudge(dir int) error {
	prm, ok := p.Selected()
	if !ok || dir == 0 {
		return nil
	}
	if prm.Kind == sketchbook.KindBool {
		return p.Toggle()
	}
	return p.params.Set(prm.Name, prm.Value+float64(dir)*Increment(prm))
}

// Toggle flips the selected parameter if it is a boolean.
func (p *Panel) Toggle() error {
	prm, ok := p.Selected()
	if !ok || prm.Kind != sketchbook.KindBool {
		return nil
	}
	v := 1.0
	if prm.Value != 0 {
		v = 0
	}
	return p.params.Set(prm.Name, v)
}

// Folders groups the parameters by folder. Folders appear in the order
// their first parameter was declared.
func (p *Panel) Folders() []Folder {
	var out []Folder
	index := make(map[string]int)
	for i := range p.Len() {
		prm := p.params.At(i)
		j, ok := index[prm.Folder]
		if !ok {
			j = len(out)
			index[prm.Folder] = j
			out = append(out, Folder{Title: prm.Folder})
		}
		out[j].Params = append(out[j].Params, prm)
	}
	return out
}

// Format renders a parameter value for display.
func Format(prm sketchbook.Param) string {
	switch prm.Kind {
	case sketchbook.KindBool:
		if prm.Value != 0 {
			return "on"
		}
		return "off"
	case sketchbook.KindInt:
		return strconv.Itoa(int(prm.Value))
	default:
		return strconv.FormatFloat(prm.Value, 'f', 3, 64)
	}
}

// Lines renders the panel: a header per folder and one line per parameter,
// the selected one marked with '>'.
func (p *Panel) Lines() []string {
	selected, _ := p.Selected()
	var lines []string
	for _, f := range p.Folders() {
		lines = append(lines, "["+f.Title+"]")
		for _, prm := range f.Params {
			mark := ' '
			if prm.Name == selected.Name {
				mark = '>'
			}
			lines = append(lines, fmt.Sprintf("%c %s: %s", mark, prm.Name, Format(prm)))
		}
	}
	return lines
}
