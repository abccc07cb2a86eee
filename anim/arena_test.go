// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "testing"

type cell struct {
	id      int
	updates int
}

func TestArenaLazyCreate(t *testing.T) {
	var a Arena[cell]
	created := 0
	create := func(i int) func() *cell {
		return func() *cell {
			created++
			return &cell{id: i}
		}
	}
	update := func(c *cell) { c.updates++ }

	for i := range 5 {
		if _, isNew := a.Get(i, create(i), update); !isNew {
			t.Errorf("Get(%d) on empty slot reported existing", i)
		}
	}
	for i := range 5 {
		c, isNew := a.Get(i, create(i), update)
		if isNew {
			t.Errorf("Get(%d) recreated a populated slot", i)
		}
		if c.id != i || c.updates != 1 {
			t.Errorf("slot %d = %+v", i, *c)
		}
	}
	if created != 5 {
		t.Errorf("created %d shapes, want 5", created)
	}
}

func TestArenaNeverShrinks(t *testing.T) {
	var a Arena[cell]
	for i := range 10 {
		a.Get(i, func() *cell { return &cell{id: i} }, nil)
	}
	keep := a.At(9)

	// A smaller layout only visits the first slots.
	for i := range 3 {
		a.Get(i, func() *cell { return &cell{} }, nil)
	}
	if a.Len() != 10 || a.Populated() != 10 {
		t.Errorf("Len()=%d Populated()=%d, want 10/10", a.Len(), a.Populated())
	}
	if a.At(9) != keep {
		t.Error("trailing slot was replaced")
	}
}

func TestArenaSparse(t *testing.T) {
	var a Arena[cell]
	a.Get(7, func() *cell { return &cell{id: 7} }, nil)
	if a.Len() != 8 {
		t.Errorf("Len() = %d, want 8", a.Len())
	}
	if a.At(3) != nil {
		t.Error("unpopulated slot should be nil")
	}
	if a.At(-1) != nil || a.At(100) != nil {
		t.Error("out of range At() should be nil")
	}
	if a.Populated() != 1 {
		t.Errorf("Populated() = %d, want 1", a.Populated())
	}
}
