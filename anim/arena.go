// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

// Arena is an index-addressed store of shapes that survives across frames.
//
// Slots are populated lazily and never removed. When a layout shrinks,
// trailing slots keep their state but are simply not visited; if it grows
// back they resume where they were.
type Arena[T any] struct {
	slots []*T
}

// Len returns the number of slots allocated so far.
func (a *Arena[T]) Len() int { return len(a.slots) }

// At returns the shape at i, or nil if i was never populated.
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= len(a.slots) {
		return nil
	}
	return a.slots[i]
}

// Get returns the shape at i. If the slot is empty, create builds it; if
// it exists, update (when non-nil) refreshes it in place. The boolean
// reports whether the shape was created.
func (a *Arena[T]) Get(i int, create func() *T, update func(*T)) (*T, bool) {
	if i < 0 {
		panic("anim: negative arena index")
	}
	if i >= len(a.slots) {
		grown := make([]*T, i+1, max(i+1, 2*len(a.slots)))
		copy(grown, a.slots)
		a.slots = grown
	}
	if s := a.slots[i]; s != nil {
		if update != nil {
			update(s)
		}
		return s, false
	}
	s := create()
	a.slots[i] = s
	return s, true
}

// Populated counts non-empty slots.
func (a *Arena[T]) Populated() int {
	n := 0
	for _, s := range a.slots {
		if s != nil {
			n++
		}
	}
	return n
}
