// Package carousel keeps a focus cursor over a padded circular list and derives
// the fixed five-slot window a renderer draws around it.
//
// The caller owns the source list. The Windower copies it, pads it by repeating
// whole copies until at least MinBuffer slots exist, and hands every physical
// slot a synthetic ID so a renderer can tell two slots apart even when they
// carry the same builder.
package carousel

import (
	"fmt"
)

// MinBuffer is the smallest extended list length for a non-empty source.
const MinBuffer = 10

// WindowRadius is the number of slots shown on each side of the focus.
const WindowRadius = 2

// windowOffsets are the offsets of the visible window, left to right.
var windowOffsets = [...]int{-2, -1, 0, 1, 2}

// Slot is one element of the extended list.
type Slot[T any] struct {
	// ID is the synthetic identity of the slot, unique within one extended list.
	ID string
	// Source is the index of the slot's item in the source list.
	Source int
	// Item is the source item, unchanged.
	Item T
}

// Entry is one element of the visible window.
type Entry[T any] struct {
	Offset      int
	Key         string
	Item        T
	Source      T
	SourceIndex int
}

// BuildExtended repeats source until the result holds at least MinBuffer slots.
// The first copy keeps the original IDs, later copies are re-identified as
// "dup-<position>-<id>". An empty source yields nil.
func BuildExtended[T any](source []T, idOf func(T) string) []Slot[T] {
	n := len(source)
	if n == 0 {
		return nil
	}
	copies := (MinBuffer + n - 1) / n
	if copies < 1 {
		copies = 1
	}

	out := make([]Slot[T], 0, copies*n)
	seen := make(map[string]struct{}, copies*n)
	for c := 0; c < copies; c++ {
		for i, item := range source {
			pos := len(out)
			id := idOf(item)
			if c > 0 {
				id = fmt.Sprintf("dup-%d-%s", pos, id)
			}
			// Source IDs are caller data and may collide with each other or
			// with a generated dup ID.
			for {
				if _, taken := seen[id]; !taken {
					break
				}
				id = fmt.Sprintf("%s#%d", id, pos)
			}
			seen[id] = struct{}{}
			out = append(out, Slot[T]{ID: id, Source: i, Item: item})
		}
	}
	return out
}

// Windower owns the focus index and the extended list for one carousel.
// It is not safe for concurrent use; all calls come from one event loop.
type Windower[T any] struct {
	idOf     func(T) string
	source   []T
	extended []Slot[T]
	focus    int
}

// New returns an empty Windower. idOf reports the stable identity of an item.
func New[T any](idOf func(T) string) *Windower[T] {
	return &Windower[T]{idOf: idOf}
}

// SetSource replaces the source list and rebuilds the extended list.
// The focus returns to zero when the number of items changes.
func (w *Windower[T]) SetSource(items []T) {
	prev := len(w.source)
	w.source = append([]T(nil), items...)
	w.extended = BuildExtended(w.source, w.idOf)
	if len(w.source) != prev || len(w.extended) == 0 {
		w.focus = 0
	}
}

// Source returns a copy of the current source list.
func (w *Windower[T]) Source() []T {
	return append([]T(nil), w.source...)
}

// Slots returns a copy of the extended list.
func (w *Windower[T]) Slots() []Slot[T] {
	return append([]Slot[T](nil), w.extended...)
}

// Focus returns the raw focus index.
func (w *Windower[T]) Focus() int {
	return w.focus
}

// Len returns the extended list length.
func (w *Windower[T]) Len() int {
	return len(w.extended)
}

// SourceLen returns the source list length.
func (w *Windower[T]) SourceLen() int {
	return len(w.source)
}

// Empty reports whether there is nothing to show.
func (w *Windower[T]) Empty() bool {
	return len(w.source) == 0
}

// CanNavigate reports whether previous/next controls make sense.
func (w *Windower[T]) CanNavigate() bool {
	return len(w.source) > 1
}

// Advance moves the focus by dir slots around the extended list.
// It is a no-op on an empty list.
func (w *Windower[T]) Advance(dir int) {
	l := len(w.extended)
	if l == 0 {
		return
	}
	w.focus = mod(w.focus+dir, l)
}

// Next moves the focus one slot forward.
func (w *Windower[T]) Next() { w.Advance(1) }

// Prev moves the focus one slot back.
func (w *Windower[T]) Prev() { w.Advance(-1) }

// JumpTo moves the focus so that it lands on source index target, applying
// the plain difference from the current residue rather than resetting the
// cursor. It reports false and leaves the focus alone for targets outside
// the source list.
func (w *Windower[T]) JumpTo(target int) bool {
	n := len(w.source)
	if n == 0 || target < 0 || target >= n {
		return false
	}
	residue := mod(w.focus, n)
	w.focus += target - residue
	return true
}

// ActiveDot returns the source index under the focus, or -1 when empty.
func (w *Windower[T]) ActiveDot() int {
	n := len(w.source)
	if n == 0 {
		return -1
	}
	return mod(w.focus, n)
}

// Dots returns one flag per source item, true for the active one.
func (w *Windower[T]) Dots() []bool {
	n := len(w.source)
	if n == 0 {
		return nil
	}
	dots := make([]bool, n)
	dots[mod(w.focus, n)] = true
	return dots
}

// Window resolves the five visible slots around the focus. It is recomputed
// on every call and returns nil for an empty source.
func (w *Windower[T]) Window() []Entry[T] {
	l := len(w.extended)
	if l == 0 {
		return nil
	}
	out := make([]Entry[T], 0, len(windowOffsets))
	for _, off := range windowOffsets {
		slot := w.extended[mod(w.focus+off, l)]
		out = append(out, Entry[T]{
			Offset:      off,
			Key:         slot.ID,
			Item:        slot.Item,
			Source:      w.source[slot.Source],
			SourceIndex: slot.Source,
		})
	}
	return out
}

// Center returns the source item in the focused slot.
func (w *Windower[T]) Center() (T, bool) {
	var zero T
	l := len(w.extended)
	if l == 0 {
		return zero, false
	}
	slot := w.extended[mod(w.focus, l)]
	return w.source[slot.Source], true
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
