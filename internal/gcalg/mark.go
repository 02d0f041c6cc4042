package gcalg

import "github.com/scigolib/mcgc/internal/core"

// Mark runs Phase M: starting from each non-null root, recursively sets
// the marked bit on every reachable object. A reference is ignored if it
// is null, already marked, or out of heap range; strings have no managed
// fields, so marking terminates at them.
func Mark(heap []byte, capacity int, classes *core.ClassTable, roots []*core.Ref) {
	for _, cell := range roots {
		if cell == nil {
			continue
		}
		markFrom(heap, capacity, classes, *cell)
	}
}

func markFrom(heap []byte, capacity int, classes *core.ClassTable, ref core.Ref) {
	if !ref.Valid() {
		return
	}
	base := int(ref)
	if !inRange(base, capacity) {
		return
	}
	if core.Marked(heap, base) {
		return
	}
	ci, ok := readObject(heap, classes, base)
	if !ok {
		return
	}
	core.SetMarked(heap, base, true)
	if ci.IsString {
		return
	}
	for _, off := range ci.FieldOffsets {
		markFrom(heap, capacity, classes, core.FieldRef(heap, base, off))
	}
}
