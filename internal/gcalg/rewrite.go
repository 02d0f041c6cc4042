package gcalg

import "github.com/scigolib/mcgc/internal/core"

// Rewrite runs Phase P: traverses the live graph through the still
// in-place objects and rewrites every non-null managed-pointer field to
// its target's forwarded address, then rewrites the root cell itself.
//
// It reuses the mark bit as a visited flag, set on first entry to an
// object rather than before recursing into it from a field, so that a
// field is rewritten to forwarded only after its target has itself been
// visited — the recursion must reach the target (and everything beyond
// it) while the target's own fields still hold pre-move addresses.
func Rewrite(heap []byte, capacity int, classes *core.ClassTable, roots []*core.Ref) {
	for _, cell := range roots {
		if cell == nil || !cell.Valid() {
			continue
		}
		base := int(*cell)
		if !inRange(base, capacity) {
			continue
		}
		rewriteFrom(heap, capacity, classes, *cell)
		*cell = core.Forwarded(heap, base)
	}
}

func rewriteFrom(heap []byte, capacity int, classes *core.ClassTable, ref core.Ref) {
	base := int(ref)
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
		fref := core.FieldRef(heap, base, off)
		if !fref.Valid() {
			continue
		}
		fbase := int(fref)
		if !inRange(fbase, capacity) {
			continue
		}
		rewriteFrom(heap, capacity, classes, fref)
		core.SetFieldRef(heap, base, off, core.Forwarded(heap, fbase))
	}
}
