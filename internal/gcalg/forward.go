package gcalg

import "github.com/scigolib/mcgc/internal/core"

// Forward runs Phase F: walks the heap linearly from 0 to nextFree,
// assigning each live object's destination address without moving any
// bytes. It returns the post-compaction bump offset — the sum of the
// footprints of every live object, in source order.
//
// The mark bit is consumed here (cleared on every marked object) so that
// Phase P can reuse it as a fresh "visited" flag for its own recursion.
func Forward(heap []byte, nextFree int, classes *core.ClassTable) int {
	off := 0
	i := 0
	for i < nextFree {
		ci, ok := readObject(heap, classes, i)
		if !ok {
			break
		}
		step := footprint(heap, i, ci)
		if core.Marked(heap, i) {
			core.SetForwarded(heap, i, core.Ref(off))
			off += step
			core.SetMarked(heap, i, false)
		} else {
			core.SetForwarded(heap, i, core.Null)
		}
		i += step
	}
	return off
}
