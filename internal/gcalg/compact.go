package gcalg

import "github.com/scigolib/mcgc/internal/core"

// Compact runs Phase C: walks the heap linearly a second time, copying
// each live object (marked bit set by Phase P) to its forwarded address
// and skipping dead ones. Because Phase F assigned destinations in the
// same left-to-right order as the source walk, every destination lies at
// or before its source, so copying in source order never overwrites a
// not-yet-copied live object. The resulting bump offset was already
// computed by Forward; Compact only needs to move bytes.
func Compact(heap []byte, nextFree int, classes *core.ClassTable) {
	i := 0
	for i < nextFree {
		ci, ok := readObject(heap, classes, i)
		if !ok {
			break
		}
		step := footprint(heap, i, ci)
		if core.Marked(heap, i) {
			dst := int(core.Forwarded(heap, i))
			copy(heap[dst:dst+step], heap[i:i+step])
			core.SetMarked(heap, dst, false)
			core.SetForwarded(heap, dst, core.Null)
		}
		i += step
	}
}
