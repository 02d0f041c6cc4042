package gcalg

import "github.com/scigolib/mcgc/internal/core"

// Tracer receives one line per phase transition when a collection runs
// with tracing enabled. It is satisfied by *log.Logger's Printf method.
type Tracer interface {
	Printf(format string, args ...interface{})
}

// Collect runs phases M, F, P, and C to completion and returns the
// post-compaction bump offset. tracer may be nil.
func Collect(heap []byte, nextFree, capacity int, classes *core.ClassTable, roots []*core.Ref, tracer Tracer) int {
	if tracer != nil {
		tracer.Printf("gc: phase M (mark) over %d roots", len(roots))
	}
	Mark(heap, capacity, classes, roots)

	if tracer != nil {
		tracer.Printf("gc: phase F (forward) over [0,%d)", nextFree)
	}
	newNextFree := Forward(heap, nextFree, classes)

	if tracer != nil {
		tracer.Printf("gc: phase P (pointer rewrite) over %d roots", len(roots))
	}
	Rewrite(heap, capacity, classes, roots)

	if tracer != nil {
		tracer.Printf("gc: phase C (compact) -> next_free=%d", newNextFree)
	}
	Compact(heap, nextFree, classes)

	return newNextFree
}
