// Package mcgc implements a mark-and-compact garbage collector over a
// fixed-size, contiguous heap. A client registers class descriptors,
// allocates tagged objects (including variable-length strings), declares
// roots, and triggers collection explicitly or implicitly through
// allocation pressure; collection reclaims unreachable storage and
// compacts survivors to the low end of the heap.
//
// The collector is the only thing this package implements: heap layout,
// the class-descriptor protocol, bump allocation, the three-phase
// mark / forward / compact algorithm, root registration, and the
// heap-dump text format used to observe collector state. The client's
// class data, field semantics, and test harness are out of scope.
package mcgc

import "github.com/scigolib/mcgc/internal/core"

// Ref is a heap-local reference to a live object, or Null. A root is the
// address of a client variable of this type: AddRoot takes a *Ref so the
// collector can both read and rewrite the variable's contents during
// compaction.
type Ref = core.Ref

// Null is the reference value naming no object.
const Null = core.Null
