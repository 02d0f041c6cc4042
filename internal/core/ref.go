// Package core provides the low-level, dependency-free building blocks the
// collector is built from: the object header codec and the heap-local
// reference type. Nothing in this package knows about roots, allocation
// policy, or the collection algorithm — it only knows how to read and
// write fixed-format fields inside a raw byte region.
package core

import "math"

// Ref is a heap-local reference: the byte offset, within the heap buffer,
// of the object header it names. It plays the role of a pointer in the
// reference implementation, but since the heap is a plain []byte rather
// than addressable memory, a reference is just an offset.
type Ref uint32

// Null is the reference value meaning "no object". It cannot be 0,
// because offset 0 is the address of the very first object ever
// allocated and must remain a legitimate reference.
const Null Ref = math.MaxUint32

// Valid reports whether r names an object rather than being null.
func (r Ref) Valid() bool {
	return r != Null
}
