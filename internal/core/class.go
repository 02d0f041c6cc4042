package core

import "fmt"

// ClassInfo is the collector's view of an immutable class descriptor:
// enough to compute an object's footprint and walk its managed fields.
// The collector never knows anything else about a class — no methods,
// no non-managed field layout, nothing beyond what it needs to mark,
// forward, and compact.
type ClassInfo struct {
	Name         string
	Size         int   // fixed instance footprint, header included; ignored for strings
	FieldOffsets []int // byte offsets, from the object base, of managed-pointer fields
	IsString     bool
}

// ClassTable resolves a heap-local class id to its descriptor. Id 0 is
// always invalid — it is the value zero-initialized heap bytes carry,
// and the collector's walkers treat it as the end of live data (see
// internal/gcalg's readObject zero-class guard).
type ClassTable struct {
	classes []ClassInfo
}

// NewClassTable returns an empty table with id 0 reserved.
func NewClassTable() *ClassTable {
	return &ClassTable{classes: make([]ClassInfo, 1)}
}

// Register adds a class and returns its id.
func (t *ClassTable) Register(info ClassInfo) uint32 {
	t.classes = append(t.classes, info)
	return uint32(len(t.classes) - 1)
}

// Lookup resolves id to its descriptor. ok is false for id 0 or any id
// past the end of the table (a corrupt or unregistered reference).
func (t *ClassTable) Lookup(id uint32) (ClassInfo, bool) {
	if id == 0 || int(id) >= len(t.classes) {
		return ClassInfo{}, false
	}
	return t.classes[id], true
}

// String id is the table index of the collector's built-in String class,
// always registered first so it is stable across a heap's lifetime.
const StringClassID uint32 = 1

func (t *ClassTable) String() string {
	return fmt.Sprintf("ClassTable(%d classes)", len(t.classes)-1)
}
