package mcgc

import (
	"fmt"

	"github.com/scigolib/mcgc/internal/core"
)

// Class is an immutable, client-supplied class descriptor: its name, its
// fixed instance size in bytes (header included), and the byte offsets
// of the fields the collector should treat as managed pointers.
// Non-managed fields (integers, floats, non-managed pointers) may appear
// at any other offset; the collector neither reads nor relocates them.
//
// A Class is obtained from Heap.RegisterClass and is only valid for the
// heap that created it.
type Class struct {
	name         string
	size         int
	fieldOffsets []int
	id           uint32
}

// Name returns the class's name, as it appears in heap dumps.
func (c *Class) Name() string { return c.name }

// Size returns the class's fixed instance footprint in bytes.
func (c *Class) Size() int { return c.size }

// RegisterClass declares a class with the collector. size is the full
// instance footprint including the HeaderSize-byte object header;
// fieldOffsets lists, in any order, the byte offsets of fields that hold
// managed references. It is an error to register a class whose declared
// size is smaller than the header, or whose field offsets do not leave
// room for a full reference (4 bytes) before size.
func (h *Heap) RegisterClass(name string, size int, fieldOffsets []int) (*Class, error) {
	if err := h.checkUsable(); err != nil {
		return nil, err
	}
	if size < core.HeaderSize {
		return nil, wrapError(fmt.Sprintf("register class %q", name), fmt.Errorf("%w: size %d smaller than header size %d", ErrInvalidClass, size, core.HeaderSize))
	}
	for _, off := range fieldOffsets {
		if off < 0 || off+4 > size {
			return nil, wrapError(fmt.Sprintf("register class %q", name), fmt.Errorf("%w: field offset %d out of bounds for size %d", ErrInvalidClass, off, size))
		}
	}
	offsetsCopy := append([]int(nil), fieldOffsets...)
	id := h.classes.Register(core.ClassInfo{
		Name:         name,
		Size:         size,
		FieldOffsets: offsetsCopy,
		IsString:     false,
	})
	return &Class{name: name, size: size, fieldOffsets: offsetsCopy, id: id}, nil
}
