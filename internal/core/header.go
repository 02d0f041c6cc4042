package core

import "encoding/binary"

// HeaderSize is the fixed prefix every heap object carries, whether it is
// a fixed-layout instance or a string. It mirrors the reference
// implementation's Object/String struct layout, where C struct alignment
// happens to pad the class pointer, mark byte, and forwarding pointer
// (and, for strings, the length word) out to the same 32 bytes; here the
// same 32 bytes are laid out explicitly rather than left to a compiler's
// alignment rules.
const HeaderSize = 32

const (
	offClassID   = 0 // uint32: index into the owning heap's class table, 0 = none
	offForwarded = 4 // uint32 (Ref): destination set by Phase F, consumed by Phase C
	offMarked    = 8 // byte: reachability flag, also reused as a "visited" flag by Phase P
	offLength    = 12 // uint32: string payload length including terminator; unused by fixed objects
)

// ClassID reads the class table index stored in the object header at base.
func ClassID(heap []byte, base int) uint32 {
	return binary.LittleEndian.Uint32(heap[base+offClassID : base+offClassID+4])
}

// SetClassID writes the class table index into the object header at base.
func SetClassID(heap []byte, base int, id uint32) {
	binary.LittleEndian.PutUint32(heap[base+offClassID:base+offClassID+4], id)
}

// Marked reports the reachability/visited bit of the object at base.
func Marked(heap []byte, base int) bool {
	return heap[base+offMarked] != 0
}

// SetMarked sets the reachability/visited bit of the object at base.
func SetMarked(heap []byte, base int, v bool) {
	if v {
		heap[base+offMarked] = 1
	} else {
		heap[base+offMarked] = 0
	}
}

// Forwarded reads the forwarding address computed for the object at base.
func Forwarded(heap []byte, base int) Ref {
	return Ref(binary.LittleEndian.Uint32(heap[base+offForwarded : base+offForwarded+4]))
}

// SetForwarded writes the forwarding address for the object at base.
func SetForwarded(heap []byte, base int, r Ref) {
	binary.LittleEndian.PutUint32(heap[base+offForwarded:base+offForwarded+4], uint32(r))
}

// Length reads a string object's stored payload length (including its
// reserved terminator byte). Meaningless for non-string objects.
func Length(heap []byte, base int) uint32 {
	return binary.LittleEndian.Uint32(heap[base+offLength : base+offLength+4])
}

// SetLength writes a string object's payload length.
func SetLength(heap []byte, base int, length uint32) {
	binary.LittleEndian.PutUint32(heap[base+offLength:base+offLength+4], length)
}

// FieldRef reads the managed-pointer field at object_base+fieldOffset.
func FieldRef(heap []byte, base, fieldOffset int) Ref {
	off := base + fieldOffset
	return Ref(binary.LittleEndian.Uint32(heap[off : off+4]))
}

// SetFieldRef writes the managed-pointer field at object_base+fieldOffset.
func SetFieldRef(heap []byte, base, fieldOffset int, r Ref) {
	off := base + fieldOffset
	binary.LittleEndian.PutUint32(heap[off:off+4], uint32(r))
}

// StringPayload returns the slice of heap bytes holding a string object's
// payload (length bytes starting right after the header).
func StringPayload(heap []byte, base int) []byte {
	length := int(Length(heap, base))
	start := base + HeaderSize
	return heap[start : start+length]
}
