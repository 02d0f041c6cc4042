package mcgc

import (
	"fmt"
	"log"

	"github.com/scigolib/mcgc/internal/alloc"
	"github.com/scigolib/mcgc/internal/core"
	"github.com/scigolib/mcgc/internal/dump"
	"github.com/scigolib/mcgc/internal/gcalg"
)

// DefaultMaxRoots is the root-table capacity used when Config.MaxRoots
// is left at zero, matching the reference's MAX_ROOTS.
const DefaultMaxRoots = 100

// Config configures a Heap. The reference treats the heap, bump offset,
// and root table as a process-wide singleton initialized by gc_init;
// this implementation takes the cleaner, explicitly-recommended path
// (spec.md §9, "Global state") of an explicit context value, which also
// makes the collector table-test friendly and allows more than one heap
// to exist at once.
type Config struct {
	// Size is the heap's fixed capacity in bytes.
	Size int
	// MaxRoots bounds the root table. Zero means DefaultMaxRoots.
	MaxRoots int
	// Logger receives allocation-exhaustion diagnostics and, if Trace is
	// set, one line per collection phase. Nil means log.Default().
	Logger *log.Logger
	// Trace enables verbose per-phase collection logging, supplementing
	// the reference's gc_debug compile-time flag.
	Trace bool
}

// Heap is the collector's public surface: a fixed-capacity byte region,
// a bump allocator, a class table, and a root table, wired together the
// way the teacher's File wires together a superblock, an allocator, and
// a root group.
type Heap struct {
	bump    *alloc.Bump
	classes *core.ClassTable
	roots   *rootTable
	logger  *log.Logger
	trace   bool
	done    bool
}

// New allocates and zeroes a heap of the given configuration and
// registers the built-in String class.
func New(cfg Config) (*Heap, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("mcgc: heap size must be positive, got %d", cfg.Size)
	}
	maxRoots := cfg.MaxRoots
	if maxRoots == 0 {
		maxRoots = DefaultMaxRoots
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	classes := core.NewClassTable()
	stringID := classes.Register(core.ClassInfo{Name: "String", IsString: true})
	if stringID != core.StringClassID {
		return nil, fmt.Errorf("mcgc: internal error: String class registered at id %d, want %d", stringID, core.StringClassID)
	}

	return &Heap{
		bump:    alloc.New(cfg.Size),
		classes: classes,
		roots:   newRootTable(maxRoots),
		logger:  logger,
		trace:   cfg.Trace,
	}, nil
}

// Init is a convenience constructor matching the reference's gc_init(size).
func Init(size int) (*Heap, error) {
	return New(Config{Size: size})
}

func (h *Heap) checkUsable() error {
	if h.done {
		return ErrAlreadyDone
	}
	if h.bump == nil {
		return ErrNotInitialized
	}
	return nil
}

func (h *Heap) tracer() gcalg.Tracer {
	if !h.trace {
		return nil
	}
	return h.logger
}

// Alloc reserves class.Size() bytes, writes the object header (null
// class reference cleared to class's id, mark and forwarding cleared),
// nulls every managed-pointer field class declares, and returns the new
// object's reference. If the reservation would overflow the heap, Alloc
// triggers a full collection and retries once; if space is still
// insufficient it returns ErrHeapExhausted and leaves the heap state
// unchanged.
func (h *Heap) Alloc(class *Class) (Ref, error) {
	if err := h.checkUsable(); err != nil {
		return Null, err
	}
	if class == nil {
		return Null, fmt.Errorf("mcgc: alloc: nil class")
	}

	base, err := h.bump.Reserve(class.size)
	if err != nil {
		_ = h.Collect()
		base, err = h.bump.Reserve(class.size)
		if err != nil {
			h.logger.Printf("mcgc: alloc %s: no space after collection (%d/%d bytes used)", class.name, h.bump.NextFree(), h.bump.Capacity())
			return Null, wrapError(fmt.Sprintf("alloc %s", class.name), ErrHeapExhausted)
		}
	}

	heap := h.bump.Bytes()
	core.SetClassID(heap, base, class.id)
	core.SetMarked(heap, base, false)
	core.SetForwarded(heap, base, core.Null)
	for _, off := range class.fieldOffsets {
		core.SetFieldRef(heap, base, off, core.Null)
	}
	return Ref(base), nil
}

// AllocString reserves HeaderSize+n+1 bytes (the +1 reserves a
// terminator byte) and returns the new string's reference. Payload
// bytes are left as whatever the heap held at that offset — zero on
// first use, since the heap is zeroed at New, but not re-zeroed by a
// later reservation into space a prior collection reclaimed (spec.md §3
// invariant 5 only promises a terminator within the client's own
// writes, not a freshly zeroed buffer on reuse).
func (h *Heap) AllocString(n int) (Ref, error) {
	if err := h.checkUsable(); err != nil {
		return Null, err
	}
	if n < 0 {
		return Null, fmt.Errorf("mcgc: alloc_string: negative capacity %d", n)
	}
	length := n + 1
	size := core.HeaderSize + length

	base, err := h.bump.Reserve(size)
	if err != nil {
		_ = h.Collect()
		base, err = h.bump.Reserve(size)
		if err != nil {
			h.logger.Printf("mcgc: alloc_string(%d): no space after collection (%d/%d bytes used)", n, h.bump.NextFree(), h.bump.Capacity())
			return Null, wrapError("alloc_string", ErrHeapExhausted)
		}
	}

	heap := h.bump.Bytes()
	core.SetClassID(heap, base, core.StringClassID)
	core.SetMarked(heap, base, false)
	core.SetForwarded(heap, base, core.Null)
	core.SetLength(heap, base, uint32(length))
	return Ref(base), nil
}

// SetString copies s, plus a NUL terminator, into a string object's
// payload. It fails if s would not leave room for the terminator within
// the object's reserved capacity.
func (h *Heap) SetString(ref Ref, s string) error {
	if err := h.checkUsable(); err != nil {
		return err
	}
	if !ref.Valid() {
		return fmt.Errorf("mcgc: set string: null reference")
	}
	payload := core.StringPayload(h.bump.Bytes(), int(ref))
	if len(s) > len(payload)-1 {
		return fmt.Errorf("mcgc: set string: %d bytes exceeds capacity %d", len(s), len(payload)-1)
	}
	copy(payload, s)
	payload[len(s)] = 0
	return nil
}

// GetString reads a string object's payload up to its NUL terminator.
func (h *Heap) GetString(ref Ref) (string, error) {
	if err := h.checkUsable(); err != nil {
		return "", err
	}
	if !ref.Valid() {
		return "", fmt.Errorf("mcgc: get string: null reference")
	}
	payload := core.StringPayload(h.bump.Bytes(), int(ref))
	for i, b := range payload {
		if b == 0 {
			return string(payload[:i]), nil
		}
	}
	return string(payload), nil
}

// SetField writes a managed-pointer field at object_base+offset. offset
// must be one of the offsets the object's own class declared.
func (h *Heap) SetField(obj Ref, offset int, target Ref) error {
	if err := h.checkUsable(); err != nil {
		return err
	}
	if err := h.validateFieldOffset(obj, offset); err != nil {
		return err
	}
	core.SetFieldRef(h.bump.Bytes(), int(obj), offset, target)
	return nil
}

// GetField reads a managed-pointer field at object_base+offset.
func (h *Heap) GetField(obj Ref, offset int) (Ref, error) {
	if err := h.checkUsable(); err != nil {
		return Null, err
	}
	if err := h.validateFieldOffset(obj, offset); err != nil {
		return Null, err
	}
	return core.FieldRef(h.bump.Bytes(), int(obj), offset), nil
}

func (h *Heap) validateFieldOffset(obj Ref, offset int) error {
	if !obj.Valid() {
		return fmt.Errorf("mcgc: field access: null object reference")
	}
	base := int(obj)
	if base < 0 || base >= h.bump.Capacity() {
		return fmt.Errorf("mcgc: field access: reference %d out of heap range", base)
	}
	id := core.ClassID(h.bump.Bytes(), base)
	ci, ok := h.classes.Lookup(id)
	if !ok {
		return fmt.Errorf("mcgc: field access: reference %d names no registered class", base)
	}
	if offset < 0 || offset+4 > ci.Size {
		return fmt.Errorf("mcgc: field access: offset %d out of bounds for class %q (size %d)", offset, ci.Name, ci.Size)
	}
	return nil
}

// Collect runs phases M, F, P, and C to completion. It is a total
// function: no error can arise from collection itself (spec.md §7).
func (h *Heap) Collect() error {
	if err := h.checkUsable(); err != nil {
		return err
	}
	heap := h.bump.Bytes()
	newNextFree := gcalg.Collect(heap, h.bump.NextFree(), h.bump.Capacity(), h.classes, h.roots.cells, h.tracer())
	h.bump.SetNextFree(newNextFree)
	return nil
}

// GetState renders the textual heap dump described in spec.md §4.4.
func (h *Heap) GetState() (string, error) {
	if err := h.checkUsable(); err != nil {
		return "", err
	}
	return dump.Render(h.bump.Bytes(), h.bump.NextFree(), h.classes), nil
}

// NextFree returns the current bump offset.
func (h *Heap) NextFree() (int, error) {
	if err := h.checkUsable(); err != nil {
		return 0, err
	}
	return h.bump.NextFree(), nil
}

// Done releases the heap buffer. The Heap must not be used afterward.
func (h *Heap) Done() error {
	if err := h.checkUsable(); err != nil {
		return err
	}
	h.done = true
	h.bump = nil
	h.classes = nil
	h.roots = nil
	return nil
}
