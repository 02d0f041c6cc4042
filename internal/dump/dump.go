// Package dump renders a heap's live contents into the textual format
// spec.md §4.4 defines as the collector's stable, externally-observed
// contract.
package dump

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/scigolib/mcgc/internal/core"
)

// bufPool reuses *bytes.Buffer across dumps, the same pooling idiom the
// teacher applies to its read-path scratch buffers (internal/utils's
// sync.Pool of []byte), now applied to the dump's write path.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// Render produces the textual heap dump for the live region [0, nextFree)
// of heap, using classes to resolve each object's name, size, and
// managed fields.
func Render(heap []byte, nextFree int, classes *core.ClassTable) string {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	fmt.Fprintf(buf, "next_free=%d\nobjects:\n", nextFree)

	i := 0
	for i < nextFree {
		id := core.ClassID(heap, i)
		if id == 0 {
			break
		}
		ci, ok := classes.Lookup(id)
		if !ok {
			break
		}

		if ci.IsString {
			length := core.Length(heap, i)
			payload := core.StringPayload(heap, i)
			fmt.Fprintf(buf, "  %04d:%s[%d+%d]=\"%s\"\n", i, ci.Name, core.HeaderSize, length, cString(payload))
			i += core.HeaderSize + int(length)
			continue
		}

		fmt.Fprintf(buf, "  %04d:%s[%d]->[", i, ci.Name, ci.Size)
		for j, off := range ci.FieldOffsets {
			if j != 0 {
				buf.WriteByte(',')
			}
			ref := core.FieldRef(heap, i, off)
			if ref.Valid() {
				fmt.Fprintf(buf, "%d", int(ref))
			} else {
				buf.WriteString("NULL")
			}
		}
		buf.WriteString("]\n")
		i += ci.Size
	}

	return buf.String()
}

// cString trims a string payload at its first NUL, mirroring how the
// reference prints str with %s: a C string ends at its terminator, not
// at the end of its allocated capacity.
func cString(payload []byte) string {
	for i, b := range payload {
		if b == 0 {
			return string(payload[:i])
		}
	}
	return string(payload)
}
