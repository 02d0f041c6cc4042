package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	heap := make([]byte, 256)
	base := 16

	SetClassID(heap, base, 3)
	SetMarked(heap, base, true)
	SetForwarded(heap, base, Ref(128))

	assert.Equal(t, uint32(3), ClassID(heap, base))
	assert.True(t, Marked(heap, base))
	assert.Equal(t, Ref(128), Forwarded(heap, base))

	SetMarked(heap, base, false)
	assert.False(t, Marked(heap, base))

	SetForwarded(heap, base, Null)
	assert.Equal(t, Null, Forwarded(heap, base))
}

func TestHeaderFieldRef(t *testing.T) {
	heap := make([]byte, 256)
	base := 0
	fieldOffset := 32

	assert.Equal(t, Ref(0), FieldRef(heap, base, fieldOffset))

	SetFieldRef(heap, base, fieldOffset, Ref(48))
	assert.Equal(t, Ref(48), FieldRef(heap, base, fieldOffset))

	SetFieldRef(heap, base, fieldOffset, Null)
	assert.Equal(t, Null, FieldRef(heap, base, fieldOffset))
}

func TestStringLengthAndPayload(t *testing.T) {
	heap := make([]byte, 256)
	base := 0

	SetClassID(heap, base, StringClassID)
	SetLength(heap, base, 11)
	require.Equal(t, uint32(11), Length(heap, base))

	payload := StringPayload(heap, base)
	require.Len(t, payload, 11)

	copy(payload, "hi mom")
	payload[6] = 0

	assert.Equal(t, byte('h'), heap[base+HeaderSize])
	assert.Equal(t, byte(0), heap[base+HeaderSize+6])
}

func TestHeaderSizeConstant(t *testing.T) {
	assert.Equal(t, 32, HeaderSize)
}
