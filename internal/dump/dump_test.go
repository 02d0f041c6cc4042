package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scigolib/mcgc/internal/core"
)

func TestRenderEmptyHeap(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})

	heap := make([]byte, 64)
	got := Render(heap, 0, classes)

	assert.Equal(t, "next_free=0\nobjects:\n", got)
}

func TestRenderSingleString(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})

	heap := make([]byte, 64)
	core.SetClassID(heap, 0, core.StringClassID)
	core.SetLength(heap, 0, 11)
	payload := core.StringPayload(heap, 0)
	copy(payload, "hi mom")
	payload[6] = 0

	got := Render(heap, core.HeaderSize+11, classes)

	assert.Equal(t, "next_free=43\nobjects:\n  0000:String[32+11]=\"hi mom\"\n", got)
}

func TestRenderFixedObjectWithFields(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})
	userID := classes.Register(core.ClassInfo{Name: "User", Size: 48, FieldOffsets: []int{32}})

	heap := make([]byte, 128)
	core.SetClassID(heap, 0, userID)
	core.SetFieldRef(heap, 0, 32, core.Ref(48))

	got := Render(heap, 48, classes)

	assert.Equal(t, "next_free=48\nobjects:\n  0000:User[48]->[48]\n", got)
}

func TestRenderNullFieldPrintsNULL(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})
	employeeID := classes.Register(core.ClassInfo{Name: "Employee", Size: 48, FieldOffsets: []int{32, 40}})

	heap := make([]byte, 128)
	core.SetClassID(heap, 0, employeeID)
	core.SetFieldRef(heap, 0, 32, core.Ref(48))
	core.SetFieldRef(heap, 0, 40, core.Null)

	got := Render(heap, 48, classes)

	assert.Equal(t, "next_free=48\nobjects:\n  0000:Employee[48]->[48,NULL]\n", got)
}

func TestRenderStopsAtUnregisteredClassID(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})

	heap := make([]byte, 64)
	// nextFree beyond the live region but no object header written there.
	got := Render(heap, 32, classes)

	assert.Equal(t, "next_free=32\nobjects:\n", got)
}

func TestRenderMultipleObjectsInOrder(t *testing.T) {
	classes := core.NewClassTable()
	classes.Register(core.ClassInfo{Name: "String", IsString: true})
	employeeID := classes.Register(core.ClassInfo{Name: "Employee", Size: 48, FieldOffsets: []int{32, 40}})

	heap := make([]byte, 256)

	core.SetClassID(heap, 0, employeeID)
	core.SetFieldRef(heap, 0, 32, core.Ref(48))
	core.SetFieldRef(heap, 0, 40, core.Null)

	core.SetClassID(heap, 48, core.StringClassID)
	core.SetLength(heap, 48, 4)
	copy(core.StringPayload(heap, 48), "Tom\x00")

	core.SetClassID(heap, 84, employeeID)
	core.SetFieldRef(heap, 84, 32, core.Ref(132))
	core.SetFieldRef(heap, 84, 40, core.Ref(0))

	core.SetClassID(heap, 132, core.StringClassID)
	core.SetLength(heap, 132, 11)
	copy(core.StringPayload(heap, 132), "Terence\x00")

	got := Render(heap, 175, classes)

	assert.Equal(t,
		"next_free=175\nobjects:\n"+
			"  0000:Employee[48]->[48,NULL]\n"+
			"  0048:String[32+4]=\"Tom\"\n"+
			"  0084:Employee[48]->[132,0]\n"+
			"  0132:String[32+11]=\"Terence\"\n",
		got)
}
