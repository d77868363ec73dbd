package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandles(n int) []TargetHandle {
	handles := make([]TargetHandle, n)
	for i := range handles {
		handles[i] = TargetHandle{index: uint32(i), generation: 1}
	}

	return handles
}

func TestDimensionsRotateNext(t *testing.T) {
	handles := testHandles(3)
	dims := NewDimensions(handles...)

	require.Equal(t, 0, dims.Selected())

	dims.RotateNext()
	assert.Equal(t, 1, dims.Selected())

	dims.RotateNext()
	assert.Equal(t, 2, dims.Selected())

	dims.RotateNext()
	assert.Equal(t, 0, dims.Selected())
}

func TestDimensionsRotateEmpty(t *testing.T) {
	dims := NewDimensions()

	dims.RotateNext()
	assert.Equal(t, 0, dims.Selected())
	assert.Equal(t, 0, dims.Len())
}

func TestDimensionsBindingsSelectedFirst(t *testing.T) {
	handles := testHandles(2)
	dims := NewDimensions(handles...)

	// selected entry always occupies the first slot
	assert.Equal(t, []TargetHandle{handles[0], handles[1]}, dims.Bindings(2))

	dims.RotateNext()
	assert.Equal(t, []TargetHandle{handles[1], handles[0]}, dims.Bindings(2))

	dims.RotateNext()
	assert.Equal(t, []TargetHandle{handles[0], handles[1]}, dims.Bindings(2))
}

func TestDimensionsBindingsRepeatToFill(t *testing.T) {
	handles := testHandles(1)
	dims := NewDimensions(handles...)

	// a single entry fills every slot
	assert.Equal(t, []TargetHandle{handles[0], handles[0]}, dims.Bindings(2))
}

func TestDimensionsBindingsWindow(t *testing.T) {
	handles := testHandles(4)
	dims := NewDimensions(handles...)

	dims.RotateNext()
	dims.RotateNext()
	dims.RotateNext()

	// the window wraps around the end of the entry list
	assert.Equal(t, []TargetHandle{handles[3], handles[0]}, dims.Bindings(2))
}

func TestDimensionsBindingsEmpty(t *testing.T) {
	dims := NewDimensions()
	assert.Nil(t, dims.Bindings(2))
}
