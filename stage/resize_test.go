package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeCoordinatorLatchesLatest(t *testing.T) {
	var r resizeCoordinator

	r.OnResize(640, 360)
	r.OnResize(1280, 720)

	assert.True(t, r.pending)
	assert.Equal(t, uint32(1280), r.pendingWidth)
	assert.Equal(t, uint32(720), r.pendingHeight)
}

func TestResizeCoordinatorNoPending(t *testing.T) {
	var r resizeCoordinator

	// nothing pending, view and targets are never touched
	require.NoError(t, r.apply(nil, nil))

	width, height := r.Size()
	assert.Equal(t, uint32(0), width)
	assert.Equal(t, uint32(0), height)
}

func TestResizeCoordinatorDefersZeroSize(t *testing.T) {
	var r resizeCoordinator
	r.appliedWidth = 1280
	r.appliedHeight = 720

	// minimized window, the event stays pending and the size is kept
	r.OnResize(0, 0)
	require.NoError(t, r.apply(nil, nil))

	assert.True(t, r.pending)

	width, height := r.Size()
	assert.Equal(t, uint32(1280), width)
	assert.Equal(t, uint32(720), height)
}

func TestResizeCoordinatorSkipsIdenticalSize(t *testing.T) {
	var r resizeCoordinator
	r.appliedWidth = 1280
	r.appliedHeight = 720

	// same size again, nothing to reconfigure
	r.OnResize(1280, 720)
	require.NoError(t, r.apply(nil, nil))

	assert.False(t, r.pending)
}
