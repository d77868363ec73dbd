package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTargets builds a Targets arena backed by plain textures without any
// gpu resources. The counter observes how often the factory runs.
func fakeTargets() (*Targets, *int) {
	var created int

	targets := NewTargetsFrom(func(width, height uint32) (*Texture, error) {
		created += 1
		return &Texture{width: width, height: height}, nil
	})

	return targets, &created
}

func TestTargetsAllocateResolve(t *testing.T) {
	targets, _ := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)
	require.False(t, handle.IsZero())

	texture, ok := targets.Resolve(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(1280), texture.Width())
	assert.Equal(t, uint32(720), texture.Height())

	assert.Equal(t, 1, targets.Len())
}

func TestTargetsAllocateDegenerateSize(t *testing.T) {
	targets, created := fakeTargets()

	_, err := targets.Allocate(0, 720)
	require.Error(t, err)

	_, err = targets.Allocate(1280, 0)
	require.Error(t, err)

	assert.Equal(t, 0, *created)
}

func TestTargetsResolveZeroHandle(t *testing.T) {
	targets, _ := fakeTargets()

	_, ok := targets.Resolve(TargetHandle{})
	assert.False(t, ok)
}

func TestTargetsResizeKeepsHandle(t *testing.T) {
	targets, _ := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	require.NoError(t, targets.Resize(handle, 640, 360))

	texture, ok := targets.Resolve(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(640), texture.Width())
	assert.Equal(t, uint32(360), texture.Height())
}

func TestTargetsResizeSameSizeIsNoOp(t *testing.T) {
	targets, created := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)
	require.Equal(t, 1, *created)

	require.NoError(t, targets.Resize(handle, 1280, 720))
	assert.Equal(t, 1, *created)
}

func TestTargetsResizeZeroIsNoOp(t *testing.T) {
	targets, created := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	require.NoError(t, targets.Resize(handle, 0, 360))
	require.NoError(t, targets.Resize(handle, 640, 0))
	assert.Equal(t, 1, *created)

	texture, ok := targets.Resolve(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(1280), texture.Width())
	assert.Equal(t, uint32(720), texture.Height())
}

func TestTargetsResizeStaleHandle(t *testing.T) {
	targets, _ := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	stale := TargetHandle{index: handle.index, generation: handle.generation + 1}
	assert.Error(t, targets.Resize(stale, 640, 360))
}

func TestTargetsResizeAllRoundTrip(t *testing.T) {
	targets, _ := fakeTargets()

	first, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	second, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	require.NoError(t, targets.ResizeAll(640, 360))
	require.NoError(t, targets.ResizeAll(1280, 720))

	for _, handle := range []TargetHandle{first, second} {
		texture, ok := targets.Resolve(handle)
		require.True(t, ok)
		assert.Equal(t, uint32(1280), texture.Width())
		assert.Equal(t, uint32(720), texture.Height())
	}
}

func TestTargetsReleaseInvalidatesHandle(t *testing.T) {
	targets, _ := fakeTargets()

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	targets.Release(handle)

	_, ok := targets.Resolve(handle)
	assert.False(t, ok)
	assert.Equal(t, 0, targets.Len())

	// releasing twice must not panic
	targets.Release(handle)
}

func TestTargetsSlotReuseBumpsGeneration(t *testing.T) {
	targets, _ := fakeTargets()

	first, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	targets.Release(first)

	second, err := targets.Allocate(640, 360)
	require.NoError(t, err)

	// the slot is reused, the old handle must not see the new texture
	require.Equal(t, first.index, second.index)

	_, ok := targets.Resolve(first)
	assert.False(t, ok)

	texture, ok := targets.Resolve(second)
	require.True(t, ok)
	assert.Equal(t, uint32(640), texture.Width())
}

func TestTargetsReleaseAll(t *testing.T) {
	targets, _ := fakeTargets()

	first, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	second, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	targets.ReleaseAll()

	_, ok := targets.Resolve(first)
	assert.False(t, ok)

	_, ok = targets.Resolve(second)
	assert.False(t, ok)

	assert.Equal(t, 0, targets.Len())
}
