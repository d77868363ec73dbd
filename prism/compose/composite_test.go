package compose

import (
	"testing"

	"github.com/oliverbestmann/prism/prism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every skip precondition returns before any gpu work, so a zero-value
// Composite is enough to pin the skip paths.

func TestCompositeSkipsNilRegistry(t *testing.T) {
	c := &Composite{}

	status, err := c.Draw(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)
}

func TestCompositeSkipsEmptyRegistry(t *testing.T) {
	c := &Composite{}

	status, err := c.Draw(nil, nil, prism.NewDimensions())
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)
}

func TestCompositeSkipsUnresolvableTarget(t *testing.T) {
	c := &Composite{}

	// a handle no arena ever issued resolves to nothing
	dims := prism.NewDimensions(prism.TargetHandle{})

	status, err := c.Draw(nil, &prism.Targets{}, dims)
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)
}

func TestCompositeSkipsReleasedTarget(t *testing.T) {
	targets := prism.NewTargetsFrom(func(width, height uint32) (*prism.Texture, error) {
		return &prism.Texture{}, nil
	})

	handle, err := targets.Allocate(1280, 720)
	require.NoError(t, err)

	dims := prism.NewDimensions(handle)
	targets.Release(handle)

	c := &Composite{}

	status, err := c.Draw(nil, targets, dims)
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Skipped", Skipped.String())
	assert.Equal(t, "Drawn", Drawn.String())
}
