package prism

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Draw only batches; nothing hits the gpu until a non-empty Flush.

func TestQuadDrawDefaultsBlendState(t *testing.T) {
	q := &QuadCommand{}
	dest := &RenderTarget{Format: TargetFormat, Width: 100, Height: 100}

	require.NoError(t, q.Draw(dest, DrawQuadOptions{Color: ColorWhite}))

	assert.Equal(t, BlendStateAlphaBlending, q.batchConfig.blendState)
	assert.Len(t, q.instances, 1)
}

func TestQuadDrawKeepsExplicitBlendState(t *testing.T) {
	q := &QuadCommand{}
	dest := &RenderTarget{Format: TargetFormat, Width: 100, Height: 100}

	require.NoError(t, q.Draw(dest, DrawQuadOptions{
		Color:      ColorWhite,
		BlendState: wgpu.BlendStateReplace,
	}))

	assert.Equal(t, wgpu.BlendStateReplace, q.batchConfig.blendState)
}

func TestQuadDrawBatchesSameConfig(t *testing.T) {
	q := &QuadCommand{}
	dest := &RenderTarget{Format: TargetFormat, Width: 100, Height: 100}

	require.NoError(t, q.Draw(dest, DrawQuadOptions{Color: ColorRed}))
	require.NoError(t, q.Draw(dest, DrawQuadOptions{Color: ColorBlue}))

	assert.Len(t, q.instances, 2)
}
