package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalSetGet(t *testing.T) {
	var g global[int]

	g.set(5)
	assert.Equal(t, 5, g.Get())
}

func TestGlobalGetBeforeSetPanics(t *testing.T) {
	var g global[int]

	assert.Panics(t, func() { g.Get() })
}

func TestGlobalSetTwicePanics(t *testing.T) {
	var g global[int]

	g.set(1)
	assert.Panics(t, func() { g.set(2) })
}

func TestGlobalReset(t *testing.T) {
	var g global[int]

	g.set(1)
	g.reset()

	assert.Panics(t, func() { g.Get() })

	g.set(2)
	assert.Equal(t, 2, g.Get())
}
