package stage

import (
	"github.com/oliverbestmann/prism/glimpse"
	"github.com/oliverbestmann/prism/prism"
)

var currentWindow global[glimpse.Window]
var currentContext global[*prism.Context]
var currentView global[*prism.View]
var currentInputState global[glimpse.InputState]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after Run")
	}

	return g.value
}

// CurrentContext exposes the current webgpu context. This can be used
// to build your own pipelines and render passes.
func CurrentContext() *prism.Context {
	return currentContext.Get()
}

// CurrentWindow exposes the window the run loop renders into.
func CurrentWindow() glimpse.Window {
	return currentWindow.Get()
}

// CurrentView exposes the current view state, including the surface
// configuration and the post-process pair.
func CurrentView() *prism.View {
	return currentView.Get()
}
