package stage

import (
	"fmt"
	"sort"

	"github.com/oliverbestmann/prism/prism"
)

// Render order of the built-in passes. Scene passes run strictly before the
// composite pass, the ordering edge guarantees every dimension target is
// fully written before it is sampled.
const (
	SceneOrder     = -1
	CompositeOrder = 0
)

// Frame carries the per-frame state every pass can read.
type Frame struct {
	Ctx     *prism.Context
	View    *prism.View
	Targets *prism.Targets

	// Total time in seconds since the first frame
	Time float32

	// Delta time to the previous frame in seconds
	Delta float32

	// Number of frames rendered so far
	Count uint32
}

// Pass is a node in the per-frame graph.
type Pass interface {
	Name() string

	// Order determines when the pass runs within a frame. Lower values run
	// first, ties run in registration order.
	Order() int

	Run(frame *Frame) error
}

// Graph executes all registered passes once per frame in ascending order.
// Passes never run concurrently, the whole graph is synchronous within the
// frame callback.
type Graph struct {
	passes []Pass
	sorted bool
}

func (g *Graph) Add(pass Pass) {
	g.passes = append(g.passes, pass)
	g.sorted = false
}

func (g *Graph) Len() int {
	return len(g.passes)
}

func (g *Graph) Run(frame *Frame) error {
	if !g.sorted {
		sort.SliceStable(g.passes, func(i, j int) bool {
			return g.passes[i].Order() < g.passes[j].Order()
		})

		g.sorted = true
	}

	for _, pass := range g.passes {
		if err := pass.Run(frame); err != nil {
			return fmt.Errorf("pass %q: %w", pass.Name(), err)
		}
	}

	return nil
}
