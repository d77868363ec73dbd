package stage

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/prism/prism"
	"github.com/oliverbestmann/prism/prism/compose"
)

// CompositeNode is the graph node of a compositing camera. It owns the
// camera's dimension registry and runs the composite pass after all scene
// passes completed.
type CompositeNode struct {
	name      string
	dims      *prism.Dimensions
	composite *compose.Composite
}

func (n *CompositeNode) Name() string {
	return n.name
}

func (n *CompositeNode) Order() int {
	return CompositeOrder
}

// Dimensions returns the camera's registry, e.g. to rotate the selection
// from an input handler.
func (n *CompositeNode) Dimensions() *prism.Dimensions {
	return n.dims
}

func (n *CompositeNode) Run(frame *Frame) error {
	status, err := n.composite.Draw(frame.View, frame.Targets, n.dims)
	if err != nil {
		// configuration failure, the composite pass can never work
		return fmt.Errorf("composite: %w", err)
	}

	if status == compose.Skipped {
		slog.Debug("Composite pass skipped", slog.String("pass", n.name))
	}

	return nil
}
