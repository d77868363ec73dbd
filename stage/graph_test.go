package stage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPass struct {
	name  string
	order int
	err   error

	log *[]string
}

func (p *recordedPass) Name() string {
	return p.name
}

func (p *recordedPass) Order() int {
	return p.order
}

func (p *recordedPass) Run(frame *Frame) error {
	*p.log = append(*p.log, p.name)
	return p.err
}

func TestGraphRunsInOrder(t *testing.T) {
	var log []string

	var graph Graph
	graph.Add(&recordedPass{name: "composite", order: CompositeOrder, log: &log})
	graph.Add(&recordedPass{name: "scene.a", order: SceneOrder, log: &log})
	graph.Add(&recordedPass{name: "scene.b", order: SceneOrder, log: &log})

	require.NoError(t, graph.Run(&Frame{}))

	// scene passes run before the composite, ties keep registration order
	assert.Equal(t, []string{"scene.a", "scene.b", "composite"}, log)
}

func TestGraphOrderIsStableAcrossRuns(t *testing.T) {
	var log []string

	var graph Graph
	graph.Add(&recordedPass{name: "scene.a", order: SceneOrder, log: &log})
	graph.Add(&recordedPass{name: "composite", order: CompositeOrder, log: &log})

	require.NoError(t, graph.Run(&Frame{}))
	require.NoError(t, graph.Run(&Frame{}))

	assert.Equal(t, []string{"scene.a", "composite", "scene.a", "composite"}, log)
}

func TestGraphWrapsPassError(t *testing.T) {
	var log []string

	failure := errors.New("boom")

	var graph Graph
	graph.Add(&recordedPass{name: "scene.a", order: SceneOrder, err: failure, log: &log})
	graph.Add(&recordedPass{name: "composite", order: CompositeOrder, log: &log})

	err := graph.Run(&Frame{})
	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "scene.a")

	// the failing pass stops the frame
	assert.Equal(t, []string{"scene.a"}, log)
}

func TestGraphAddAfterRun(t *testing.T) {
	var log []string

	var graph Graph
	graph.Add(&recordedPass{name: "composite", order: CompositeOrder, log: &log})

	require.NoError(t, graph.Run(&Frame{}))

	graph.Add(&recordedPass{name: "scene.a", order: SceneOrder, log: &log})

	log = log[:0]
	require.NoError(t, graph.Run(&Frame{}))

	assert.Equal(t, []string{"scene.a", "composite"}, log)
	assert.Equal(t, 2, graph.Len())
}
