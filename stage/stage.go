package stage

import (
	"github.com/oliverbestmann/prism/glimpse"
	"github.com/oliverbestmann/prism/glm"
	"github.com/oliverbestmann/prism/prism"
	"github.com/oliverbestmann/prism/prism/compose"
)

// Stage wires the window, the GPU context and the per-frame pass graph
// together. A Game builds its scene passes and compositing cameras on the
// Stage during Initialize.
type Stage struct {
	Window  glimpse.Window
	Ctx     *prism.Context
	View    *prism.View
	Targets *prism.Targets

	graph  Graph
	times  FrameTimes
	resize resizeCoordinator

	clearCmd  *prism.ClearCommand
	quadCmd   *prism.QuadCommand
	blitCmd   *prism.BlitCommand
	globals   *compose.Globals
	composite *compose.Composite

	game        Game
	initialized bool
}

func newStage(win glimpse.Window, ctx *prism.Context, view *prism.View, targets *prism.Targets, game Game) *Stage {
	quadCmd, err := prism.NewQuadCommand(ctx)
	handle(err, "initialize quad command")

	globals, err := compose.NewGlobals(ctx)
	handle(err, "initialize globals uniform")

	return &Stage{
		Window:  win,
		Ctx:     ctx,
		View:    view,
		Targets: targets,

		clearCmd:  prism.NewClear(ctx),
		quadCmd:   quadCmd,
		blitCmd:   prism.NewBlitCommand(ctx),
		globals:   globals,
		composite: compose.NewComposite(ctx, globals),

		game: game,
	}
}

// Time returns the total time since the first frame in seconds.
func (st *Stage) Time() float32 {
	return float32(st.times.Total.Seconds())
}

// Delta returns the frame delta time in seconds.
func (st *Stage) Delta() float32 {
	return float32(st.times.Delta.Seconds())
}

// AddPass registers a custom pass with the frame graph.
func (st *Stage) AddPass(pass Pass) {
	st.graph.Add(pass)
}

// AddScenePass registers a scene pass rendering one dimension into its
// offscreen target. Scene passes run strictly before any composite node.
func (st *Stage) AddScenePass(opts ScenePassOptions) *ScenePass {
	camera := opts.Camera
	if camera == (glm.Mat3f{}) {
		camera = glm.IdentityMat3[float32]()
	}

	pass := &ScenePass{
		name:    opts.Name,
		target:  opts.Target,
		clear:   opts.ClearColor,
		camera:  camera,
		content: opts.Content,

		clearCmd: st.clearCmd,
		quadCmd:  st.quadCmd,
	}

	st.graph.Add(pass)

	return pass
}

// AddCompositeNode registers the compositing camera owning the given
// dimension registry. It runs after all scene passes.
func (st *Stage) AddCompositeNode(name string, dims *prism.Dimensions) *CompositeNode {
	node := &CompositeNode{
		name:      name,
		dims:      dims,
		composite: st.composite,
	}

	st.graph.Add(node)

	return node
}

// SetCompositeIntensity sets the blend weight the composite shader applies
// to the secondary dimension.
func (st *Stage) SetCompositeIntensity(intensity float32) {
	st.composite.Intensity = intensity
}
