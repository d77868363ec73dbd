package stage

import (
	"log/slog"

	"github.com/oliverbestmann/prism/glm"
	"github.com/oliverbestmann/prism/prism"
)

// QuadBatch collects the quads of one scene pass. Content callbacks draw in
// world coordinates, the batch applies the camera transform.
type QuadBatch struct {
	dest   *prism.RenderTarget
	camera glm.Mat3f
	quads  *prism.QuadCommand
	err    error
}

// Quad submits one solid colored quad. The transform maps the centered unit
// quad into world space.
func (b *QuadBatch) Quad(transform glm.Mat3f, color prism.Color) {
	if b.err != nil {
		return
	}

	b.err = b.quads.Draw(b.dest, prism.DrawQuadOptions{
		Transform: b.camera.Mul(transform),
		Color:     color,
	})
}

type ScenePassOptions struct {
	Name string

	// Target is the offscreen target this pass renders into. Exactly one
	// scene pass may render into a given target.
	Target prism.TargetHandle

	// ClearColor the target is cleared to before any content is drawn
	ClearColor prism.Color

	// Camera transforms world coordinates into target pixel coordinates,
	// relative to the target center. Defaults to identity.
	Camera glm.Mat3f

	// Content draws the layer of scene items assigned to this dimension
	Content func(batch *QuadBatch)
}

// ScenePass renders one dimension's scene subset into its offscreen target.
// Scene passes are mutually independent, they only share the frame's
// command queue.
type ScenePass struct {
	name    string
	target  prism.TargetHandle
	clear   prism.Color
	camera  glm.Mat3f
	content func(batch *QuadBatch)

	clearCmd *prism.ClearCommand
	quadCmd  *prism.QuadCommand
}

func (p *ScenePass) Name() string {
	return p.name
}

func (p *ScenePass) Order() int {
	return SceneOrder
}

func (p *ScenePass) Run(frame *Frame) error {
	texture, ok := frame.Targets.Resolve(p.target)
	if !ok {
		// target mid-resize or released, skip this frame
		slog.Debug("Skip scene pass", slog.String("pass", p.name))
		return nil
	}

	dest := texture.AsRenderTarget()

	if err := p.clearCmd.Clear(dest, p.clear); err != nil {
		return err
	}

	if p.content == nil {
		return nil
	}

	// place the world origin at the target center
	center := glm.TranslationMat3(float32(dest.Width)/2, float32(dest.Height)/2)

	batch := &QuadBatch{
		dest:   dest,
		camera: center.Mul(p.camera),
		quads:  p.quadCmd,
	}

	p.content(batch)

	if batch.err != nil {
		return batch.err
	}

	return p.quadCmd.Flush()
}
