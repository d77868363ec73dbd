package compose

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/prism/prism"
)

//go:embed composite.wgsl
var compositeShaderCode string

// MaxTextureCount is the number of texture slots in the composite shader
// contract. The shader declares exactly this many texture bindings,
// changing the value requires adjusting composite.wgsl as well.
const MaxTextureCount = 2

// binding indices of the composite bind group. Texture slot i sits at
// binding 1+i, the sampler follows the last texture slot.
const (
	globalsBinding = 0
	textureBinding = 1
	samplerBinding = textureBinding + MaxTextureCount
)

// Status is the outcome of a composite draw for one frame.
type Status int

const (
	// Skipped means a precondition was unmet and no draw was issued. This
	// is expected during startup and resizes, the next frame retries from
	// scratch.
	Skipped Status = iota

	// Drawn means the full-screen composite pass was encoded and submitted.
	Drawn
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "Skipped"
	case Drawn:
		return "Drawn"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Composite is the full-screen pass that samples the offscreen dimension
// textures of a compositing camera and writes the visible frame.
//
// The only state kept across frames is the compiled pipeline, everything
// else is rebuilt per draw.
type Composite struct {
	ctx     *prism.Context
	globals *Globals

	pipelineCache *prism.PipelineCache[compositePipelineConfig]

	// composite intensity, the shader's blend weight for the secondary
	// dimension
	Intensity float32
}

func NewComposite(ctx *prism.Context, globals *Globals) *Composite {
	return &Composite{
		ctx:           ctx,
		globals:       globals,
		pipelineCache: prism.NewPipelineCache[compositePipelineConfig](ctx),
		Intensity:     0.02,
	}
}

// Draw runs the composite pass for one camera and one frame.
//
// The camera's dimension registry is read first, every frame. If the
// registry is empty, or any referenced target cannot currently be resolved,
// or the view has no configured ping-pong pair yet, the frame is skipped
// without an error. An error is only returned for configuration failures
// (shader compile, pipeline build), which are fatal to the caller.
func (c *Composite) Draw(view *prism.View, targets *prism.Targets, dims *prism.Dimensions) (Status, error) {
	if dims == nil || dims.Len() == 0 {
		return Skipped, nil
	}

	handles := dims.Bindings(MaxTextureCount)

	var first *prism.Texture

	views := make([]*wgpu.TextureView, 0, MaxTextureCount)
	for _, handle := range handles {
		texture, ok := targets.Resolve(handle)
		if !ok {
			// mid-resize or released, retry next frame
			return Skipped, nil
		}

		if first == nil {
			first = texture
		}

		views = append(views, texture.ToWGPUTextureView())
	}

	// the sampler of the first resolved texture serves all slots
	sampler, err := first.Sampler(c.ctx)
	if err != nil {
		return Skipped, fmt.Errorf("get dimension sampler: %w", err)
	}

	// Acquire the ping-pong pair. This pass does not sample the source,
	// but acquiring it performs the texture-swap bookkeeping later passes
	// rely on.
	_, destination, ok := view.PostProcessWrite()
	if !ok {
		return Skipped, nil
	}

	pipeline, err := c.pipelineCache.Get(compositePipelineConfig{
		TargetFormat: destination.Format(),
	})
	if err != nil {
		return Skipped, fmt.Errorf("get composite pipeline: %w", err)
	}

	// The bind group is rebuilt every frame. The destination alternates
	// between the two halves of the ping-pong pair, a cached bind group
	// would reference a stale target every other frame.
	entries := make([]wgpu.BindGroupEntry, 0, MaxTextureCount+2)

	entries = append(entries, wgpu.BindGroupEntry{
		Binding: globalsBinding,
		Buffer:  c.globals.Buffer(),
		Size:    wgpu.WholeSize,
	})

	for idx, textureView := range views {
		entries = append(entries, wgpu.BindGroupEntry{
			Binding:     uint32(textureBinding + idx),
			TextureView: textureView,
		})
	}

	entries = append(entries, wgpu.BindGroupEntry{
		Binding: samplerBinding,
		Sampler: sampler,
	})

	bindGroup, err := c.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Composite.BindGroup",
		Layout:  pipeline.GetBindGroupLayout(0),
		Entries: entries,
	})

	if err != nil {
		return Skipped, fmt.Errorf("create composite bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := c.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return Skipped, err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassComposite",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       destination.ToWGPUTextureView(),
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	})

	passGuard := prism.NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)

	// one full-screen triangle, no vertex buffer
	pass.Draw(3, 1, 0, 0)

	if err := pass.End(); err != nil {
		return Skipped, err
	}

	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return Skipped, err
	}

	defer cmdBuffer.Release()

	queue := c.ctx.GetQueue()
	defer queue.Release()

	queue.Submit(cmdBuffer)

	return Drawn, nil
}

type compositePipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf compositePipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for composite",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Composite.ShaderSource",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: compositeShaderCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compile composite shader: %w", err)
	}

	defer shader.Release()

	pipeline, err := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Composite.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})

	if err != nil {
		return nil, fmt.Errorf("build composite pipeline: %w", err)
	}

	return pipeline, nil
}
