package prism

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/prism/glm"
)

//go:embed quad.wgsl
var quadShaderCode string

// maximum number of quad instances to render in one batch.
const maxQuadInstances = 64 * 1024

type quadBatchConfig struct {
	target     *RenderTarget
	blendState wgpu.BlendState
}

type quadInstance struct {
	Color Color

	// first and second row of the transposed affine
	ModelTransposedRow0 glm.Vec3f
	ModelTransposedRow1 glm.Vec3f
}

// QuadCommand renders batches of solid colored quads into a render target.
// This is the forward pass used by the per-dimension scene passes.
type QuadCommand struct {
	ctx *Context

	pipelineCache *PipelineCache[quadPipelineConfig]

	instances    []quadInstance
	bufInstances *wgpu.Buffer
	bufIndices   *wgpu.Buffer

	bufViewTransform *wgpu.Buffer

	batchConfig quadBatchConfig
}

func NewQuadCommand(ctx *Context) (*QuadCommand, error) {
	bufInstances, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad.Instances",
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(quadInstance{})) * maxQuadInstances,
	})

	if err != nil {
		return nil, fmt.Errorf("create instance buffer: %w", err)
	}

	bufIndices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Indices",
		Contents: wgpu.ToBytes([]uint16{2, 0, 1, 1, 3, 2}),
		Usage:    wgpu.BufferUsageIndex,
	})

	if err != nil {
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	bufViewTransform, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad.ViewUniform",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof([12]float32{})),
	})

	if err != nil {
		return nil, fmt.Errorf("create view transform uniform: %w", err)
	}

	p := &QuadCommand{
		ctx:              ctx,
		bufInstances:     bufInstances,
		bufIndices:       bufIndices,
		bufViewTransform: bufViewTransform,
	}

	p.pipelineCache = NewPipelineCache[quadPipelineConfig](ctx)

	return p, nil
}

type DrawQuadOptions struct {
	// Transform maps the centered unit quad into camera space
	Transform  glm.Mat3f
	Color      Color
	BlendState wgpu.BlendState
}

func (p *QuadCommand) Draw(dest *RenderTarget, opts DrawQuadOptions) error {
	blendState := opts.BlendState
	if blendState == (wgpu.BlendState{}) {
		// quad colors carry straight alpha
		blendState = BlendStateAlphaBlending
	}

	batchConfig := quadBatchConfig{
		target:     dest,
		blendState: blendState,
	}

	requireFlush := p.batchConfig != batchConfig ||
		len(p.instances)+1 > maxQuadInstances

	if requireFlush {
		if err := p.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		p.batchConfig = batchConfig
	}

	p.instances = append(p.instances, quadInstance{
		Color:               opts.Color,
		ModelTransposedRow0: opts.Transform.Row(0),
		ModelTransposedRow1: opts.Transform.Row(1),
	})

	return nil
}

func (p *QuadCommand) Flush() error {
	if len(p.instances) == 0 {
		return nil
	}

	defer p.reset()

	slog.Debug("Rendering quads", slog.Int("instanceCount", len(p.instances)))

	batchConfig := p.batchConfig

	queue := p.ctx.GetQueue()
	defer queue.Release()

	err := queue.WriteBuffer(p.bufInstances, 0, wgpu.ToBytes(p.instances))
	if err != nil {
		return fmt.Errorf("update instance buffer: %w", err)
	}

	pipelineConfig := quadPipelineConfig{
		TargetFormat: batchConfig.target.Format,
		BlendState:   batchConfig.blendState,
	}

	pipeline, err := p.pipelineCache.Get(pipelineConfig)
	if err != nil {
		return fmt.Errorf("get new pipeline: %w", err)
	}

	// map target pixel coordinates into the unit square, the shader
	// converts to clip space
	vw, vh := batchConfig.target.Width, batchConfig.target.Height
	viewTransform := glm.ScaleMat3(1/float32(vw), 1/float32(vh))

	viewTransformValues := viewTransform.ToWGPU()
	err = queue.WriteBuffer(p.bufViewTransform, 0, AsByteSlice(&viewTransformValues))
	if err != nil {
		return fmt.Errorf("update view transform buffer: %w", err)
	}

	bindGroupLayout := pipeline.GetBindGroupLayout(0)

	bindGroup, err := p.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Quad.BindGroup",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.bufViewTransform,
				Size:    wgpu.WholeSize,
			},
		},
	})

	if err != nil {
		return err
	}

	defer bindGroup.Release()

	encoder, err := p.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassQuad",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    batchConfig.target.View,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, p.bufInstances, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(p.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(6, uint32(len(p.instances)), 0, 0, 0)
	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	queue.Submit(cmdBuffer)

	return nil
}

func (p *QuadCommand) reset() {
	p.instances = p.instances[:0]
	p.batchConfig = quadBatchConfig{}
}

type quadPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
	BlendState   wgpu.BlendState
}

func (conf quadPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for quads",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Quad.ShaderSource",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: quadShaderCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compile quad shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Quad.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(quadInstance{})),
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{
							// color
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(quadInstance{}.Color)),
							ShaderLocation: 0,
						},
						{
							// transform, row0
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(quadInstance{}.ModelTransposedRow0)),
							ShaderLocation: 1,
						},
						{
							// transform, row1
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(quadInstance{}.ModelTransposedRow1)),
							ShaderLocation: 2,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &conf.BlendState,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build quad pipeline: %w", err)
	}

	return pipeline, nil
}
