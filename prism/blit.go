package prism

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed blit.wgsl
var blitShaderCode string

// BlitCommand draws a source texture to a render target with a single
// full-screen triangle. Used to bring the view's current main texture onto
// the acquired surface texture at the end of a frame.
type BlitCommand struct {
	ctx           *Context
	pipelineCache *PipelineCache[blitPipelineConfig]
}

func NewBlitCommand(ctx *Context) *BlitCommand {
	return &BlitCommand{
		ctx:           ctx,
		pipelineCache: NewPipelineCache[blitPipelineConfig](ctx),
	}
}

func (b *BlitCommand) Draw(dest *RenderTarget, source *Texture) error {
	pipeline, err := b.pipelineCache.Get(blitPipelineConfig{
		TargetFormat: dest.Format,
	})
	if err != nil {
		return fmt.Errorf("get blit pipeline: %w", err)
	}

	sampler, err := source.Sampler(b.ctx)
	if err != nil {
		return fmt.Errorf("get source sampler: %w", err)
	}

	bindGroup, err := b.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Blit.BindGroup",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: source.ToWGPUTextureView(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
		},
	})

	if err != nil {
		return err
	}

	defer bindGroup.Release()

	encoder, err := b.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassBlit",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       dest.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	queue := b.ctx.GetQueue()
	defer queue.Release()

	queue.Submit(cmdBuffer)

	return nil
}

type blitPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf blitPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for blit",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Blit.ShaderSource",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: blitShaderCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compile blit shader: %w", err)
	}

	defer shader.Release()

	pipeline, err := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Blit.%s", conf.TargetFormat),
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
		return nil, fmt.Errorf("build blit pipeline: %w", err)
	}

	return pipeline, nil
}
