package compose

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/prism/prism"
)

// globalsUniform is the frame-global data visible to the composite shader.
// Layout must match the Globals struct in composite.wgsl.
type globalsUniform struct {
	Time       float32
	DeltaTime  float32
	FrameCount uint32
	Intensity  float32
}

// Globals owns the uniform buffer holding per-frame global values. It is
// written once per frame before any composite draw.
type Globals struct {
	ctx *prism.Context
	buf *wgpu.Buffer
}

func NewGlobals(ctx *prism.Context) (*Globals, error) {
	buf, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Composite.Globals",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(globalsUniform{})),
	})

	if err != nil {
		return nil, fmt.Errorf("create globals uniform: %w", err)
	}

	return &Globals{ctx: ctx, buf: buf}, nil
}

func (g *Globals) Update(time, deltaTime float32, frameCount uint32, intensity float32) error {
	values := globalsUniform{
		Time:       time,
		DeltaTime:  deltaTime,
		FrameCount: frameCount,
		Intensity:  intensity,
	}

	queue := g.ctx.GetQueue()
	defer queue.Release()

	err := queue.WriteBuffer(g.buf, 0, prism.AsByteSlice(&values))
	if err != nil {
		return fmt.Errorf("update globals uniform: %w", err)
	}

	return nil
}

func (g *Globals) Buffer() *wgpu.Buffer {
	return g.buf
}
