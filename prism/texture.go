package prism

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/prism/glm"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	width  uint32
	height uint32

	// sampler settings used when this texture is sampled by a
	// full-screen pass
	samplerDesc wgpu.SamplerDescriptor
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32

	Usage wgpu.TextureUsage
	Label string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	usage := opts.Usage
	if usage == 0 {
		// allow to do almost everything with this texture
		usage = wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageRenderAttachment |
			wgpu.TextureUsageCopyDst |
			wgpu.TextureUsageCopySrc
	}

	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: usage,
	}

	return NewTextureFromDesc(ctx, desc)
}

// NewTextureFromDesc gives you full control and creates a texture directly
// from a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, fmt.Errorf("create texture view: %w", err)
	}

	return &Texture{
		texture:     texture,
		textureView: textureView,

		format: desc.Format,
		width:  desc.Size.Width,
		height: desc.Size.Height,

		samplerDesc: defaultSamplerDesc,
	}, nil
}

// WrapTexture creates a Texture from an existing wgpu.Texture and
// wgpu.TextureView, e.g. the texture acquired from the surface.
func WrapTexture(texture *wgpu.Texture, textureView *wgpu.TextureView) *Texture {
	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      texture.GetFormat(),
		width:       texture.GetWidth(),
		height:      texture.GetHeight(),
		samplerDesc: defaultSamplerDesc,
	}
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) Size() glm.Vec2u {
	return glm.Vec2u{t.width, t.height}
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) ToWGPUTexture() *wgpu.Texture {
	return t.texture
}

func (t *Texture) ToWGPUTextureView() *wgpu.TextureView {
	return t.textureView
}

// Sampler returns the cached sampler associated with this texture.
// The sampler is owned by the sampler cache, do not release it.
func (t *Texture) Sampler(ctx *Context) (*wgpu.Sampler, error) {
	return CachedSampler(ctx.Device, t.samplerDesc)
}

func (t *Texture) AsRenderTarget() *RenderTarget {
	return &RenderTarget{
		View:   t.textureView,
		Format: t.format,
		Width:  t.width,
		Height: t.height,
	}
}

// Release releases the texture and its view. You must be sure to not use
// the texture after calling release.
func (t *Texture) Release() {
	if t.textureView != nil {
		t.textureView.Release()
		t.textureView = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
