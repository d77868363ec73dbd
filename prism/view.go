package prism

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View holds the surface configuration and the pair of offscreen "main"
// textures a frame is rendered into before it is blitted to the surface.
//
// The pair is a ping-pong: a post-process pass samples the current main
// texture (the source) and writes the other one (the destination), then the
// pair flips so later passes see the destination as the new main texture.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	main    [2]*Texture
	current int
}

func NewView(dev *Context) *View {
	st := &View{Context: dev}

	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      TargetFormat,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	return st
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

// Configure reconfigures the surface and reallocates the ping-pong pair for
// the new size. Contents of the pair are undefined afterwards.
func (vs *View) Configure(width, height uint32) error {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)

	vs.ReleaseTextures()

	for idx := range vs.main {
		texture, err := NewTexture(vs.Context, NewTextureOptions{
			Label:  fmt.Sprintf("ViewMain.%d", idx),
			Format: vs.surfaceConfig.Format,
			Width:  width,
			Height: height,
			Usage:  wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		})

		if err != nil {
			vs.ReleaseTextures()
			return fmt.Errorf("create view main texture: %w", err)
		}

		vs.main[idx] = texture
	}

	vs.current = 0

	return nil
}

// Main returns the texture holding the latest rendered frame, or false if
// the view was not configured yet.
func (vs *View) Main() (*Texture, bool) {
	texture := vs.main[vs.current]
	return texture, texture != nil
}

// PostProcessWrite returns the current main texture as the source and the
// other half of the pair as the destination, then flips the pair. The
// caller must write the destination, the flip happens even if it does not,
// and the previous frame content would be shown again.
func (vs *View) PostProcessWrite() (source, destination *Texture, ok bool) {
	if vs.main[0] == nil || vs.main[1] == nil {
		return nil, nil, false
	}

	source = vs.main[vs.current]
	vs.current = 1 - vs.current
	destination = vs.main[vs.current]

	return source, destination, true
}

func (vs *View) ReleaseTextures() {
	for idx := range vs.main {
		if vs.main[idx] != nil {
			vs.main[idx].Release()
			vs.main[idx] = nil
		}
	}
}
