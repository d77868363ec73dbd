package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// SetResizeHandler registers a handler that is invoked with the new
	// framebuffer size whenever the window is resized. The handler may be
	// invoked multiple times with the same size and with zero sizes while
	// the window is minimized.
	SetResizeHandler(handler func(width, height uint32))

	Run(render func(input UpdateInputState) error) error
	Terminate()
}
