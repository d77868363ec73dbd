package stage

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/prism/prism"
)

// resizeCoordinator latches resize events from the window and applies the
// most recent one at the next frame boundary, before any pass runs. Resize
// never interleaves with a frame's pass sequence.
type resizeCoordinator struct {
	pendingWidth  uint32
	pendingHeight uint32
	pending       bool

	appliedWidth  uint32
	appliedHeight uint32
}

// OnResize records a resize event. Safe to call multiple times per frame,
// only the latest size is applied. Must be called from the frame goroutine,
// glfw delivers events during PollEvents.
func (r *resizeCoordinator) OnResize(width, height uint32) {
	r.pendingWidth = width
	r.pendingHeight = height
	r.pending = true
}

// Size returns the currently applied surface size.
func (r *resizeCoordinator) Size() (uint32, uint32) {
	return r.appliedWidth, r.appliedHeight
}

// apply reconfigures the view and resizes every registered offscreen target
// to the pending size. A zero-area size stays pending and is not an error,
// the window is minimized and a later event will restore it. Repeated
// identical sizes are applied idempotently.
func (r *resizeCoordinator) apply(view *prism.View, targets *prism.Targets) error {
	if !r.pending {
		return nil
	}

	width, height := r.pendingWidth, r.pendingHeight
	if width == 0 || height == 0 {
		// minimized, defer until a usable size arrives
		return nil
	}

	r.pending = false

	if width == r.appliedWidth && height == r.appliedHeight {
		return nil
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	if err := view.Configure(width, height); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}

	if err := targets.ResizeAll(width, height); err != nil {
		return fmt.Errorf("resize offscreen targets: %w", err)
	}

	r.appliedWidth = width
	r.appliedHeight = height

	return nil
}
