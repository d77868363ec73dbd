package prism

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// TargetFormat is the color format of all offscreen targets. It matches the
// surface format so a target can be sampled by the composite pass and
// blitted to the screen without conversion.
const TargetFormat = wgpu.TextureFormatBGRA8UnormSrgb

var errStaleHandle = errors.New("stale target handle")

// TargetHandle addresses an offscreen target inside a Targets arena. The
// handle stays valid across resizes; the generation detects use of a handle
// whose slot was released and reused.
type TargetHandle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether the handle was never assigned by Allocate.
func (h TargetHandle) IsZero() bool {
	return h.generation == 0
}

type targetSlot struct {
	texture    *Texture
	generation uint32
}

// Targets owns the backing storage of all offscreen render targets. Holders
// of a TargetHandle never own the texture, they resolve it per frame.
type Targets struct {
	create targetFactory
	slots  []targetSlot
}

type targetFactory func(width, height uint32) (*Texture, error)

func NewTargets(ctx *Context) *Targets {
	return NewTargetsFrom(func(width, height uint32) (*Texture, error) {
		return NewTexture(ctx, NewTextureOptions{
			Label:  "OffscreenTarget",
			Format: TargetFormat,
			Width:  width,
			Height: height,
		})
	})
}

// NewTargetsFrom creates an arena whose backing textures come from the
// given factory. Handle bookkeeping can run against any texture source,
// tests inject one that needs no gpu device.
func NewTargetsFrom(create func(width, height uint32) (*Texture, error)) *Targets {
	return &Targets{create: create}
}

// Allocate creates a new offscreen target of the given size.
func (t *Targets) Allocate(width, height uint32) (TargetHandle, error) {
	if width == 0 || height == 0 {
		return TargetHandle{}, fmt.Errorf("allocate target with degenerate size %dx%d", width, height)
	}

	texture, err := t.create(width, height)
	if err != nil {
		return TargetHandle{}, fmt.Errorf("allocate offscreen target: %w", err)
	}

	// reuse a released slot if there is one
	for idx := range t.slots {
		if t.slots[idx].texture == nil {
			t.slots[idx].texture = texture
			t.slots[idx].generation += 1

			return TargetHandle{
				index:      uint32(idx),
				generation: t.slots[idx].generation,
			}, nil
		}
	}

	t.slots = append(t.slots, targetSlot{
		texture:    texture,
		generation: 1,
	})

	return TargetHandle{
		index:      uint32(len(t.slots) - 1),
		generation: 1,
	}, nil
}

// Resolve returns the texture currently backing the handle. It returns
// false for stale or zero handles. Callers must treat false as transient
// and retry next frame.
func (t *Targets) Resolve(handle TargetHandle) (*Texture, bool) {
	slot, ok := t.slot(handle)
	if !ok || slot.texture == nil {
		return nil, false
	}

	return slot.texture, true
}

// Resize replaces the backing storage of the handle in place. The handle
// stays valid, all holders keep working without re-registration. A size
// with a zero dimension is a no-op, callers must expect this while the
// window is minimized. The previous texture is released only after the new
// allocation succeeded.
func (t *Targets) Resize(handle TargetHandle, width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}

	slot, ok := t.slot(handle)
	if !ok {
		return errStaleHandle
	}

	previous := slot.texture
	if previous != nil && previous.Width() == width && previous.Height() == height {
		return nil
	}

	texture, err := t.create(width, height)
	if err != nil {
		return fmt.Errorf("resize offscreen target to %dx%d: %w", width, height, err)
	}

	slot.texture = texture

	if previous != nil {
		previous.Release()
	}

	return nil
}

// ResizeAll resizes every live target to the given size.
func (t *Targets) ResizeAll(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}

	slog.Debug("Resize offscreen targets",
		slog.Int("count", t.Len()),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	for idx := range t.slots {
		slot := &t.slots[idx]
		if slot.texture == nil {
			continue
		}

		handle := TargetHandle{index: uint32(idx), generation: slot.generation}
		if err := t.Resize(handle, width, height); err != nil {
			return err
		}
	}

	return nil
}

// Release frees the target's backing storage. Resolving the handle after
// this returns false.
func (t *Targets) Release(handle TargetHandle) {
	slot, ok := t.slot(handle)
	if !ok || slot.texture == nil {
		return
	}

	slot.texture.Release()
	slot.texture = nil
}

// ReleaseAll frees every live target. Used at application teardown.
func (t *Targets) ReleaseAll() {
	for idx := range t.slots {
		if t.slots[idx].texture != nil {
			t.slots[idx].texture.Release()
			t.slots[idx].texture = nil
		}
	}
}

// Len returns the number of live targets.
func (t *Targets) Len() int {
	var n int

	for idx := range t.slots {
		if t.slots[idx].texture != nil {
			n += 1
		}
	}

	return n
}

func (t *Targets) slot(handle TargetHandle) (*targetSlot, bool) {
	if handle.IsZero() || int(handle.index) >= len(t.slots) {
		return nil, false
	}

	slot := &t.slots[handle.index]
	if slot.generation != handle.generation {
		return nil, false
	}

	return slot, true
}
