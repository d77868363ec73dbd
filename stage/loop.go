package stage

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/prism/glimpse"
	"github.com/oliverbestmann/prism/prism"
)

func loopOnce(st *Stage, inputState glimpse.UpdateInputState) error {
	if st.times.Tick() {
		slog.Debug("Frame stats",
			slog.Float64("fps", st.times.FPS()),
			slog.Duration("max", st.times.MaxDuration),
		)
	}

	currentInputState.reset()
	currentInputState.set(inputState())

	// apply any latched resize at the frame boundary. No pass observes a
	// size change mid frame.
	if err := st.resize.apply(st.View, st.Targets); err != nil {
		return fmt.Errorf("apply resize: %w", err)
	}

	if err := performGameUpdate(st); err != nil {
		return err
	}

	width, height := st.resize.Size()
	if width == 0 || height == 0 {
		// minimized, no usable surface to render to
		return nil
	}

	err := st.globals.Update(st.Time(), st.Delta(), uint32(st.times.FrameCount), st.composite.Intensity)
	if err != nil {
		return fmt.Errorf("update globals: %w", err)
	}

	// get the surface texture (the actual screen)
	surface, err := st.Ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if surface != nil {
			surface.Release()
		}
	}()

	frame := &Frame{
		Ctx:     st.Ctx,
		View:    st.View,
		Targets: st.Targets,
		Time:    st.Time(),
		Delta:   st.Delta(),
		Count:   uint32(st.times.FrameCount),
	}

	if err := st.graph.Run(frame); err != nil {
		return fmt.Errorf("run frame graph: %w", err)
	}

	if err := drawToSurface(st, surface); err != nil {
		return fmt.Errorf("draw to surface: %w", err)
	}

	// present the rendered image
	st.Ctx.Surface.Present()

	// we do not need to release the screen if present was successful
	surface = nil

	return nil
}

func performGameUpdate(st *Stage) error {
	if !st.initialized {
		st.initialized = true

		if err := st.game.Initialize(st); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := st.game.Update(st); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

// drawToSurface blits the latest main texture to the screen.
func drawToSurface(st *Stage, surface *wgpu.Texture) error {
	main, ok := st.View.Main()
	if !ok {
		return nil
	}

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer surfaceView.Release()

	dest := prism.WrapTexture(surface, surfaceView).AsRenderTarget()
	return st.blitCmd.Draw(dest, main)
}
