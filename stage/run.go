package stage

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/prism/glimpse"
	"github.com/oliverbestmann/prism/prism"
)

// Game is implemented by the application. Initialize is called once before
// the first Update, this is where scene passes and composite nodes are
// registered on the Stage.
type Game interface {
	Initialize(st *Stage) error
	Update(st *Stage) error
}

type RunOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

// Run opens a window, initializes the gpu context and drives the game loop
// until the window is closed.
func Run(opts RunOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("Game must not be nil")
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1280
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 720
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Prism"
	}

	// create a new window
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := prism.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view := prism.NewView(ctx)
	defer view.ReleaseTextures()

	targets := prism.NewTargets(ctx)
	defer targets.ReleaseAll()

	currentWindow.set(win)
	currentContext.set(ctx)
	currentView.set(view)

	st := newStage(win, ctx, view, targets, game)

	// resize events are latched and applied at the next frame boundary
	win.SetResizeHandler(st.resize.OnResize)

	// seed the coordinator with the initial framebuffer size so the first
	// frame configures the surface before anything renders
	width, height := win.GetSize()
	st.resize.OnResize(width, height)

	return win.Run(func(inputState glimpse.UpdateInputState) error {
		return loopOnce(st, inputState)
	})
}
