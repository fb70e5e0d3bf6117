package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window Run opens.
type Window struct {
	Width, Height int
	Title         string
	FPS           int
	MSAA          bool
}

// Hooks are called by Run. Any of them may be nil.
type Hooks struct {
	// Init runs once after the window and OpenGL context exist.
	Init func()
	// Resize runs when the window size changes, with the new size.
	Resize func(width, height int)
	// Update runs each frame before drawing (e.g. input, animation).
	Update func()
	// Draw runs between BeginDrawing and EndDrawing.
	Draw func()
	// Close runs before the window closes, while GPU resources can still be released.
	Close func()
}

// Run opens a resizable window and runs the main loop until the window is closed. Each frame
// it checks for a resize, calls Update, clears the screen and calls Draw.
func Run(w Window, h Hooks) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	if w.FPS > 0 {
		rl.SetTargetFPS(int32(w.FPS))
	}
	if h.Init != nil {
		h.Init()
	}
	if h.Close != nil {
		defer h.Close()
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && h.Resize != nil {
			h.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if h.Update != nil {
			h.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(color.RGBA{A: 255})
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	}
}
