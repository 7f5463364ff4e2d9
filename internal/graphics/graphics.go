package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// WindowOptions controls the window created by Run.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Frame holds the main loop callbacks. Setup runs once after the window and GL context exist, so
// GPU resources are loaded there; Teardown runs before the context is destroyed. Both are optional.
type Frame struct {
	Setup    func()
	Update   func(dt float32)
	Draw     func()
	Teardown func()
}

// Run opens the window and runs the main loop until the window is closed. Each frame it calls
// Update with the frame time, then clears the screen and calls Draw.
// ESC is left to the game (cursor release); close via the window button.
func Run(opts WindowOptions, f Frame) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	if f.Setup != nil {
		f.Setup()
	}
	if f.Teardown != nil {
		defer f.Teardown()
	}

	for !rl.WindowShouldClose() {
		f.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.SkyBlue)
		f.Draw()
		rl.EndDrawing()
	}
}

// Cursor toggles raylib's cursor lock. Disabled cursor is hidden and reports relative motion.
type Cursor struct{}

func (Cursor) CaptureCursor() {
	rl.DisableCursor()
}

func (Cursor) ReleaseCursor() {
	rl.EnableCursor()
}
