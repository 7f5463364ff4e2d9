package graphics

import (
	"voxel-sandbox/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Bindings maps actions to raylib keys and mouse buttons.
type Bindings struct {
	Forward, Backward, Left, Right, Up, Down int32
	Release                                  int32
	Remove, Place                            rl.MouseButton
	// Hotbar holds the keys for hotkeys 1..n in order.
	Hotbar []int32
}

// DefaultBindings returns WASD movement, Space/Left Shift for up/down, Escape to release the
// cursor, primary/secondary mouse to remove/place, and 1..7 for the hotbar.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  rl.KeyW,
		Backward: rl.KeyS,
		Left:     rl.KeyA,
		Right:    rl.KeyD,
		Up:       rl.KeySpace,
		Down:     rl.KeyLeftShift,
		Release:  rl.KeyEscape,
		Remove:   rl.MouseButtonLeft,
		Place:    rl.MouseButtonRight,
		Hotbar: []int32{
			rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour,
			rl.KeyFive, rl.KeySix, rl.KeySeven,
		},
	}
}

// PollInput reads the current raylib input state. Call once per frame on the render thread.
func PollInput(b Bindings) input.Snapshot {
	d := rl.GetMouseDelta()
	s := input.Snapshot{
		Forward:    rl.IsKeyDown(b.Forward),
		Backward:   rl.IsKeyDown(b.Backward),
		Left:       rl.IsKeyDown(b.Left),
		Right:      rl.IsKeyDown(b.Right),
		Up:         rl.IsKeyDown(b.Up),
		Down:       rl.IsKeyDown(b.Down),
		MouseDelta: mgl32.Vec2{d.X, d.Y},
		Remove:     rl.IsMouseButtonPressed(b.Remove),
		Place:      rl.IsMouseButtonPressed(b.Place),
		Release:    rl.IsKeyPressed(b.Release),
	}
	for i, k := range b.Hotbar {
		if rl.IsKeyPressed(k) {
			s.Select = i + 1
			break
		}
	}
	return s
}
