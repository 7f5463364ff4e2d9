package input

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is the input state for one frame. Held keys are levels; Remove, Place, Release and
// Select are edges that fire on the frame the key or button went down.
type Snapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool

	// MouseDelta is the cursor movement since the previous frame, in pixels.
	MouseDelta mgl32.Vec2

	Remove  bool
	Place   bool
	Release bool
	// Select is the pressed hotkey number, 1..7, or 0 when none.
	Select int
}

// Moving reports whether any movement key is held.
func (s Snapshot) Moving() bool {
	return s.Forward || s.Backward || s.Left || s.Right || s.Up || s.Down
}

// Idle returns a snapshot with only the mouse delta kept. Used while the console owns the
// keyboard.
func (s Snapshot) Idle() Snapshot {
	return Snapshot{MouseDelta: s.MouseDelta}
}
