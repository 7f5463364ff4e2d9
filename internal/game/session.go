// Package game runs the per-frame update: cursor capture, block edits, selection and camera
// movement, all on the render thread.
package game

import (
	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/editor"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	OpRemove = "remove"
	OpPlace  = "place"
)

// Window captures (hidden, relative mouse) and releases (visible, absolute mouse) the cursor.
type Window interface {
	CaptureCursor()
	ReleaseCursor()
}

// Picker casts the crosshair ray against block colliders.
type Picker interface {
	CastRay(origin, dir mgl32.Vec3, maxDist float32) (physics.Hit, bool)
}

// Recorder receives edit outcomes.
type Recorder interface {
	ObserveEdit(op string, err error)
	SetBlocks(n int)
}

// Logger is the subset of logger.Logger the session writes to.
type Logger interface {
	Debugf(format string, args ...any)
}

// Options wires a Session. Recorder and Logger may be nil.
type Options struct {
	Editor   *editor.Editor
	Player   *player.Controller
	Picker   Picker
	Window   Window
	Recorder Recorder
	Logger   Logger
	// PickDistance bounds the crosshair ray; 0 is unbounded.
	PickDistance float32
}

// Session owns the frame-to-frame interaction state. Not safe for concurrent use.
type Session struct {
	editor       *editor.Editor
	player       *player.Controller
	picker       Picker
	window       Window
	rec          Recorder
	log          Logger
	pickDistance float32
	captured     bool
}

// NewSession returns a session with the cursor released.
func NewSession(o Options) *Session {
	s := &Session{
		editor:       o.Editor,
		player:       o.Player,
		picker:       o.Picker,
		window:       o.Window,
		rec:          o.Recorder,
		log:          o.Logger,
		pickDistance: o.PickDistance,
	}
	if s.rec == nil {
		s.rec = nopRecorder{}
	}
	if s.log == nil {
		s.log = nopLogger{}
	}
	s.rec.SetBlocks(s.editor.Len())
	return s
}

// Update processes one frame. Each click edge yields at most one edit.
func (s *Session) Update(in input.Snapshot, dt float32) {
	if in.Release {
		s.ReleaseCursor()
	}
	if in.Remove {
		s.CaptureCursor()
		_ = s.Remove()
	}
	if in.Place {
		_, _ = s.Place()
	}
	if in.Select != 0 {
		if t, ok := blocks.TypeForHotkey(in.Select); ok {
			s.Select(t)
		}
	}
	s.player.Update(in, dt, s.captured)
}

// Captured reports whether mouse look is active.
func (s *Session) Captured() bool {
	return s.captured
}

func (s *Session) CaptureCursor() {
	if s.captured {
		return
	}
	s.captured = true
	s.window.CaptureCursor()
}

func (s *Session) ReleaseCursor() {
	if !s.captured {
		return
	}
	s.captured = false
	s.window.ReleaseCursor()
}

// Select changes the block type used for placement.
func (s *Session) Select(t blocks.Type) {
	s.editor.SelectType(t)
	s.log.Debugf("selected %s", t)
}

// Pick resolves the block under the crosshair.
func (s *Session) Pick() (editor.PickResult, error) {
	hit, ok := s.picker.CastRay(s.player.Position, s.player.Forward(), s.pickDistance)
	if !ok {
		return editor.PickResult{}, editor.ErrNoHit
	}
	return s.editor.Resolve(hit)
}

// Target returns the block under the crosshair.
func (s *Session) Target() (editor.Block, error) {
	pick, err := s.Pick()
	if err != nil {
		return editor.Block{}, err
	}
	b, ok := s.editor.Get(pick.Block)
	if !ok {
		return editor.Block{}, editor.ErrStaleHandle
	}
	return b, nil
}

// Remove deletes the block under the crosshair if it is in range. Failures are reported to
// the recorder and debug log only.
func (s *Session) Remove() error {
	pick, err := s.Pick()
	if err == nil {
		err = s.editor.RemoveBlock(pick, s.player.Position)
	}
	s.observe(OpRemove, err)
	return err
}

// Place puts a block of the selected type against the face under the crosshair.
func (s *Session) Place() (editor.Handle, error) {
	pick, err := s.Pick()
	var h editor.Handle
	if err == nil {
		h, err = s.editor.PlaceBlock(pick, s.player.Position)
	}
	s.observe(OpPlace, err)
	return h, err
}

func (s *Session) observe(op string, err error) {
	s.rec.ObserveEdit(op, err)
	if err != nil {
		s.log.Debugf("%s ignored: %v", op, err)
		return
	}
	s.rec.SetBlocks(s.editor.Len())
}

type nopRecorder struct{}

func (nopRecorder) ObserveEdit(string, error) {}
func (nopRecorder) SetBlocks(int)             {}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
