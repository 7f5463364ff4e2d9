// Package editor owns the block registry and the ray-pick based edit operations.
//
// The editor never renders or hit-tests anything itself. It drives a Renderer for visuals and
// a Colliders service for hit volumes, and keeps its own mapping from collider ids back to
// blocks so a pick result can be resolved without tagging engine objects.
package editor

import (
	"errors"
	"fmt"
	"sort"

	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/physics"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

const (
	DefaultRemoveRange = 12
	DefaultPlaceRange  = 14
	DefaultPitch       = 2
)

var (
	ErrNoHit         = errors.New("no block under crosshair")
	ErrOutOfRange    = errors.New("target out of range")
	ErrStaleHandle   = errors.New("stale block handle")
	ErrInvalidNormal = errors.New("surface normal is not axis aligned")
	ErrOccupied      = errors.New("target cell occupied")
)

// Handle is an opaque block reference. Handles are never reused; the zero Handle is invalid.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return uuid.UUID(h) == uuid.Nil
}

// VisualID identifies a rendered block instance.
type VisualID uint32

// Renderer instantiates and destroys block visuals.
type Renderer interface {
	Instantiate(t blocks.Type, pos mgl32.Vec3) VisualID
	Destroy(id VisualID)
}

// Colliders attaches and detaches hit volumes and answers overlap queries.
type Colliders interface {
	AddBody(b *physics.Body) physics.BodyID
	RemoveBody(id physics.BodyID)
	Overlapping(b *physics.Body) []physics.BodyID
}

// Block is one placed cube.
type Block struct {
	Handle   Handle
	Type     blocks.Type
	Position mgl32.Vec3
}

type entry struct {
	block    Block
	visual   VisualID
	collider physics.BodyID
}

// PickResult is the nearest ray hit resolved to a block.
type PickResult struct {
	Block    Handle
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// State is the player-facing edit state.
type State struct {
	Selected blocks.Type
}

// Config holds the edit policy.
type Config struct {
	RemoveRange float32
	PlaceRange  float32
	Pitch       float32
	// PreventOverlap rejects placement into a cell whose volume is already taken.
	PreventOverlap bool
}

// DefaultConfig returns the standard ranges and a 2-unit pitch.
func DefaultConfig() Config {
	return Config{
		RemoveRange: DefaultRemoveRange,
		PlaceRange:  DefaultPlaceRange,
		Pitch:       DefaultPitch,
	}
}

// Editor is the block world editor. It is not safe for concurrent use; all calls happen on
// the frame loop.
type Editor struct {
	cfg        Config
	render     Renderer
	colliders  Colliders
	state      State
	blocks     map[Handle]*entry
	byCollider map[physics.BodyID]Handle
}

// New returns an empty editor. The selection starts at Dirt.
func New(cfg Config, render Renderer, colliders Colliders) *Editor {
	return &Editor{
		cfg:        cfg,
		render:     render,
		colliders:  colliders,
		state:      State{Selected: blocks.Dirt},
		blocks:     make(map[Handle]*entry),
		byCollider: make(map[physics.BodyID]Handle),
	}
}

// Config returns the edit policy.
func (e *Editor) Config() Config {
	return e.cfg
}

// SelectType sets the block type used by PlaceBlock.
func (e *Editor) SelectType(t blocks.Type) {
	e.state.Selected = t
}

// State returns a copy of the current edit state.
func (e *Editor) State() State {
	return e.state
}

// Spawn creates a block without any range or pick checks. It is the bootstrap path.
func (e *Editor) Spawn(t blocks.Type, pos mgl32.Vec3) Handle {
	h := Handle(uuid.New())
	en := &entry{
		block:    Block{Handle: h, Type: t, Position: pos},
		visual:   e.render.Instantiate(t, pos),
		collider: e.colliders.AddBody(physics.NewCube(pos, e.cfg.Pitch)),
	}
	e.blocks[h] = en
	e.byCollider[en.collider] = h
	return h
}

// Resolve maps a collider hit to the block that owns the collider.
func (e *Editor) Resolve(hit physics.Hit) (PickResult, error) {
	h, ok := e.byCollider[hit.Body]
	if !ok {
		return PickResult{}, fmt.Errorf("collider %d: %w", hit.Body, ErrStaleHandle)
	}
	return PickResult{Block: h, Point: hit.Point, Normal: hit.Normal, Distance: hit.Distance}, nil
}

// RemoveBlock destroys the picked block when the hit point is closer than RemoveRange to
// player. Out of range returns ErrOutOfRange and leaves the registry untouched.
func (e *Editor) RemoveBlock(pick PickResult, player mgl32.Vec3) error {
	en, ok := e.blocks[pick.Block]
	if !ok {
		return fmt.Errorf("remove %s: %w", pick.Block, ErrStaleHandle)
	}
	if d := pick.Point.Sub(player).Len(); d >= e.cfg.RemoveRange {
		return fmt.Errorf("remove at %.1f: %w", d, ErrOutOfRange)
	}
	e.render.Destroy(en.visual)
	e.colliders.RemoveBody(en.collider)
	delete(e.byCollider, en.collider)
	delete(e.blocks, pick.Block)
	return nil
}

// PlaceBlock creates a block of the selected type flush against the picked face, one pitch
// away from the hit block's center.
func (e *Editor) PlaceBlock(pick PickResult, player mgl32.Vec3) (Handle, error) {
	en, ok := e.blocks[pick.Block]
	if !ok {
		return Handle{}, fmt.Errorf("place on %s: %w", pick.Block, ErrStaleHandle)
	}
	if !isAxisNormal(pick.Normal) {
		return Handle{}, fmt.Errorf("place normal %v: %w", pick.Normal, ErrInvalidNormal)
	}
	if d := pick.Point.Sub(player).Len(); d >= e.cfg.PlaceRange {
		return Handle{}, fmt.Errorf("place at %.1f: %w", d, ErrOutOfRange)
	}
	pos := en.block.Position.Add(pick.Normal.Mul(e.cfg.Pitch))
	if e.cfg.PreventOverlap {
		if ids := e.colliders.Overlapping(physics.NewCube(pos, e.cfg.Pitch)); len(ids) > 0 {
			return Handle{}, fmt.Errorf("place at %v: %w", pos, ErrOccupied)
		}
	}
	return e.Spawn(e.state.Selected, pos), nil
}

// Len returns the number of blocks.
func (e *Editor) Len() int {
	return len(e.blocks)
}

// Get returns the block for h.
func (e *Editor) Get(h Handle) (Block, bool) {
	en, ok := e.blocks[h]
	if !ok {
		return Block{}, false
	}
	return en.block, true
}

// At returns every block whose center is at pos.
func (e *Editor) At(pos mgl32.Vec3) []Block {
	var out []Block
	for _, en := range e.blocks {
		if samePosition(en.block.Position, pos) {
			out = append(out, en.block)
		}
	}
	return out
}

// Blocks returns all blocks ordered by position (x, then y, then z).
func (e *Editor) Blocks() []Block {
	out := make([]Block, 0, len(e.blocks))
	for _, en := range e.blocks {
		out = append(out, en.block)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Position, out[j].Position
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return out
}

// samePosition compares with an absolute tolerance; centers sit on the pitch grid and are often 0.
func samePosition(a, b mgl32.Vec3) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > 1e-3 {
			return false
		}
	}
	return true
}

func isAxisNormal(n mgl32.Vec3) bool {
	nonZero := 0
	for _, c := range n {
		switch {
		case c == 0:
		case math32.Abs(c) == 1:
			nonZero++
		default:
			return false
		}
	}
	return nonZero == 1
}
