// Package player moves the first-person camera. The world is Z-up: heading rotates about Z,
// heading 0 looks along +Y, and pitch tilts the view toward +Z.
package player

import (
	"voxel-sandbox/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultMoveSpeed  = 10
	DefaultLookFactor = 10
	maxPitch          = 90
)

// DefaultStart is the spawn point, three units above the slab's top face plane.
var DefaultStart = mgl32.Vec3{0, 0, 3}

// Controller is a free-flying camera. Heading and Pitch are in degrees.
type Controller struct {
	Position mgl32.Vec3
	Heading  float32
	Pitch    float32

	MoveSpeed  float32
	LookFactor float32
}

// New returns a controller at start looking along +Y.
func New(start mgl32.Vec3) *Controller {
	return &Controller{
		Position:   start,
		MoveSpeed:  DefaultMoveSpeed,
		LookFactor: DefaultLookFactor,
	}
}

// Update applies one frame of movement and, when look is true, mouse look.
// Movement is planar along the heading plus vertical Up/Down; pitch does not affect it.
func (c *Controller) Update(in input.Snapshot, dt float32, look bool) {
	if dt <= 0 {
		return
	}
	h := mgl32.DegToRad(c.Heading)
	sinH, cosH := math32.Sin(h), math32.Cos(h)
	step := dt * c.MoveSpeed

	var move mgl32.Vec3
	if in.Forward {
		move = move.Add(mgl32.Vec3{-sinH, cosH, 0}.Mul(step))
	}
	if in.Backward {
		move = move.Add(mgl32.Vec3{sinH, -cosH, 0}.Mul(step))
	}
	if in.Left {
		move = move.Add(mgl32.Vec3{-cosH, -sinH, 0}.Mul(step))
	}
	if in.Right {
		move = move.Add(mgl32.Vec3{cosH, sinH, 0}.Mul(step))
	}
	if in.Up {
		move[2] += step
	}
	if in.Down {
		move[2] -= step
	}
	c.Position = c.Position.Add(move)

	if look {
		c.Heading -= in.MouseDelta[0] * dt * c.LookFactor
		c.Pitch = mgl32.Clamp(c.Pitch-in.MouseDelta[1]*dt*c.LookFactor, -maxPitch, maxPitch)
	}
}

// Forward returns the unit view direction, including pitch.
func (c *Controller) Forward() mgl32.Vec3 {
	h := mgl32.DegToRad(c.Heading)
	p := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		-math32.Sin(h) * math32.Cos(p),
		math32.Cos(h) * math32.Cos(p),
		math32.Sin(p),
	}
}

// Target returns the point one unit ahead of the eye, for look-at cameras.
func (c *Controller) Target() mgl32.Vec3 {
	return c.Position.Add(c.Forward())
}

// Teleport moves the eye without changing orientation.
func (c *Controller) Teleport(pos mgl32.Vec3) {
	c.Position = pos
}
