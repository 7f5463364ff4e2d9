// Package scene owns the 3D camera and draws the world backdrop: sky, optional grid, then the
// caller's geometry. The world is Z-up.
package scene

import (
	"voxel-sandbox/internal/player"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridExtent     = 60
	gridMinorStep  = 2
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// Below this horizontal length the view is treated as straight up or down.
	verticalEpsilon = 1e-3
)

// Scene holds the first-person camera. Call Follow once per frame before Draw.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	// GridHeight is the Z of the grid plane; the default sits just above the slab's top faces.
	GridHeight float32

	sky skybox
}

// New returns a scene with a perspective camera of the given vertical field of view. The skybox
// is looked up under assetsDir/skybox and loaded on the first Draw.
func New(fovy float32, assetsDir string) *Scene {
	s := &Scene{GridHeight: 1.01}
	s.Camera.Up = rl.NewVector3(0, 0, 1)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.sky.find(assetsDir)
	return s
}

// SetGridVisible sets whether the reference grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Follow places the camera at the player's eye looking along its view direction.
func (s *Scene) Follow(p *player.Controller) {
	eye := p.Position
	fwd := p.Forward()
	target := eye.Add(fwd)
	up := mgl32.Vec3{0, 0, 1}
	// Looking straight up or down, Z is parallel to the view; use the heading as screen-up.
	if math32.Hypot(fwd[0], fwd[1]) < verticalEpsilon {
		h := mgl32.DegToRad(p.Heading)
		ahead := mgl32.Vec3{-math32.Sin(h), math32.Cos(h), 0}
		if fwd[2] > 0 {
			ahead = ahead.Mul(-1)
		}
		up = ahead
	}
	s.Camera.Position = rl.NewVector3(eye[0], eye[1], eye[2])
	s.Camera.Target = rl.NewVector3(target[0], target[1], target[2])
	s.Camera.Up = rl.NewVector3(up[0], up[1], up[2])
}

// Draw renders the sky, the grid if visible, then world inside the same 3D pass.
// Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw(world func()) {
	s.sky.ensureLoaded()
	rl.BeginMode3D(s.Camera)
	s.sky.draw(s.Camera.Position)
	if world != nil {
		world()
	}
	if s.GridVisible {
		drawGrid(s.GridHeight)
	}
	rl.EndMode3D()
}

// Unload frees the skybox GPU resources.
func (s *Scene) Unload() {
	s.sky.unload()
}

// drawGrid draws a reference grid on the XY plane at height z with axis lines through the origin.
func drawGrid(z float32) {
	minor := rl.NewColor(90, 90, 90, gridMinorAlpha)
	major := rl.NewColor(40, 40, 40, gridMajorAlpha)

	var a, b rl.Vector3
	a.Z, b.Z = z, z
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		a.X, a.Y = float32(i), -gridExtent
		b.X, b.Y = float32(i), gridExtent
		rl.DrawLine3D(a, b, c)
		a.X, a.Y = -gridExtent, float32(i)
		b.X, b.Y = gridExtent, float32(i)
		rl.DrawLine3D(a, b, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, z), rl.NewVector3(gridExtent, 0, z), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, z), rl.NewVector3(0, gridExtent, z), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, z-gridExtent), rl.NewVector3(0, 0, z+gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
