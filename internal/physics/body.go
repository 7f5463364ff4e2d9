package physics

import "github.com/go-gl/mathgl/mgl32"

// BodyID identifies a collider in a World. IDs are never reused within one World.
type BodyID uint32

// Body is a static axis-aligned collider: a box centered on Position with full extents Scale.
// Bodies carry no application data; callers keep their own BodyID mapping.
type Body struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewBody returns a body with the given center and full extents. Zero extents become 1.
func NewBody(position, scale mgl32.Vec3) *Body {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	return &Body{Position: position, Scale: scale}
}

// NewCube returns a cube collider of side size centered on position.
func NewCube(position mgl32.Vec3, size float32) *Body {
	return NewBody(position, mgl32.Vec3{size, size, size})
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl32.Vec3
}

// AABB returns the world-space box of b.
func (b *Body) AABB() Box {
	half := b.Scale.Mul(0.5)
	return Box{Min: b.Position.Sub(half), Max: b.Position.Add(half)}
}
