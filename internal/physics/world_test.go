package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastRayNearestHit(t *testing.T) {
	w := NewWorld()
	far := w.AddBody(NewCube(mgl32.Vec3{0, 10, 0}, 2))
	near := w.AddBody(NewCube(mgl32.Vec3{0, 4, 0}, 2))

	hit, ok := w.CastRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 0)
	require.True(t, ok)
	assert.Equal(t, near, hit.Body)
	assert.InDelta(t, 3, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, hit.Normal)
	assert.True(t, hit.Point.ApproxEqual(mgl32.Vec3{0, 3, 0}))

	all := w.CastRayAll(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}, 0)
	require.Len(t, all, 2)
	assert.Equal(t, near, all[0].Body)
	assert.Equal(t, far, all[1].Body)
	assert.Less(t, all[0].Distance, all[1].Distance)
}

func TestCastRayFaceNormals(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewCube(mgl32.Vec3{0, 0, 0}, 2))

	cases := []struct {
		origin, dir, normal mgl32.Vec3
	}{
		{mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0}},
		{mgl32.Vec3{5, 0, 0}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, -5, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}},
		{mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -1}},
		// Diagonal ray from above-front still enters through the top face.
		{mgl32.Vec3{0, -2, 5}, mgl32.Vec3{0, 1, -2}, mgl32.Vec3{0, 0, 1}},
	}
	for _, c := range cases {
		hit, ok := w.CastRay(c.origin, c.dir, 0)
		require.True(t, ok, "origin %v dir %v", c.origin, c.dir)
		assert.Equal(t, c.normal, hit.Normal, "origin %v dir %v", c.origin, c.dir)
	}
}

func TestCastRayMisses(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewCube(mgl32.Vec3{0, 10, 0}, 2))

	_, ok := w.CastRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}, 0)
	assert.False(t, ok, "box behind the ray")

	_, ok = w.CastRay(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{0, 1, 0}, 0)
	assert.False(t, ok, "parallel ray outside the slab")

	_, ok = w.CastRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 5)
	assert.False(t, ok, "beyond max distance")

	_, ok = w.CastRay(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 1, 0}, 0)
	assert.False(t, ok, "origin inside the box")

	_, ok = w.CastRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{}, 0)
	assert.False(t, ok, "zero direction")
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld()
	a := w.AddBody(NewCube(mgl32.Vec3{0, 4, 0}, 2))
	b := w.AddBody(NewCube(mgl32.Vec3{0, 8, 0}, 2))
	c := w.AddBody(NewCube(mgl32.Vec3{0, 12, 0}, 2))

	w.RemoveBody(a)
	w.RemoveBody(a)
	assert.Equal(t, 2, w.Len())
	_, ok := w.Body(a)
	assert.False(t, ok)

	hit, ok := w.CastRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 0)
	require.True(t, ok)
	assert.Equal(t, b, hit.Body)

	body, ok := w.Body(c)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 12, 0}, body.Position)

	d := w.AddBody(NewCube(mgl32.Vec3{0, 16, 0}, 2))
	assert.NotEqual(t, a, d, "ids are not reused")
}

func TestOverlapping(t *testing.T) {
	w := NewWorld()
	a := w.AddBody(NewCube(mgl32.Vec3{0, 0, 0}, 2))
	w.AddBody(NewCube(mgl32.Vec3{2, 0, 0}, 2))

	assert.Equal(t, []BodyID{a}, w.Overlapping(NewCube(mgl32.Vec3{0, 0, 0}, 2)))
	assert.Empty(t, w.Overlapping(NewCube(mgl32.Vec3{0, 0, 2}, 2)), "touching faces")
	assert.Len(t, w.Overlapping(NewCube(mgl32.Vec3{1, 0, 0}, 2)), 2)
}

func TestNewBodyDefaultsScale(t *testing.T) {
	b := NewBody(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 4, 0})
	assert.Equal(t, mgl32.Vec3{1, 4, 1}, b.Scale)
	box := b.AABB()
	assert.Equal(t, mgl32.Vec3{0.5, 0, 2.5}, box.Min)
	assert.Equal(t, mgl32.Vec3{1.5, 4, 3.5}, box.Max)
}
