package player

import (
	"testing"

	"voxel-sandbox/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d: want %v, got %v", i, want, got)
	}
}

func TestMovementFollowsHeading(t *testing.T) {
	cases := []struct {
		name    string
		heading float32
		in      input.Snapshot
		want    mgl32.Vec3
	}{
		{"forward", 0, input.Snapshot{Forward: true}, mgl32.Vec3{0, 10, 0}},
		{"backward", 0, input.Snapshot{Backward: true}, mgl32.Vec3{0, -10, 0}},
		{"left", 0, input.Snapshot{Left: true}, mgl32.Vec3{-10, 0, 0}},
		{"right", 0, input.Snapshot{Right: true}, mgl32.Vec3{10, 0, 0}},
		{"up", 0, input.Snapshot{Up: true}, mgl32.Vec3{0, 0, 10}},
		{"down", 0, input.Snapshot{Down: true}, mgl32.Vec3{0, 0, -10}},
		{"forward turned left", 90, input.Snapshot{Forward: true}, mgl32.Vec3{-10, 0, 0}},
		{"forward and back cancel", 30, input.Snapshot{Forward: true, Backward: true}, mgl32.Vec3{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := New(mgl32.Vec3{})
			p.Heading = c.heading
			p.Update(c.in, 1, false)
			assertVec(t, c.want, p.Position)
		})
	}
}

func TestPitchDoesNotAffectMovement(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.Pitch = 60
	p.Update(input.Snapshot{Forward: true}, 0.5, false)
	assertVec(t, mgl32.Vec3{0, 5, 0}, p.Position)
}

func TestLookOnlyWhenCaptured(t *testing.T) {
	p := New(DefaultStart)
	in := input.Snapshot{MouseDelta: mgl32.Vec2{3, -2}}

	p.Update(in, 0.1, false)
	assert.Equal(t, float32(0), p.Heading)
	assert.Equal(t, float32(0), p.Pitch)

	p.Update(in, 0.1, true)
	assert.InDelta(t, -3, p.Heading, 1e-4)
	assert.InDelta(t, 2, p.Pitch, 1e-4)
}

func TestPitchClamped(t *testing.T) {
	p := New(DefaultStart)
	p.Update(input.Snapshot{MouseDelta: mgl32.Vec2{0, -1000}}, 1, true)
	assert.Equal(t, float32(90), p.Pitch)
	p.Update(input.Snapshot{MouseDelta: mgl32.Vec2{0, 5000}}, 1, true)
	assert.Equal(t, float32(-90), p.Pitch)
}

func TestForward(t *testing.T) {
	p := New(DefaultStart)
	assertVec(t, mgl32.Vec3{0, 1, 0}, p.Forward())

	p.Pitch = -90
	assertVec(t, mgl32.Vec3{0, 0, -1}, p.Forward())

	p.Pitch = 0
	p.Heading = -90
	assertVec(t, mgl32.Vec3{1, 0, 0}, p.Forward())
	assertVec(t, DefaultStart.Add(mgl32.Vec3{1, 0, 0}), p.Target())
}

func TestZeroDtIsNoop(t *testing.T) {
	p := New(DefaultStart)
	p.Update(input.Snapshot{Forward: true, MouseDelta: mgl32.Vec2{5, 5}}, 0, true)
	assert.Equal(t, DefaultStart, p.Position)
	assert.Equal(t, float32(0), p.Heading)
}
