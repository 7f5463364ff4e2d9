package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMoving(t *testing.T) {
	assert.False(t, Snapshot{}.Moving())
	assert.False(t, Snapshot{Remove: true, Select: 3}.Moving())
	assert.True(t, Snapshot{Down: true}.Moving())
}

func TestIdleKeepsOnlyMouse(t *testing.T) {
	s := Snapshot{Forward: true, Remove: true, Place: true, Select: 2, MouseDelta: mgl32.Vec2{1, 2}}
	assert.Equal(t, Snapshot{MouseDelta: mgl32.Vec2{1, 2}}, s.Idle())
}
