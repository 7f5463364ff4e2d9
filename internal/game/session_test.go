package game

import (
	"fmt"
	"strings"
	"testing"

	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/editor"
	"voxel-sandbox/internal/input"
	"voxel-sandbox/internal/mapgen"
	"voxel-sandbox/internal/metrics"
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/player"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	captures, releases int
}

func (w *fakeWindow) CaptureCursor() { w.captures++ }
func (w *fakeWindow) ReleaseCursor() { w.releases++ }

type fakeRenderer struct{ n editor.VisualID }

func (r *fakeRenderer) Instantiate(blocks.Type, mgl32.Vec3) editor.VisualID {
	r.n++
	return r.n
}

func (r *fakeRenderer) Destroy(editor.VisualID) {}

type lines []string

func (l *lines) Debugf(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

type fixture struct {
	session *Session
	editor  *editor.Editor
	player  *player.Controller
	window  *fakeWindow
	rec     *metrics.Recorder
	log     *lines
}

// newFixture builds the default slab with the player at the spawn point looking straight down.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	world := physics.NewWorld()
	ed := editor.New(editor.DefaultConfig(), &fakeRenderer{}, world)
	require.Equal(t, 4500, mapgen.GenerateSlab(ed, mapgen.DefaultSlabOptions()))

	// Block centers run from -40 to 18 on x and y, so the eye at (0,0) is over a center.
	pl := player.New(mgl32.Vec3{0, 0, 3})
	pl.Pitch = -90
	f := &fixture{editor: ed, player: pl, window: &fakeWindow{}, rec: metrics.NewRecorder(), log: &lines{}}
	f.session = NewSession(Options{
		Editor:       ed,
		Player:       pl,
		Picker:       world,
		Window:       f.window,
		Recorder:     f.rec,
		Logger:       f.log,
		PickDistance: 64,
	})
	return f
}

func TestRemoveClickCapturesAndRemoves(t *testing.T) {
	f := newFixture(t)
	f.player.Teleport(mgl32.Vec3{0, 0, 3})

	f.session.Update(input.Snapshot{Remove: true}, 1.0/60)

	assert.True(t, f.session.Captured())
	assert.Equal(t, 1, f.window.captures)
	assert.Equal(t, 4499, f.editor.Len())
	assert.Empty(t, f.editor.At(mgl32.Vec3{0, 0, 0}))
}

func TestPlaceClickUsesSelection(t *testing.T) {
	f := newFixture(t)

	f.session.Update(input.Snapshot{Select: 7}, 1.0/60)
	assert.Equal(t, blocks.Gold, f.editor.State().Selected)

	f.session.Update(input.Snapshot{Place: true}, 1.0/60)
	require.Equal(t, 4501, f.editor.Len())
	placed := f.editor.At(mgl32.Vec3{0, 0, 2})
	require.Len(t, placed, 1)
	assert.Equal(t, blocks.Gold, placed[0].Type)
	assert.False(t, f.session.Captured(), "placing does not capture the cursor")
}

func TestEditsOutOfRangeAreSilent(t *testing.T) {
	f := newFixture(t)
	f.player.Teleport(mgl32.Vec3{0, 0, 20})

	f.session.Update(input.Snapshot{Remove: true}, 1.0/60)
	f.session.Update(input.Snapshot{Place: true}, 1.0/60)

	assert.Equal(t, 4500, f.editor.Len())
	assert.Len(t, *f.log, 2)
}

func TestNoHitWhenLookingAtSky(t *testing.T) {
	f := newFixture(t)
	f.player.Pitch = 90

	err := f.session.Remove()
	assert.ErrorIs(t, err, editor.ErrNoHit)
	_, err = f.session.Place()
	assert.ErrorIs(t, err, editor.ErrNoHit)
	assert.Equal(t, 4500, f.editor.Len())
}

func TestTargetIsBlockUnderCrosshair(t *testing.T) {
	f := newFixture(t)

	b, err := f.session.Target()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, b.Position)
	assert.Equal(t, blocks.Dirt, b.Type)

	f.player.Pitch = 90
	_, err = f.session.Target()
	assert.ErrorIs(t, err, editor.ErrNoHit)
}

func TestOneEditPerClick(t *testing.T) {
	f := newFixture(t)
	f.session.Update(input.Snapshot{Remove: true}, 1.0/60)
	f.session.Update(input.Snapshot{}, 1.0/60)
	f.session.Update(input.Snapshot{}, 1.0/60)
	assert.Equal(t, 4499, f.editor.Len())
}

func TestDigDownThroughLayers(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, f.session.Remove(), "layer %d", i)
	}
	// Five layers gone; everything below is empty, so the ray now misses.
	assert.ErrorIs(t, f.session.Remove(), editor.ErrNoHit)
	assert.Equal(t, 4495, f.editor.Len())
}

func TestRemoveRangeLimitsDigging(t *testing.T) {
	f := newFixture(t)
	f.player.Teleport(mgl32.Vec3{4, 0, 10})
	// Top face at z=1 is 9 away: removable; next face at z=-1 is 11 away: removable;
	// the one after at z=-3 is 13 away: out of range.
	require.NoError(t, f.session.Remove())
	require.NoError(t, f.session.Remove())
	assert.ErrorIs(t, f.session.Remove(), editor.ErrOutOfRange)
	assert.Equal(t, 4498, f.editor.Len())

	expected := `
# HELP sandbox_block_edits_total Block edit attempts by operation and outcome.
# TYPE sandbox_block_edits_total counter
sandbox_block_edits_total{op="remove",outcome="ok"} 2
sandbox_block_edits_total{op="remove",outcome="out_of_range"} 1
# HELP sandbox_blocks Blocks currently in the world.
# TYPE sandbox_blocks gauge
sandbox_blocks 4498
`
	require.NoError(t, testutil.GatherAndCompare(f.rec.Registry(), strings.NewReader(expected)))
}

func TestReleaseAndMouseLook(t *testing.T) {
	f := newFixture(t)
	look := input.Snapshot{MouseDelta: mgl32.Vec2{6, 0}}

	f.session.Update(look, 0.1)
	assert.Equal(t, float32(0), f.player.Heading, "no look while released")

	f.session.CaptureCursor()
	f.session.Update(look, 0.1)
	assert.InDelta(t, -6, f.player.Heading, 1e-4)

	f.session.Update(input.Snapshot{Release: true, MouseDelta: mgl32.Vec2{6, 0}}, 0.1)
	assert.False(t, f.session.Captured())
	assert.Equal(t, 1, f.window.releases)
	assert.InDelta(t, -6, f.player.Heading, 1e-4)

	f.session.ReleaseCursor()
	assert.Equal(t, 1, f.window.releases, "release is idempotent")
}

func TestMovementAppliesEachFrame(t *testing.T) {
	f := newFixture(t)
	f.session.Update(input.Snapshot{Up: true}, 0.5)
	assert.InDelta(t, 8, f.player.Position[2], 1e-4)
}
