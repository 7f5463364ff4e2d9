package mapgen

import (
	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/editor"

	"github.com/go-gl/mathgl/mgl32"
)

// SlabOptions controls the flat starting terrain.
// Width/Depth are in blocks along X/Y; Layers stack downward along -Z from Origin.
// Pitch is the world size of one block.
type SlabOptions struct {
	Width  int
	Depth  int
	Layers int
	Pitch  float32
	Origin mgl32.Vec3
	Type   blocks.Type
}

// DefaultSlabOptions returns the 30×30×5 dirt slab whose first block sits at (-40,-40,0).
func DefaultSlabOptions() SlabOptions {
	return SlabOptions{
		Width:  30,
		Depth:  30,
		Layers: 5,
		Pitch:  2,
		Origin: mgl32.Vec3{-40, -40, 0},
		Type:   blocks.Dirt,
	}
}

// Spawner places a block without range checks. *editor.Editor satisfies it.
type Spawner interface {
	Spawn(t blocks.Type, pos mgl32.Vec3) editor.Handle
}

// Positions enumerates block centers layer by layer (z outermost, then y, then x):
// (Origin.X + x*Pitch, Origin.Y + y*Pitch, Origin.Z - z*Pitch).
func Positions(opts SlabOptions) []mgl32.Vec3 {
	if opts.Width <= 0 || opts.Depth <= 0 || opts.Layers <= 0 {
		return nil
	}
	if opts.Pitch <= 0 {
		opts.Pitch = 2
	}
	out := make([]mgl32.Vec3, 0, opts.Width*opts.Depth*opts.Layers)
	for z := 0; z < opts.Layers; z++ {
		for y := 0; y < opts.Depth; y++ {
			for x := 0; x < opts.Width; x++ {
				out = append(out, mgl32.Vec3{
					opts.Origin[0] + float32(x)*opts.Pitch,
					opts.Origin[1] + float32(y)*opts.Pitch,
					opts.Origin[2] - float32(z)*opts.Pitch,
				})
			}
		}
	}
	return out
}

// GenerateSlab spawns one block of opts.Type per position and returns how many were placed.
func GenerateSlab(s Spawner, opts SlabOptions) int {
	positions := Positions(opts)
	for _, p := range positions {
		s.Spawn(opts.Type, p)
	}
	return len(positions)
}
