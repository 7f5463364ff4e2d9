package primitives

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"voxel-sandbox/internal/blocks"
	"voxel-sandbox/internal/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// cached holds the shared cube mesh and its two materials. texturedMtl is used when a block
// type has an albedo texture (same mesh, different shader).
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// asset is what one block type draws with. A loaded model wins over the cube fallback.
type asset struct {
	model    rl.Model
	hasModel bool
	tex      rl.Texture2D
	hasTex   bool
	tint     rl.Color
}

type instance struct {
	typ blocks.Type
	pos rl.Vector3
}

// Registry is the block render service: it owns per-type assets and every live block visual.
// GPU resources are created in LoadAssets, which must run after the window exists.
type Registry struct {
	catalog   *blocks.Catalog
	assetsDir string
	size      float32

	assets    map[blocks.Type]asset
	cube      cached
	cubeReady bool

	instances map[editor.VisualID]instance
	next      editor.VisualID

	// lightDir points toward the sun.
	lightDir [3]float32
}

// NewRegistry returns an empty registry drawing blocks of side size.
func NewRegistry(catalog *blocks.Catalog, assetsDir string, size float32) *Registry {
	return &Registry{
		catalog:   catalog,
		assetsDir: assetsDir,
		size:      size,
		assets:    make(map[blocks.Type]asset),
		instances: make(map[editor.VisualID]instance),
		lightDir:  [3]float32{0.4, -0.3, 1},
	}
}

// LoadAssets loads one model (or texture) per block type. Missing files are collected into the
// returned error; those types still draw as tinted cubes.
func (r *Registry) LoadAssets() error {
	r.ensureCube()
	var errs []error
	for _, t := range blocks.All {
		app := r.catalog.Appearance(t)
		c := r.catalog.Tint(t)
		a := asset{tint: rl.NewColor(c.R, c.G, c.B, c.A)}

		if app.Model != "" {
			path := filepath.Join(r.assetsDir, app.Model)
			if _, err := os.Stat(path); err != nil {
				errs = append(errs, fmt.Errorf("%s model: %w", t, err))
			} else if m := rl.LoadModel(path); rl.IsModelValid(m) {
				a.model, a.hasModel = m, true
			} else {
				errs = append(errs, fmt.Errorf("%s model %s: invalid", t, path))
			}
		}
		if !a.hasModel && app.Texture != "" {
			path := filepath.Join(r.assetsDir, app.Texture)
			if tex := rl.LoadTexture(path); rl.IsTextureValid(tex) {
				a.tex, a.hasTex = tex, true
			} else {
				errs = append(errs, fmt.Errorf("%s texture %s: invalid", t, path))
			}
		}
		r.assets[t] = a
	}
	return errors.Join(errs...)
}

// Unload frees every GPU resource owned by the registry.
func (r *Registry) Unload() {
	for t, a := range r.assets {
		if a.hasModel {
			rl.UnloadModel(a.model)
		}
		if a.hasTex {
			rl.UnloadTexture(a.tex)
		}
		delete(r.assets, t)
	}
}

// Instantiate adds a visual for a block centered at pos.
func (r *Registry) Instantiate(t blocks.Type, pos mgl32.Vec3) editor.VisualID {
	r.next++
	r.instances[r.next] = instance{typ: t, pos: rl.NewVector3(pos[0], pos[1], pos[2])}
	return r.next
}

// Destroy removes a visual. Unknown ids are ignored.
func (r *Registry) Destroy(id editor.VisualID) {
	delete(r.instances, id)
}

// Len returns the number of live visuals.
func (r *Registry) Len() int {
	return len(r.instances)
}

// DrawAll draws every live block. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawAll() {
	if !r.cubeReady {
		return
	}
	r.setLitShaderUniforms(r.cube.mtl.Shader)
	r.setLitShaderUniforms(r.cube.texturedMtl.Shader)
	for _, in := range r.instances {
		a := r.assets[in.typ]
		switch {
		case a.hasModel:
			// glTF models are Y-up; tip them onto the Z-up world.
			rl.DrawModelEx(a.model, in.pos, rl.NewVector3(1, 0, 0), 90, rl.NewVector3(1, 1, 1), rl.White)
		case a.hasTex:
			rl.SetMaterialTexture(&r.cube.texturedMtl, rl.MapAlbedo, a.tex)
			rl.DrawMesh(r.cube.mesh, r.cube.texturedMtl, r.transform(in.pos))
		default:
			if albedo := r.cube.mtl.GetMap(rl.MapAlbedo); albedo != nil {
				albedo.Color = a.tint
			}
			rl.DrawMesh(r.cube.mesh, r.cube.mtl, r.transform(in.pos))
		}
	}
}

// DrawOutline draws a wire cube around the block at pos (crosshair target highlight).
func (r *Registry) DrawOutline(pos mgl32.Vec3) {
	s := r.size * 1.01
	rl.DrawCubeWires(rl.NewVector3(pos[0], pos[1], pos[2]), s, s, s, rl.Black)
}

func (r *Registry) transform(pos rl.Vector3) rl.Matrix {
	return rl.MatrixMultiply(rl.MatrixScale(r.size, r.size, r.size), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
}

// ensureCube creates the unit cube mesh and its lit materials if not yet cached.
func (r *Registry) ensureCube() {
	if r.cubeReady {
		return
	}
	mesh := rl.GenMeshCube(1, 1, 1)
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	texturedMtl := rl.LoadMaterialDefault()
	if albedo := texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if ts := loadLitTexturedShader(); rl.IsShaderValid(ts) {
		texturedMtl.Shader = ts
	}
	r.cube = cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	r.cubeReady = true
}
