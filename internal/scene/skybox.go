package scene

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	skyboxScale = 1000
	// Width/height range treated as an equirectangular panorama; anything else is a cubemap strip.
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

var skyboxNames = []string{"skybox.png", "skybox.jpg"}

// skybox is an optional background texture. The file is located at construction but GPU
// resources are created on the first draw, once the GL context exists.
type skybox struct {
	path     string
	equirect bool
	loaded   bool

	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	camPosLoc int32
	texLoc    int32
}

func (s *skybox) find(assetsDir string) {
	for _, name := range skyboxNames {
		p := filepath.Join(assetsDir, "skybox", name)
		if _, err := os.Stat(p); err == nil {
			s.path = p
			return
		}
	}
}

func (s *skybox) ensureLoaded() {
	if s.path == "" || s.loaded {
		return
	}
	path := s.path
	s.path = ""

	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}
	aspect := float32(img.Width) / float32(img.Height)
	s.equirect = aspect >= equirectAspectMin && aspect <= equirectAspectMax

	s.mtl = rl.LoadMaterialDefault()
	if s.equirect {
		s.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
		if !rl.IsTextureValid(s.tex) || !rl.IsShaderValid(shader) {
			return
		}
		s.mtl.Shader = shader
		s.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
		s.texLoc = rl.GetShaderLocation(shader, "skybox")
	} else {
		s.tex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(s.tex) {
			return
		}
		rl.SetMaterialTexture(&s.mtl, rl.MapCubemap, s.tex)
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.loaded = true
}

// draw renders the sky as a large cube centered on the camera, behind everything else.
func (s *skybox) draw(cam rl.Vector3) {
	if !s.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	if s.equirect {
		if s.camPosLoc >= 0 {
			rl.SetShaderValueV(s.mtl.Shader, s.camPosLoc, []float32{cam.X, cam.Y, cam.Z}, rl.ShaderUniformVec3, 1)
		}
		if s.texLoc >= 0 {
			rl.SetShaderValueTexture(s.mtl.Shader, s.texLoc, s.tex)
		}
	}
	transform := rl.MatrixMultiply(rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale), rl.MatrixTranslate(cam.X, cam.Y, cam.Z))
	rl.DrawMesh(s.mesh, s.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (s *skybox) unload() {
	if !s.loaded {
		return
	}
	rl.UnloadTexture(s.tex)
	rl.UnloadMesh(&s.mesh)
	s.loaded = false
}

// Panorama lookup by view direction; latitude comes from Z since the world is Z-up.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 world = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = world.xyz;
  gl_Position = matProjection * matView * world;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 d = normalize(fragWorldPos - cameraPosition);
  float u = atan(d.y, d.x) / 6.28318530718 + 0.5;
  float v = 0.5 - asin(clamp(d.z, -1.0, 1.0)) / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)
