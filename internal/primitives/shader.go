package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// loadLitShader returns the block shader: one directional light plus a per-axis ambient so the
// faces of a cube read apart even when the light grazes them.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(blockVS, blockFSHeader+blockFSFlat+blockFSShade)
}

// loadLitTexturedShader is loadLitShader with the tint sampled from the albedo map.
func loadLitTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(blockVS, blockFSHeader+blockFSTextured+blockFSShade)
}

const (
	blockVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 world = matModel * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(mat3(matModel) * vertexNormal);
  gl_Position = matProjection * matView * world;
}
`
	blockFSHeader = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform sampler2D albedoMap;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;
`
	blockFSFlat = `vec4 baseColor() { return colDiffuse; }
`
	blockFSTextured = `vec4 baseColor() { return texture(albedoMap, fragTexCoord) * colDiffuse; }
`
	// Z-up: top faces get full ambient, sides a little less, bottoms the least.
	blockFSShade = `void main() {
  vec4 base = baseColor();
  vec3 N = normalize(fragNormal);
  float axis = N.z > 0.5 ? 1.0 : (N.z < -0.5 ? 0.55 : 0.8);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  finalColor = vec4(base.rgb * (ambient.rgb * axis + lightColor * lightIntensity * NdotL), base.a);
}
`
)

var (
	ambientColor = [4]float32{0.45, 0.47, 0.52, 1.0}
	lightColor   = [3]float32{1.0, 0.97, 0.92}
)

const lightIntensity = float32(0.6)

// setLitShaderUniforms uploads the light values. Values are copied into local
// arrays before crossing into cgo.
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vec3 := func(name string, v [3]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			local := v
			rl.SetShaderValueV(shader, loc, local[:], rl.ShaderUniformVec3, 1)
		}
	}
	vec4 := func(name string, v [4]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			local := v
			rl.SetShaderValueV(shader, loc, local[:], rl.ShaderUniformVec4, 1)
		}
	}
	float := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3("lightDir", r.lightDir)
	vec3("lightColor", lightColor)
	vec4("ambient", ambientColor)
	float("lightIntensity", lightIntensity)
}
