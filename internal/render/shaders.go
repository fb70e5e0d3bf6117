package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shader sources. Vertex attributes match raylib meshes: vertexPosition, vertexTexCoord,
// vertexNormal. raylib binds the material albedo map to texture0 and its color to colDiffuse.
const (
	litVS = `#version 330
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
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS shades with one ambient term, one directional light and one spot light.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform float hasDir;
uniform vec3 dirColor;
uniform vec3 dirToLight;
uniform float hasSpot;
uniform vec3 spotColor;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform float spotCos;
uniform float spotPenumbraCos;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;

vec3 lightTerm(vec3 N, vec3 L, vec3 V, vec3 color, vec3 albedo) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = albedo * NdotL * color;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  return diffuse + color * spec * (NdotL > 0.0 ? 1.0 : 0.0);
}

void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 V = normalize(viewPos - fragPosition);
  vec3 rgb = ambient * tint.rgb;
  if (hasDir > 0.5) {
    rgb += lightTerm(N, normalize(dirToLight), V, dirColor, tint.rgb);
  }
  if (hasSpot > 0.5) {
    vec3 L = normalize(spotPos - fragPosition);
    float cone = smoothstep(spotCos, spotPenumbraCos, dot(-L, normalize(spotDir)));
    rgb += lightTerm(N, L, V, spotColor * cone, tint.rgb);
  }
  finalColor = vec4(rgb, tint.a);
}
`
	// normalFS colors a surface by its view-space normal.
	normalVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matView) * mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	normalFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  finalColor = vec4(N * 0.5 + 0.5, colDiffuse.a);
}
`
	// flatFS draws a solid color; used for basic materials and projected shadows.
	flatVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec2 fragTexCoord;
void main() {
  fragTexCoord = vertexTexCoord;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	flatFS = `#version 330
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  finalColor = texture(texture0, fragTexCoord) * colDiffuse;
}
`
)

// Phong and standard highlight settings.
const (
	phongSpecularPower    = float32(30)
	phongSpecularStrength = float32(0.35)
	standardSpecularPower = float32(16)
)

// lighting is the per-frame light state fed to the lit shader. Directions are unit vectors
// and spotInner > spotCos even when the light is absent.
type lighting struct {
	viewPos    [3]float32
	ambient    [3]float32
	hasDir     bool
	hasSpot    bool
	dirColor   [3]float32
	dirToLight [3]float32
	spotColor  [3]float32
	spotPos    [3]float32
	spotDir    [3]float32
	spotCos    float32
	spotInner  float32
}

// setLitShaderUniforms uploads the frame's lights and the material's highlight to shader
// (cgo-safe: local arrays).
func setLitShaderUniforms(shader rl.Shader, l *lighting, specPower, specStrength float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vec3 := func(name string, v [3]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			vals := [3]float32{v[0], v[1], v[2]}
			rl.SetShaderValueV(shader, loc, vals[:], rl.ShaderUniformVec3, 1)
		}
	}
	float := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	flag := func(name string, on bool) {
		if on {
			float(name, 1)
		} else {
			float(name, 0)
		}
	}
	vec3("viewPos", l.viewPos)
	flag("hasDir", l.hasDir)
	flag("hasSpot", l.hasSpot)
	vec3("ambient", l.ambient)
	vec3("dirColor", l.dirColor)
	vec3("dirToLight", l.dirToLight)
	vec3("spotColor", l.spotColor)
	vec3("spotPos", l.spotPos)
	vec3("spotDir", l.spotDir)
	float("spotCos", l.spotCos)
	float("spotPenumbraCos", l.spotInner)
	float("specularPower", specPower)
	float("specularStrength", specStrength)
}
