// Package render draws a scene graph with raylib. All GPU resources are created lazily on
// first use, after the window and OpenGL context exist.
package render

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scenedemos/internal/scene"
)

// shadowColor is the tint of projected shadows.
var shadowColor = rl.NewColor(0, 0, 0, 90)

// Renderer draws scenes into the current raylib window.
type Renderer struct {
	// ShadowMapEnabled turns on projected shadows from shadow-casting directional lights.
	ShadowMapEnabled bool
	// GridVisible draws the XZ reference grid.
	GridVisible bool

	width, height int

	meshes   map[*scene.Geometry]*gpuGeometry
	textures map[*scene.Texture]*gpuTexture

	shadersLoaded bool
	litShader     rl.Shader
	normalShader  rl.Shader
	flatShader    rl.Shader
	litMtl        rl.Material
	normalMtl     rl.Material
	flatMtl       rl.Material
	whiteTex      rl.Texture2D

	light lighting
}

// New returns a renderer for a width x height viewport.
func New(width, height int) *Renderer {
	return &Renderer{
		width:    width,
		height:   height,
		meshes:   make(map[*scene.Geometry]*gpuGeometry),
		textures: make(map[*scene.Texture]*gpuTexture),
	}
}

// SetSize records the viewport size. raylib resizes the framebuffer itself; the size is used
// for the camera aspect and overlay placement.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) ensureShaders() {
	if r.shadersLoaded {
		return
	}
	r.shadersLoaded = true
	r.whiteTex = rl.Texture2D{ID: rl.GetTextureIdDefault(), Width: 1, Height: 1, Mipmaps: 1, Format: rl.UncompressedR8g8b8a8}

	r.litShader = rl.LoadShaderFromMemory(litVS, litFS)
	r.normalShader = rl.LoadShaderFromMemory(normalVS, normalFS)
	r.flatShader = rl.LoadShaderFromMemory(flatVS, flatFS)

	r.litMtl = newMaterial(r.litShader)
	r.normalMtl = newMaterial(r.normalShader)
	r.flatMtl = newMaterial(r.flatShader)
}

// newMaterial returns a default material using shader when it compiled.
func newMaterial(shader rl.Shader) rl.Material {
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	return mtl
}

// Render draws s as seen from cam. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) {
	r.ensureShaders()
	r.collectLights(s, cam)

	rl.ClearBackground(toColor(s.Background, 255))
	rl.BeginMode3D(toCamera(cam))
	if r.GridVisible {
		drawGrid()
	}

	var casters, receivers []*scene.Mesh
	var shadowLights []*scene.DirectionalLight
	scene.Walk(s, func(n scene.Node, world mgl32.Mat4) {
		switch v := n.(type) {
		case *scene.Mesh:
			r.drawMesh(v, world)
			if v.CastShadow {
				casters = append(casters, v)
			}
			if v.ReceiveShadow {
				receivers = append(receivers, v)
			}
		case *scene.AxesHelper:
			drawAxes(v.Size, world)
		case *scene.SpotLightHelper:
			drawSegments(v.Segments())
		case *scene.DirectionalLight:
			if v.CastShadow {
				shadowLights = append(shadowLights, v)
			}
		}
	})
	if r.ShadowMapEnabled {
		r.drawShadows(shadowLights, casters, receivers)
	}
	rl.EndMode3D()
}

// collectLights stores the frame's light summary for the lit shader.
func (r *Renderer) collectLights(s *scene.Scene, cam *scene.PerspectiveCamera) {
	r.light = summarizeLights(s.Lights(), cam.WorldPosition())
}

// summarizeLights sums ambient lights and picks the first visible directional and spot light.
func summarizeLights(lights []scene.Light, viewPos scene.Vec3) lighting {
	l := lighting{
		viewPos:    vec3(viewPos),
		dirToLight: [3]float32{0, 1, 0},
		spotDir:    [3]float32{0, -1, 0},
		spotCos:    0,
		spotInner:  1e-4,
	}
	for _, light := range lights {
		if !light.Base().Visible {
			continue
		}
		base := light.Light()
		cr, cg, cb := base.Color.Floats()
		c := [3]float32{cr * base.Intensity, cg * base.Intensity, cb * base.Intensity}
		switch v := light.(type) {
		case *scene.AmbientLight:
			l.ambient[0] += c[0]
			l.ambient[1] += c[1]
			l.ambient[2] += c[2]
		case *scene.DirectionalLight:
			dir := v.Direction()
			if l.hasDir || dir.Len() < 1e-6 {
				continue
			}
			l.hasDir = true
			l.dirColor = c
			l.dirToLight = vec3(dir)
		case *scene.SpotLight:
			dir := v.Direction()
			if l.hasSpot || dir.Len() < 1e-6 {
				continue
			}
			l.hasSpot = true
			l.spotColor = c
			l.spotPos = vec3(v.WorldPosition())
			l.spotDir = vec3(dir)
			l.spotCos = math32.Cos(v.Angle)
			l.spotInner = math32.Max(math32.Cos(v.Angle*(1-v.Penumbra)), l.spotCos+1e-4)
		}
	}
	return l
}

// drawMesh draws each geometry group of m with its material.
func (r *Renderer) drawMesh(m *scene.Mesh, world mgl32.Mat4) {
	if m.Geometry == nil {
		return
	}
	g := r.ensureGeometry(m.Geometry)
	transform := toMatrix(world)
	for i, part := range g.parts {
		r.drawPart(part, m.MaterialFor(i), transform)
	}
}

func (r *Renderer) drawPart(mesh rl.Mesh, mat *scene.Material, transform rl.Matrix) {
	var mtl rl.Material
	tex := r.whiteTex
	switch mat.Kind {
	case scene.Normal:
		mtl = r.normalMtl
	case scene.Phong, scene.Standard:
		mtl = r.litMtl
		power, strength := phongSpecularPower, phongSpecularStrength
		if mat.Kind == scene.Standard {
			power, strength = standardSpecularPower, 0
		}
		setLitShaderUniforms(mtl.Shader, &r.light, power, strength)
	default:
		mtl = r.flatMtl
	}
	if mat.Map != nil {
		if t, ok := r.ensureTexture(mat.Map); ok {
			tex = t
		}
	}
	rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(mat.Color, 255)
	}

	switch mat.Side {
	case scene.DoubleSide:
		rl.DisableBackfaceCulling()
	case scene.BackSide:
		rl.SetCullFace(cullFaceFront)
	}
	if mat.Wireframe {
		rl.EnableWireMode()
	}
	rl.DrawMesh(mesh, mtl, transform)
	if mat.Wireframe {
		rl.DisableWireMode()
	}
	switch mat.Side {
	case scene.DoubleSide:
		rl.EnableBackfaceCulling()
	case scene.BackSide:
		rl.SetCullFace(cullFaceBack)
	}
}

// rlgl cull face modes.
const (
	cullFaceFront = 0
	cullFaceBack  = 1
)

// drawShadows flattens every caster onto every flat receiver along each shadow light.
func (r *Renderer) drawShadows(lights []*scene.DirectionalLight, casters, receivers []*scene.Mesh) {
	if len(lights) == 0 || len(casters) == 0 || len(receivers) == 0 {
		return
	}
	rl.SetMaterialTexture(&r.flatMtl, rl.MapAlbedo, r.whiteTex)
	if albedo := r.flatMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = shadowColor
	}
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()
	for _, light := range lights {
		for _, recv := range receivers {
			proj, ok := scene.ShadowProjection(light, recv)
			if !ok {
				continue
			}
			for _, c := range casters {
				if c == recv || c.Geometry == nil {
					continue
				}
				g := r.ensureGeometry(c.Geometry)
				transform := toMatrix(proj.Mul4(c.WorldMatrix()))
				for _, part := range g.parts {
					rl.DrawMesh(part, r.flatMtl, transform)
				}
			}
		}
	}
}

// Close releases GPU meshes, textures and shaders.
func (r *Renderer) Close() {
	for g, gg := range r.meshes {
		gg.unload()
		delete(r.meshes, g)
	}
	for t, gt := range r.textures {
		if gt.loaded {
			rl.UnloadTexture(gt.tex)
		}
		delete(r.textures, t)
	}
	if r.shadersLoaded {
		for _, s := range []rl.Shader{r.litShader, r.normalShader, r.flatShader} {
			if rl.IsShaderValid(s) {
				rl.UnloadShader(s)
			}
		}
		r.shadersLoaded = false
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toCamera(c *scene.PerspectiveCamera) rl.Camera3D {
	p := c.WorldPosition()
	return rl.Camera3D{
		Position:   rl.NewVector3(p.X, p.Y, p.Z),
		Target:     rl.NewVector3(c.Target.X, c.Target.Y, c.Target.Z),
		Up:         rl.NewVector3(c.Up.X, c.Up.Y, c.Up.Z),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

func toColor(c scene.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, alpha)
}

func vec3(v scene.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func toVector3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
