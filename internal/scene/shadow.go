package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// shadowLift keeps projected shadows just above the receiving surface to avoid z-fighting.
const shadowLift = 0.002

// PlanarShadowMatrix returns the matrix that squashes points onto plane along light.
// plane is (a, b, c, d) for ax + by + cz + d = 0. light is (x, y, z, 0) for a light
// infinitely far away in direction (x, y, z), or (x, y, z, 1) for a point light.
func PlanarShadowMatrix(plane, light mgl32.Vec4) mgl32.Mat4 {
	d := plane.Dot(light)
	var m mgl32.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			v := -light[row] * plane[col]
			if row == col {
				v += d
			}
			m[col*4+row] = v
		}
	}
	return m
}

// ReceiverPlane returns the world-space plane of a flat receiver mesh. Only plane geometries
// qualify; other shapes report false.
func ReceiverPlane(m *Mesh) (mgl32.Vec4, bool) {
	if m.Geometry == nil || m.Geometry.Kind != "plane" {
		return mgl32.Vec4{}, false
	}
	world := m.WorldMatrix()
	n := world.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize()
	p := world.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	return mgl32.Vec4{n[0], n[1], n[2], -n.Dot(p)}, true
}

// ShadowProjection returns the world transform that flattens a caster onto receiver as lit by
// light. Multiply it with the caster's world matrix. Returns false when receiver is not flat.
func ShadowProjection(light *DirectionalLight, receiver *Mesh) (mgl32.Mat4, bool) {
	plane, ok := ReceiverPlane(receiver)
	if !ok {
		return mgl32.Mat4{}, false
	}
	dir := light.Direction()
	proj := PlanarShadowMatrix(plane, mgl32.Vec4{dir.X, dir.Y, dir.Z, 0})
	lift := mgl32.Translate3D(plane[0]*shadowLift, plane[1]*shadowLift, plane[2]*shadowLift)
	return lift.Mul4(proj), true
}
