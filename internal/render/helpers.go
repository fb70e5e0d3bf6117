package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scenedemos/internal/scene"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// drawGrid draws a grid on the XZ plane (Y=0) with major and minor lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}

// Axis colors: X red, Y green, Z blue.
var (
	axisX = rl.NewColor(255, 0, 0, 255)
	axisY = rl.NewColor(0, 255, 0, 255)
	axisZ = rl.NewColor(0, 0, 255, 255)
)

// drawAxes draws the three axes of an axes helper from its origin in world space.
func drawAxes(size float32, world mgl32.Mat4) {
	o := world.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	origin := rl.NewVector3(o[0], o[1], o[2])
	for i, c := range []rl.Color{axisX, axisY, axisZ} {
		var dir mgl32.Vec4
		dir[i] = size
		dir[3] = 1
		p := world.Mul4x1(dir)
		rl.DrawLine3D(origin, rl.NewVector3(p[0], p[1], p[2]), c)
	}
}

// drawSegments draws world-space helper lines.
func drawSegments(segs []scene.Segment) {
	for _, s := range segs {
		rl.DrawLine3D(toVector3(s.From), toVector3(s.To), toColor(s.Color, 255))
	}
}
