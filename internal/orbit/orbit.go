// Package orbit rotates, zooms and pans a perspective camera around a target point.
// Input arrives as pixel deltas and wheel steps, so the controls work without a window.
package orbit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"scenedemos/internal/scene"
)

const eps = 1e-6

// Controls keeps the camera on a sphere around Target. Rotate, Dolly and Pan queue motion;
// Update applies it to the camera.
type Controls struct {
	Camera *scene.PerspectiveCamera
	Target scene.Vec3

	Enabled       bool
	EnableDamping bool
	DampingFactor float32

	MinDistance, MaxDistance     float32
	MinPolarAngle, MaxPolarAngle float32

	RotateSpeed, ZoomSpeed, PanSpeed float32

	viewportHeight float32
	deltaTheta     float32
	deltaPhi       float32
	scale          float32
	panOffset      mgl32.Vec3
}

// New attaches controls to cam, orbiting the point the camera currently looks at.
func New(cam *scene.PerspectiveCamera) *Controls {
	return &Controls{
		Camera:         cam,
		Target:         cam.Target,
		Enabled:        true,
		DampingFactor:  0.05,
		MaxDistance:    math32.Inf(1),
		MaxPolarAngle:  math32.Pi,
		RotateSpeed:    1,
		ZoomSpeed:      1,
		PanSpeed:       1,
		viewportHeight: 1,
		scale:          1,
	}
}

// SetViewport records the window height that pixel deltas are measured against.
func (c *Controls) SetViewport(width, height int) {
	if height > 0 {
		c.viewportHeight = float32(height)
	}
}

// Rotate queues an orbit for a pointer drag of (dx, dy) pixels. Dragging the full viewport
// height turns the camera a whole circle.
func (c *Controls) Rotate(dx, dy float32) {
	if !c.Enabled {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * dx / c.viewportHeight * c.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / c.viewportHeight * c.RotateSpeed
}

// Dolly queues a zoom of wheel steps. Positive steps move the camera towards the target.
func (c *Controls) Dolly(steps float32) {
	if !c.Enabled || steps == 0 {
		return
	}
	c.scale *= math32.Pow(0.95, c.ZoomSpeed*steps)
}

// Pan queues a sideways move of camera and target for a pointer drag of (dx, dy) pixels,
// scaled so the point under the cursor at target depth follows the pointer.
func (c *Controls) Pan(dx, dy float32) {
	if !c.Enabled {
		return
	}
	pos := c.Camera.Position.Vec()
	target := c.Target.Vec()
	offset := pos.Sub(target)
	dist := offset.Len() * math32.Tan(mgl32.DegToRad(c.Camera.Fov)/2)

	forward := target.Sub(pos)
	if forward.Len() < eps {
		return
	}
	forward = forward.Normalize()
	right := forward.Cross(c.Camera.Up.Vec())
	if right.Len() < eps {
		return
	}
	right = right.Normalize()
	up := right.Cross(forward)

	left := right.Mul(-2 * dx * dist / c.viewportHeight * c.PanSpeed)
	upward := up.Mul(2 * dy * dist / c.viewportHeight * c.PanSpeed)
	c.panOffset = c.panOffset.Add(left).Add(upward)
}

// Update applies queued motion and aims the camera at Target. It reports whether the camera
// moved. Call once per frame; with damping enabled motion eases out over several frames.
func (c *Controls) Update() bool {
	target := c.Target.Vec()
	before := c.Camera.Position.Vec()
	offset := before.Sub(target)

	radius := offset.Len()
	var theta, phi float32
	if radius > 0 {
		theta = math32.Atan2(offset.X(), offset.Z())
		phi = math32.Acos(mgl32.Clamp(offset.Y()/radius, -1, 1))
	}

	k := float32(1)
	if c.EnableDamping {
		k = c.DampingFactor
	}
	theta += c.deltaTheta * k
	phi += c.deltaPhi * k
	phi = mgl32.Clamp(phi, c.MinPolarAngle, c.MaxPolarAngle)
	phi = mgl32.Clamp(phi, eps, math32.Pi-eps)

	radius = mgl32.Clamp(radius*c.scale, c.MinDistance, c.MaxDistance)

	target = target.Add(c.panOffset.Mul(k))
	c.Target = scene.FromVec(target)

	sinPhi := math32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}
	after := target.Add(offset)
	c.Camera.Position = scene.FromVec(after)
	c.Camera.LookAt(target.X(), target.Y(), target.Z())

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1

	return after.Sub(before).Len() > eps
}
