package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a pinhole camera. Fov is the vertical field of view in degrees.
// After changing Fov, Aspect, Near or Far call UpdateProjectionMatrix.
type PerspectiveCamera struct {
	Object
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
	Up     Vec3
	// Target is the world point the camera looks at.
	Target Vec3

	projection mgl32.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{Fov: fov, Aspect: aspect, Near: near, Far: far, Up: Vec3{0, 1, 0}, Target: Vec3{0, 0, -1}}
	c.init(c)
	c.UpdateProjectionMatrix()
	return c
}

// LookAt aims the camera at a world point.
func (c *PerspectiveCamera) LookAt(x, y, z float32) {
	c.Target = Vec3{x, y, z}
}

// UpdateProjectionMatrix recomputes the projection from Fov, Aspect, Near and Far.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last UpdateProjectionMatrix.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera matrix.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.WorldPosition().Vec(), c.Target.Vec(), c.Up.Vec())
}

func (c *PerspectiveCamera) cloneNode() Node {
	cp := *c
	return &cp
}

// Clock measures elapsed seconds. It starts on the first ElapsedTime call.
type Clock struct {
	now     func() time.Time
	start   time.Time
	running bool
}

// NewClock returns a clock driven by the wall clock.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockFunc returns a clock driven by now, for simulated time.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start (re)starts the clock at zero.
func (c *Clock) Start() {
	c.start = c.now()
	c.running = true
}

// ElapsedTime returns seconds since the clock started.
func (c *Clock) ElapsedTime() float32 {
	if !c.running {
		c.Start()
	}
	return float32(c.now().Sub(c.start).Seconds())
}
