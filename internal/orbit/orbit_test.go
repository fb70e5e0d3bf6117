package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"scenedemos/internal/scene"
)

func newControls() (*Controls, *scene.PerspectiveCamera) {
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position.Set(0, 0, 5)
	cam.LookAt(0, 0, 0)
	c := New(cam)
	c.SetViewport(800, 800)
	return c, cam
}

func TestUpdateWithoutInputKeepsCamera(t *testing.T) {
	c, cam := newControls()
	assert.False(t, c.Update())
	assert.InDelta(t, 5, cam.Position.Z, 1e-4)
}

func TestRotateQuarterTurn(t *testing.T) {
	c, cam := newControls()
	c.Rotate(200, 0)
	assert.True(t, c.Update())
	assert.InDelta(t, -5, cam.Position.X, 1e-3)
	assert.InDelta(t, 0, cam.Position.Z, 1e-3)
	assert.Equal(t, scene.V3(0, 0, 0), cam.Target)
}

func TestPolarAngleStaysOffThePole(t *testing.T) {
	c, cam := newControls()
	c.Rotate(0, 2000)
	c.Update()
	assert.InDelta(t, 5, cam.Position.Y, 1e-3)
	assert.False(t, math32.IsNaN(cam.Position.X))

	c.MaxPolarAngle = math32.Pi / 2
	c.Rotate(0, -2000)
	c.Update()
	assert.GreaterOrEqual(t, cam.Position.Y, float32(-1e-3))
}

func TestDollyClampsDistance(t *testing.T) {
	c, cam := newControls()
	c.MinDistance, c.MaxDistance = 2, 6

	c.Dolly(1)
	c.Update()
	assert.InDelta(t, 5*0.95, cam.Position.Len(), 1e-3)

	c.Dolly(-50)
	c.Update()
	assert.InDelta(t, 6, cam.Position.Len(), 1e-3)

	c.Dolly(100)
	c.Update()
	assert.InDelta(t, 2, cam.Position.Len(), 1e-3)
}

func TestPanMovesTargetAndCamera(t *testing.T) {
	c, cam := newControls()
	c.Pan(100, 0)
	c.Update()
	assert.Less(t, c.Target.X, float32(0))
	assert.InDelta(t, c.Target.X, cam.Position.X, 1e-4)
	assert.InDelta(t, 5, cam.Position.Z, 1e-4)
	assert.Equal(t, c.Target, cam.Target)
}

func TestDampingEasesOut(t *testing.T) {
	c, cam := newControls()
	c.EnableDamping = true
	c.Rotate(200, 0)

	c.Update()
	first := math32.Atan2(cam.Position.X, cam.Position.Z)
	assert.InDelta(t, -math32.Pi/2*0.05, first, 1e-3)

	for i := 0; i < 500; i++ {
		c.Update()
	}
	final := math32.Atan2(cam.Position.X, cam.Position.Z)
	assert.InDelta(t, -math32.Pi/2, final, 1e-2)
}

func TestDisabledIgnoresInput(t *testing.T) {
	c, cam := newControls()
	c.Enabled = false
	c.Rotate(200, 0)
	c.Dolly(5)
	c.Update()
	assert.InDelta(t, 5, cam.Position.Z, 1e-4)
}
