package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenedemos/internal/gui"
	"scenedemos/internal/orbit"
	"scenedemos/internal/scene"
	"scenedemos/internal/stats"
)

func newCamera() *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position.Set(0, 0, 5)
	cam.LookAt(0, 0, 0)
	return cam
}

func TestClickWithoutDrag(t *testing.T) {
	var clicks [][2]float32
	r := &Router{Click: func(x, y float32) { clicks = append(clicks, [2]float32{x, y}) }}

	r.Handle(Frame{X: 300, Y: 200, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: 302, Y: 201, LeftReleased: true})
	require.Len(t, clicks, 1)
	assert.Equal(t, [2]float32{302, 201}, clicks[0])

	r.Handle(Frame{X: 300, Y: 200, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: 340, Y: 200, DX: 40, LeftDown: true})
	r.Handle(Frame{X: 340, Y: 200, LeftReleased: true})
	assert.Len(t, clicks, 1, "a drag is not a click")
}

func TestDragOrbitsCamera(t *testing.T) {
	cam := newCamera()
	ctl := orbit.New(cam)
	ctl.SetViewport(600, 600)
	r := &Router{Orbit: ctl}

	r.Handle(Frame{X: 300, Y: 300, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: 450, Y: 300, DX: 150, LeftDown: true})
	ctl.Update()
	assert.NotEqual(t, float32(0), cam.Position.X)
	assert.InDelta(t, 5, cam.Position.Len(), 1e-3)

	before := cam.Position.Len()
	r.Handle(Frame{X: 300, Y: 300, Wheel: 3})
	ctl.Update()
	assert.Less(t, cam.Position.Len(), before)
}

func TestClickInsideSlopKeepsCamera(t *testing.T) {
	cam := newCamera()
	ctl := orbit.New(cam)
	ctl.SetViewport(600, 600)
	clicked := 0
	r := &Router{Orbit: ctl, Click: func(x, y float32) { clicked++ }}

	r.Handle(Frame{X: 300, Y: 300, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: 302, Y: 301, DX: 2, DY: 1, LeftDown: true})
	r.Handle(Frame{X: 303, Y: 301, DX: 1, LeftDown: true})
	r.Handle(Frame{X: 303, Y: 301, LeftReleased: true})
	ctl.Update()

	assert.Equal(t, 1, clicked)
	assert.InDelta(t, 0, cam.Position.X, 1e-5)
	assert.InDelta(t, 0, cam.Position.Y, 1e-5)
	assert.InDelta(t, 5, cam.Position.Z, 1e-5)
}

func TestDragOutOfSlopAppliesWholeMotion(t *testing.T) {
	stepped := newCamera()
	ctlA := orbit.New(stepped)
	ctlA.SetViewport(600, 600)
	a := &Router{Orbit: ctlA}
	a.Handle(Frame{X: 300, Y: 300, LeftPressed: true, LeftDown: true})
	a.Handle(Frame{X: 303, Y: 300, DX: 3, LeftDown: true})
	a.Handle(Frame{X: 330, Y: 300, DX: 27, LeftDown: true})
	a.Handle(Frame{X: 360, Y: 300, DX: 30, LeftDown: true})
	ctlA.Update()

	direct := newCamera()
	ctlB := orbit.New(direct)
	ctlB.SetViewport(600, 600)
	ctlB.Rotate(60, 0)
	ctlB.Update()

	assert.InDelta(t, direct.Position.X, stepped.Position.X, 1e-4)
	assert.InDelta(t, direct.Position.Z, stepped.Position.Z, 1e-4)
}

func TestPanelTakesPointerFirst(t *testing.T) {
	cam := newCamera()
	ctl := orbit.New(cam)
	ctl.SetViewport(600, 600)

	var v float32
	p := gui.New()
	p.AddSlider("v", &v, 0, 10, 0.01)
	rows := p.Layout(0, 0)
	var row gui.Row
	for _, rw := range rows {
		if rw.Kind == gui.RowController {
			row = rw
		}
	}
	require.NotNil(t, row.Controller)

	clicked := false
	r := &Router{Panel: p, Orbit: ctl, Click: func(x, y float32) { clicked = true }}
	x := row.Control.X + row.Control.W
	y := row.Control.Y + 1
	r.Handle(Frame{X: x, Y: y, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: x + 200, Y: y, DX: 200, LeftDown: true})
	r.Handle(Frame{X: x + 200, Y: y, LeftReleased: true})

	assert.InDelta(t, 10, v, 1e-4)
	assert.False(t, clicked)
	ctl.Update()
	assert.InDelta(t, 0, cam.Position.X, 1e-4, "panel drags do not orbit")
}

func TestStatsClickCyclesMode(t *testing.T) {
	now := time.Unix(0, 0)
	s := stats.NewWithSources(func() time.Time { return now }, func() uint64 { return 0 })
	clicked := false
	r := &Router{Stats: s, Click: func(x, y float32) { clicked = true }}

	r.Handle(Frame{X: 10, Y: 10, LeftPressed: true, LeftDown: true})
	r.Handle(Frame{X: 10, Y: 10, LeftReleased: true})
	assert.Equal(t, stats.ModeMS, s.Mode())
	assert.False(t, clicked)
}
