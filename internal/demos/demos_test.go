package demos

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenedemos/internal/gui"
	"scenedemos/internal/logger"
	"scenedemos/internal/scene"
)

const eps = 1e-4

func build(t *testing.T, name string) (*Demo, *logger.Logger) {
	t.Helper()
	log := logger.New("")
	d, err := Build(name, Options{Width: 800, Height: 600, Log: log, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return d, log
}

func meshes(d *Demo) []*scene.Mesh {
	return d.Scene.Meshes()
}

func findGroup(root scene.Node, name string) *scene.Group {
	var out *scene.Group
	root.Base().Traverse(func(n scene.Node) {
		if g, ok := n.(*scene.Group); ok && g.Name == name && out == nil {
			out = g
		}
	})
	return out
}

// pixelOf projects a world point to window pixels for d's camera.
func pixelOf(d *Demo, p scene.Vec3) (float32, float32) {
	w, h := d.Size()
	clip := d.Camera.ProjectionMatrix().Mul4(d.Camera.ViewMatrix()).Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	return (nx + 1) / 2 * float32(w), (1 - ny) / 2 * float32(h)
}

func TestBuildEveryDemo(t *testing.T) {
	for _, name := range Names() {
		d, _ := build(t, name)
		assert.Equal(t, name, d.Name)
		assert.NotEmpty(t, Summary(name), name)
		assert.NotEmpty(t, meshes(d), name)
		assert.InDelta(t, 800.0/600.0, d.Camera.Aspect, eps, name)
		d.Update(time.Unix(0, 0), 0.5)
	}
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build("teapot", Options{})
	assert.ErrorIs(t, err, ErrUnknownDemo)
}

func TestCubesRotation(t *testing.T) {
	d, _ := build(t, "cubes")
	cubes := meshes(d)
	require.Len(t, cubes, cubeCount)
	for _, c := range cubes {
		assert.True(t, math32.Abs(c.Position.X) <= 2)
		assert.True(t, math32.Abs(c.Position.Z) <= 2)
	}

	d.Update(time.Unix(0, 0), 2.5)
	for i, c := range cubes {
		want := 2.5*0.4 + float32(i)
		assert.InDelta(t, want, c.Rotation.X, eps)
		assert.InDelta(t, want, c.Rotation.Y, eps)
	}
}

func TestGroupsAndSolarRotateGroups(t *testing.T) {
	d, _ := build(t, "groups")
	d.Update(time.Unix(0, 0), 1.25)
	g := findGroup(d.Scene, "cubes")
	require.NotNil(t, g)
	assert.InDelta(t, 1.25, g.Rotation.Z, eps)

	d, _ = build(t, "solar")
	d.Update(time.Unix(0, 0), math32.Pi/2)
	outer := findGroup(d.Scene, "system")
	inner := findGroup(d.Scene, "planet")
	require.NotNil(t, outer)
	require.NotNil(t, inner)
	assert.InDelta(t, math32.Pi/2, outer.Rotation.Z, eps)
	assert.InDelta(t, math32.Pi/2, inner.Rotation.Z, eps)
	// A quarter turn swings the planet group from +Y to -X.
	p := inner.WorldPosition()
	assert.InDelta(t, -2, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestPickerTogglesHighlight(t *testing.T) {
	d, log := build(t, "picker")
	var red *scene.Mesh
	for _, m := range meshes(d) {
		if m.Name == "red" {
			red = m
		}
	}
	require.NotNil(t, red)

	px, py := pixelOf(d, red.Position)
	d.Click(px, py)
	assert.Equal(t, highlight, red.Material().Color)
	assert.Equal(t, true, red.UserData[keySelected])

	d.Click(px, py)
	assert.Equal(t, scene.Color(0xff0000), red.Material().Color)
	assert.Equal(t, false, red.UserData[keySelected])

	lines := log.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, strings.Join(lines, "\n"), "picked red")
}

func TestPickerMissLeavesColors(t *testing.T) {
	d, _ := build(t, "picker")
	d.Click(0, 0)
	for _, m := range meshes(d) {
		assert.NotEqual(t, highlight, m.Material().Color)
		assert.Nil(t, m.UserData)
	}
}

type recordingSizer struct{ w, h int }

func (r *recordingSizer) SetSize(w, h int) { r.w, r.h = w, h }

func TestResize(t *testing.T) {
	d, _ := build(t, "truck")
	var r recordingSizer
	d.Resize(1000, 250, &r)
	assert.InDelta(t, 4, d.Camera.Aspect, eps)
	assert.Equal(t, recordingSizer{1000, 250}, r)
	want := mgl32.Perspective(mgl32.DegToRad(75), 4, 0.1, 1000)
	assert.True(t, want.ApproxEqual(d.Camera.ProjectionMatrix()))

	d.Resize(0, 100, &r)
	assert.Equal(t, recordingSizer{1000, 250}, r)
}

func TestPointerToNDC(t *testing.T) {
	assert.Equal(t, scene.Vec2{X: -1, Y: 1}, PointerToNDC(0, 0, 800, 600))
	assert.Equal(t, scene.Vec2{X: 0, Y: 0}, PointerToNDC(400, 300, 800, 600))
	assert.Equal(t, scene.Vec2{X: 1, Y: -1}, PointerToNDC(800, 600, 800, 600))
}

func TestTweenMidpoint(t *testing.T) {
	d, log := build(t, "tween")
	var sphere *scene.Mesh
	for _, m := range meshes(d) {
		if m.Name == "sphere" {
			sphere = m
		}
	}
	require.NotNil(t, sphere)

	t0 := time.Unix(100, 0)
	d.Update(t0, 0)
	assert.InDelta(t, -4, sphere.Position.X, eps)
	d.Update(t0.Add(500*time.Millisecond), 0.5)
	assert.InDelta(t, 0, sphere.Position.X, 1e-3)
	d.Update(t0.Add(time.Second), 1)
	assert.InDelta(t, 4, sphere.Position.X, eps)
	assert.Zero(t, d.Tweens.Len())

	all := strings.Join(log.Lines(), "\n")
	assert.Contains(t, all, "tween start")
	assert.Contains(t, all, "tween complete")
}

func TestTweenPanelStop(t *testing.T) {
	d, log := build(t, "tween")
	t0 := time.Unix(100, 0)
	d.Update(t0, 0)
	d.Update(t0.Add(200*time.Millisecond), 0.2)

	var stop *gui.Controller
	for _, c := range d.Panel.Controllers() {
		if c.Label() == "stop" {
			stop = c
		}
	}
	require.NotNil(t, stop)
	rows := d.Panel.Layout(0, 0)
	for _, r := range rows {
		if r.Controller == stop {
			cx, cy := r.Bounds.X+r.Bounds.W/2, r.Bounds.Y+r.Bounds.H/2
			d.Panel.HandlePointer(gui.Pointer{X: cx, Y: cy, Down: true, Pressed: true})
			d.Panel.HandlePointer(gui.Pointer{X: cx, Y: cy, Released: true})
		}
	}
	assert.Contains(t, strings.Join(log.Lines(), "\n"), "tween stop")
	d.Update(t0.Add(300*time.Millisecond), 0.3)
	assert.Zero(t, d.Tweens.Len())
}

func TestPanelOrbit(t *testing.T) {
	d, _ := build(t, "panel")
	var sphere *scene.Mesh
	for _, m := range meshes(d) {
		if m.Name == "sphere" {
			sphere = m
		}
	}
	require.NotNil(t, sphere)

	d.Update(time.Unix(0, 0), math32.Pi/2)
	assert.InDelta(t, 1.5, sphere.Position.X, eps)
	assert.InDelta(t, 0, sphere.Position.Z, eps)
	assert.NotEmpty(t, d.Panel.Controllers())
}

func TestCarStructure(t *testing.T) {
	d, _ := build(t, "car")
	car := findGroup(d.Scene, "car")
	require.NotNil(t, car)

	var wheels []*scene.Group
	for _, name := range []string{"wheel1", "wheel2", "wheel3", "wheel4"} {
		w := findGroup(car, name)
		require.NotNil(t, w, name)
		wheels = append(wheels, w)
		// One wheel box plus its own tire ring.
		require.Len(t, w.Children(), 2, name)
		tire, ok := w.Children()[1].(*scene.Group)
		require.True(t, ok)
		assert.Len(t, tire.Children(), tireBlocks)
	}
	assert.InDelta(t, -0.6, wheels[2].Position.Y, eps)
	assert.InDelta(t, -0.6, wheels[0].Position.X, eps)
	assert.NotSame(t, wheels[0].Children()[1], wheels[2].Children()[1])

	d.Update(time.Unix(0, 0), 5)
	assert.InDelta(t, -1, car.Position.Y, eps)
	for _, w := range wheels {
		assert.InDelta(t, -15, w.Rotation.X, eps)
	}
}

// dragSlider presses the slider labelled label at fraction f of its track.
func dragSlider(t *testing.T, p *gui.Panel, label string, f float32) {
	t.Helper()
	for _, r := range p.Layout(0, 0) {
		if r.Kind == gui.RowController && r.Label == label {
			x, y := r.Control.X+r.Control.W*f, r.Control.Y+1
			p.HandlePointer(gui.Pointer{X: x, Y: y, Down: true, Pressed: true})
			p.HandlePointer(gui.Pointer{X: x, Y: y, Released: true})
			return
		}
	}
	require.Failf(t, "no slider", "label %q", label)
}

func TestLightsTick(t *testing.T) {
	d, _ := build(t, "lights")
	named := map[string]*scene.Mesh{}
	for _, m := range meshes(d) {
		named[m.Name] = m
	}
	require.Contains(t, named, "torus")
	require.Contains(t, named, "cube")

	d.Update(time.Unix(0, 0), 1.25)
	for _, name := range []string{"torus", "cube"} {
		assert.InDelta(t, 1.25, named[name].Rotation.X, eps, name)
		assert.InDelta(t, 1.25, named[name].Rotation.Y, eps, name)
	}

	var sun *scene.DirectionalLight
	for _, l := range d.Scene.Lights() {
		if dl, ok := l.(*scene.DirectionalLight); ok {
			sun = dl
		}
	}
	require.NotNil(t, sun)
	assert.Equal(t, "sun", sun.Name)

	dragSlider(t, d.Panel, "intensity", 0.5)
	assert.InDelta(t, 0.5, sun.Intensity, 0.01)
	dragSlider(t, d.Panel, "x", 0.75)
	assert.InDelta(t, 2.5, sun.Position.X, 0.01)
	dragSlider(t, d.Panel, "y", 0.25)
	assert.InDelta(t, -2.5, sun.Position.Y, 0.01)
}

func TestOrbitAttachment(t *testing.T) {
	for _, name := range []string{"viewer", "groups", "panel", "lights", "textured", "picker", "car", "solar"} {
		d, _ := build(t, name)
		assert.True(t, d.Orbit, name)
	}
	d, _ := build(t, "cubes")
	assert.False(t, d.Orbit)
	assert.True(t, d.Stats)
}

func TestTruckClonesAreIndependent(t *testing.T) {
	d, _ := build(t, "truck")
	front := findGroup(d.Scene, "front wheels")
	back := findGroup(d.Scene, "back wheels")
	require.NotNil(t, front)
	require.NotNil(t, back)
	assert.Len(t, back.Children(), 3)
	assert.InDelta(t, 1, back.Position.Y, eps)
	assert.InDelta(t, -1, front.Position.Y, eps)

	d.Update(time.Unix(0, 0), 6)
	assert.InDelta(t, -12, front.Rotation.X, eps)
	assert.InDelta(t, -12, back.Rotation.X, eps)
	car := findGroup(d.Scene, "car")
	assert.InDelta(t, 0, car.Position.Z, eps)
}

func TestTexturedUsesConfiguredURLs(t *testing.T) {
	d, err := Build("textured", Options{TextureURLs: map[string]string{"maple": "http://example.test/m.png"}})
	require.NoError(t, err)
	require.Len(t, d.Textures, 2)
	assert.Equal(t, "http://example.test/m.png", d.Textures[0].URL)
	assert.Contains(t, d.Textures[1].URL, "p5.itc.cn")
	assert.True(t, d.ShadowMapEnabled)

	var cube *scene.Mesh
	for _, m := range meshes(d) {
		if m.Name == "cube" {
			cube = m
		}
	}
	require.NotNil(t, cube)
	assert.True(t, cube.CastShadow)
	assert.Same(t, cube.MaterialFor(0), cube.MaterialFor(2))
	assert.NotSame(t, cube.MaterialFor(0), cube.MaterialFor(1))
}
