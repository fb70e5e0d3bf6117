package demos

import (
	"github.com/chewxy/math32"

	"scenedemos/internal/gui"
	"scenedemos/internal/scene"
)

// orbitControls are the parameters of the sphere orbiting in the panel demo.
type orbitControls struct {
	Radius float32
	Speed  float32
}

// PanelDemo binds a cube, a sphere and the camera to a parameter panel. The sphere circles the
// origin at the radius and speed set in the panel.
func PanelDemo(o Options) *Demo {
	d := newDemo(o, "Parameter panel", scene.V3(5, 5, 5))
	d.Orbit = true
	p := gui.New()
	d.Panel = p

	cubeMat := scene.NewBasicMaterial(0xff0000)
	cube := scene.NewMesh(scene.NewBoxGeometry(1, 1, 1), cubeMat)
	cube.Name = "cube"
	p.AddColor("color", &cubeMat.Color).OnChange(func() {
		o.Log.Logf("cube color #%06x", uint32(cubeMat.Color))
	})

	sphereMat := scene.NewNormalMaterial()
	sphere := scene.NewMesh(scene.NewSphereGeometry(0.6, scene.DefaultSphereWidthSegments, scene.DefaultSphereHeightSegments), sphereMat)
	sphere.Name = "sphere"
	p.AddBool("wireframe", &sphereMat.Wireframe)

	pos := p.AddFolder("cube position")
	pos.AddSlider("x", &cube.Position.X, -3, 3, 0.01)
	pos.AddSlider("y", &cube.Position.Y, -3, 3, 0.01)
	pos.AddSlider("z", &cube.Position.Z, -3, 3, 0.01)

	d.Scene.Add(scene.NewAxesHelper(2), cube, sphere, scene.NewAmbientLight(0xffffff, 1))

	cam := p.AddFolder("camera position")
	cam.AddSlider("x", &d.Camera.Position.X, -5, 5, 0.01).Name("camera x")
	cam.AddSlider("y", &d.Camera.Position.Y, -5, 5, 0.01).Name("camera y")
	cam.AddSlider("z", &d.Camera.Position.Z, -5, 5, 0.01).Name("camera z")

	ctl := &orbitControls{Radius: 1.5, Speed: 1}
	p.AddNumber("r", &ctl.Radius).Min(0.3).Name("orbit radius")
	p.AddSlider("speed", &ctl.Speed, 0, 5, 0.01).Name("orbit speed")
	p.AddFunc("stop", func() {
		ctl.Speed = 0
		o.Log.Log("orbit stopped")
	})

	d.Tick = func(t float32) {
		sphere.Position.X = math32.Sin(t*ctl.Speed) * ctl.Radius
		sphere.Position.Z = math32.Cos(t*ctl.Speed) * ctl.Radius
	}
	return d
}

// Lights shows Phong surfaces under ambient, directional and spot lights. The directional
// light is tuned from the panel.
func Lights(o Options) *Demo {
	d := newDemo(o, "Lights", scene.V3(0, 2, 3))
	d.Orbit = true

	floor := scene.NewMesh(scene.NewPlaneGeometry(4, 4), scene.NewPhongMaterial(0xcccccc))
	floor.Name = "floor"
	floor.Rotation.X = -math32.Pi / 2

	mat := scene.NewPhongMaterial(0xff00ff)
	ball := scene.NewMesh(scene.NewSphereGeometry(0.5, scene.DefaultSphereWidthSegments, scene.DefaultSphereHeightSegments), mat)
	ball.Name = "ball"
	ball.Position.Y = 0.5
	torus := scene.NewMesh(scene.NewTorusGeometry(0.3, 0.1, 10, 20), mat)
	torus.Name = "torus"
	torus.Position.Set(-1, 0.8, 0)
	cube := scene.NewMesh(scene.NewBoxGeometry(0.5, 0.5, 0.5), mat)
	cube.Name = "cube"
	cube.Position.Set(1, 0.8, 0)

	ambient := scene.NewAmbientLight(0xffffff, 0.2)
	sun := scene.NewDirectionalLight(0xffffff, 1)
	sun.Name = "sun"
	sun.Position.Set(1, 1, 1)

	spot := scene.NewSpotLight(0xffffff, 1)
	spot.Position.Set(1, 1, 1)
	spot.Angle = 60.0 / 180 * math32.Pi

	d.Scene.Add(floor, ball, torus, cube, ambient, sun, spot, scene.NewSpotLightHelper(spot))

	p := gui.New()
	d.Panel = p
	f := p.AddFolder("DirectionalLight")
	f.AddColor("color", &sun.Color)
	f.AddSlider("intensity", &sun.Intensity, 0, 1, 0.01)
	f.AddSlider("x", &sun.Position.X, -5, 5, 0.01)
	f.AddSlider("y", &sun.Position.Y, -5, 5, 0.01)
	f.AddSlider("z", &sun.Position.Z, -5, 5, 0.01)

	d.Tick = func(t float32) {
		torus.Rotation.X, torus.Rotation.Y = t, t
		cube.Rotation.X, cube.Rotation.Y = t, t
	}
	return d
}
