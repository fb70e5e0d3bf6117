package demos

import (
	"github.com/chewxy/math32"

	"scenedemos/internal/scene"
)

const (
	// tireBlocks is the number of blocks around each toy car tire.
	tireBlocks = 30
	// truckSpokes is the number of spokes in each truck wheel.
	truckSpokes = 10
)

// Car is a toy car: a box body with four wheel groups, each wrapped in a ring of blocks. The
// car drives along Y and loops every four seconds.
func Car(o Options) *Demo {
	d := newDemo(o, "Toy car", scene.V3(0, 0, 5))
	d.Orbit = true
	d.Stats = true

	normal := scene.NewNormalMaterial()

	body := scene.NewGroup()
	body.Name = "body"
	hull := scene.NewMesh(scene.NewBoxGeometry(1, 2, 0.5), normal)
	cabin := scene.NewMesh(scene.NewBoxGeometry(0.5, 0.5, 0.5), scene.NewBasicMaterial(0xff0000))
	cabin.Position.Z = 0.5
	body.Add(hull, cabin)

	car := scene.NewGroup()
	car.Name = "car"
	car.Add(body)

	wheel1 := scene.NewGroup()
	wheel1.Name = "wheel1"
	wheel1.Position.Set(-0.6, 0.6, 0)
	wheel1.Add(scene.NewMesh(scene.NewBoxGeometry(0.1, 0.6, 0.6), normal))

	wheel2 := scene.NewGroup()
	wheel2.Name = "wheel2"
	wheel2.Position.Set(0.6, 0.6, 0)
	wheel2.Add(scene.NewMesh(scene.NewBoxGeometry(0.1, 0.6, 0.6), normal))

	// The rear wheels are cloned before the tires go on; each wheel gets its own tire below.
	wheel3 := scene.Clone(wheel1)
	wheel3.Name = "wheel3"
	wheel3.Position.Y = -0.6
	wheel4 := scene.Clone(wheel2)
	wheel4.Name = "wheel4"
	wheel4.Position.Y = -0.6
	car.Add(wheel1, wheel2, wheel3, wheel4)

	tire := scene.NewGroup()
	tire.Name = "tire"
	block := scene.NewBoxGeometry(0.1, 0.1, 0.2)
	for _, p := range circle(tireBlocks, 0.5) {
		m := scene.NewMesh(block, normal)
		m.Position = p
		tire.Add(m)
	}
	tire.Rotation.Y = -math32.Pi / 2
	wheel1.Add(tire)
	wheel2.Add(scene.Clone(tire))
	wheel3.Add(scene.Clone(tire))
	wheel4.Add(scene.Clone(tire))

	d.Scene.Add(car, scene.NewAmbientLight(0xffffff, 1))

	wheels := []*scene.Group{wheel1, wheel2, wheel3, wheel4}
	d.Tick = func(t float32) {
		car.Position.Y = math32.Mod(t, 4) - 2
		for _, w := range wheels {
			w.Rotation.X = -3 * t
		}
	}
	return d
}

// Truck is a larger car: spoked torus wheels on axles, a box body with a prism roof, driving
// over a ground plane along Z.
func Truck(o Options) *Demo {
	d := newDemo(o, "Truck", scene.V3(2, 5, 5))
	d.Orbit = true
	d.Stats = true

	normal := scene.NewNormalMaterial()
	const axleLength = 2

	wheel1 := scene.NewGroup()
	wheel1.Name = "wheel"
	spoke := scene.NewCylinderGeometry(0.03, 0.03, 1, scene.CylinderOptions{})
	for i := 0; i < truckSpokes; i++ {
		m := scene.NewMesh(spoke, normal)
		m.Rotation.Z = 2 * math32.Pi / truckSpokes * float32(i)
		wheel1.Add(m)
	}
	wheel1.Add(scene.NewMesh(scene.NewTorusGeometry(0.5, 0.1, 10, 20), normal))
	wheel1.Position.Z = -axleLength / 2

	axle := scene.NewMesh(scene.NewCylinderGeometry(0.05, 0.05, axleLength, scene.CylinderOptions{}), normal)
	axle.Name = "axle"
	axle.Rotation.X = -math32.Pi / 2

	wheel2 := scene.Clone(wheel1)
	wheel2.Position.Z = axleLength / 2

	front := scene.NewGroup()
	front.Name = "front wheels"
	front.Add(wheel1, axle, wheel2)
	front.Rotation.Y = math32.Pi / 2
	front.Position.Y = -1

	back := scene.Clone(front)
	back.Name = "back wheels"
	back.Position.Y = 1

	roof := scene.NewMesh(scene.NewCylinderGeometry(1.2, 1.2, 1.6, scene.CylinderOptions{
		RadialSegments: 3,
		HeightSegments: 1,
		ThetaStart:     -math32.Pi / 2,
		ThetaLength:    math32.Pi,
	}), normal)
	roof.Rotation.Z = math32.Pi / 2

	body := scene.NewGroup()
	body.Name = "body"
	body.Add(scene.NewMesh(scene.NewBoxGeometry(1.6, 4, 0.5), normal), roof)

	car := scene.NewGroup()
	car.Name = "car"
	car.Add(front, back, body)
	car.Rotation.X = -math32.Pi / 2
	car.Position.Y = 0.5

	ground := scene.NewMesh(scene.NewPlaneGeometry(10, 10), scene.NewBasicMaterial(0xffffff))
	ground.Name = "ground"
	ground.Rotation.X = -math32.Pi / 2

	d.Scene.Add(car, ground, scene.NewAmbientLight(0xffffff, 1))

	d.Tick = func(t float32) {
		front.Rotation.X = -2 * t
		back.Rotation.X = -2 * t
		car.Position.Z = math32.Mod(t, 4) - 2
	}
	return d
}
