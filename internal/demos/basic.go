package demos

import (
	"github.com/chewxy/math32"

	"scenedemos/internal/scene"
)

// cubeCount is the number of random cubes in the cubes demo.
const cubeCount = 20

// Cubes scatters random cubes; each spins at the shared rate offset by its index.
func Cubes(o Options) *Demo {
	d := newDemo(o, "Spinning cubes", scene.V3(0, 0, 5))
	d.Stats = true

	cubes := make([]*scene.Mesh, 0, cubeCount)
	for i := 0; i < cubeCount; i++ {
		size := o.Rand.Float32()
		m := scene.NewMesh(
			scene.NewBoxGeometry(size, size, size),
			scene.NewBasicMaterial(scene.ColorFromFloat(0xffffff*size)),
		)
		m.Position.Set(
			(o.Rand.Float32()-0.5)*4,
			(o.Rand.Float32()-0.5)*4,
			(o.Rand.Float32()-0.5)*4,
		)
		cubes = append(cubes, m)
		d.Scene.Add(m)
	}
	d.Scene.Add(scene.NewAxesHelper(2))

	d.Tick = func(t float32) {
		for i, c := range cubes {
			a := t*0.4 + float32(i)
			c.Rotation.X = a
			c.Rotation.Y = a
		}
	}
	return d
}

// Viewer shows a static cube to orbit around.
func Viewer(o Options) *Demo {
	d := newDemo(o, "Orbit viewer", scene.V3(5, 5, 5))
	d.Orbit = true
	d.Scene.Add(
		scene.NewAxesHelper(2),
		scene.NewMesh(scene.NewBoxGeometry(1, 1, 1), scene.NewBasicMaterial(0xffffff)),
	)
	return d
}

// Groups stacks three cubes in a group that rolls about Z.
func Groups(o Options) *Demo {
	d := newDemo(o, "Grouped cubes", scene.V3(0, 0, 5))
	d.Orbit = true

	box := scene.NewBoxGeometry(1, 1, 1)
	red := scene.NewMesh(box, scene.NewBasicMaterial(0xff0000))
	red.Position.Y = 1.5
	green := scene.NewMesh(box, scene.NewBasicMaterial(0x00ff00))
	blue := scene.NewMesh(box, scene.NewBasicMaterial(0x0000ff))
	blue.Position.Y = -1.5

	group := scene.NewGroup()
	group.Name = "cubes"
	group.Add(red, green, blue)
	d.Scene.Add(scene.NewAxesHelper(2), group)

	d.Tick = func(t float32) {
		group.Rotation.Z = t
	}
	return d
}

// Solar nests a two-body group inside another so the inner pair orbits while spinning.
func Solar(o Options) *Demo {
	d := newDemo(o, "Solar system", scene.V3(0, 0, 5))
	d.Orbit = true

	sun := scene.NewMesh(scene.NewBoxGeometry(1, 1, 1), scene.NewBasicMaterial(0x0000ff))
	planet := scene.NewMesh(scene.NewBoxGeometry(0.5, 0.5, 0.5), scene.NewBasicMaterial(0xff0000))
	moon := scene.NewMesh(scene.NewBoxGeometry(0.2, 0.2, 0.2), scene.NewBasicMaterial(0x00ff00))
	moon.Position.Y = -0.8

	inner := scene.NewGroup()
	inner.Name = "planet"
	inner.Add(planet, moon)
	inner.Position.Y = 2

	outer := scene.NewGroup()
	outer.Name = "system"
	outer.Add(inner, sun)
	d.Scene.Add(scene.NewAxesHelper(2), outer)

	d.Tick = func(t float32) {
		outer.Rotation.Z = t
		inner.Rotation.Z = t
	}
	return d
}

// circle returns n points on a circle of radius r in the XY plane, starting on +X.
func circle(n int, r float32) []scene.Vec3 {
	out := make([]scene.Vec3, n)
	for i := range out {
		a := 2 * math32.Pi * float32(i) / float32(n)
		out[i] = scene.V3(r*math32.Cos(a), r*math32.Sin(a), 0)
	}
	return out
}
