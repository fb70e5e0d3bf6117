package demos

import "scenedemos/internal/scene"

// UserData keys written by the picker.
const (
	keySelected      = "selected"
	keyOriginalColor = "originalColor"
)

// highlight is the color of a selected sphere.
const highlight scene.Color = 0xffff00

// Picker lays out three spheres; clicking one toggles its highlight.
func Picker(o Options) *Demo {
	d := newDemo(o, "Click to select", scene.V3(0, 10, 9))
	d.Orbit = true
	d.Stats = true

	geo := scene.NewSphereGeometry(1, 32, 32)
	red := scene.NewMesh(geo, scene.NewBasicMaterial(0xff0000))
	red.Name = "red"
	red.Position.X = 4
	green := scene.NewMesh(geo, scene.NewBasicMaterial(0x00ff00))
	green.Name = "green"
	blue := scene.NewMesh(geo, scene.NewBasicMaterial(0x0000ff))
	blue.Name = "blue"
	blue.Position.X = -4

	d.Scene.Add(scene.NewAxesHelper(5), red, green, blue)

	targets := []scene.Node{red, green, blue}
	rc := scene.NewRaycaster()
	d.OnClick = func(px, py float32, ndc scene.Vec2) {
		o.Log.Logf("click at %.0f,%.0f ndc %.3f,%.3f", px, py, ndc.X, ndc.Y)
		rc.SetFromCamera(ndc, d.Camera)
		hits := rc.IntersectObjects(targets, false)
		if len(hits) == 0 {
			return
		}
		m := hits[0].Object
		toggleSelected(m)
		o.Log.Logf("picked %s at distance %.3f", m.Name, hits[0].Distance)
	}
	return d
}

// toggleSelected highlights m, or restores the color it had before it was highlighted.
func toggleSelected(m *scene.Mesh) {
	mat := m.Material()
	if sel, _ := m.UserData[keySelected].(bool); sel {
		m.SetUserData(keySelected, false)
		if c, ok := m.UserData[keyOriginalColor].(scene.Color); ok {
			mat.Color = c
		}
		return
	}
	m.SetUserData(keySelected, true)
	m.SetUserData(keyOriginalColor, mat.Color)
	mat.Color = highlight
}
