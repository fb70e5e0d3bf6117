package scene

import "slices"

// Mesh pairs a geometry with one material, or one material per geometry group.
type Mesh struct {
	Object
	Geometry  *Geometry
	Materials []*Material
}

// NewMesh returns a mesh. With several materials, material i draws geometry group i
// (wrapping around when there are fewer materials than groups).
func NewMesh(g *Geometry, materials ...*Material) *Mesh {
	if len(materials) == 0 {
		materials = []*Material{NewBasicMaterial(0xffffff)}
	}
	m := &Mesh{Geometry: g, Materials: materials}
	m.init(m)
	return m
}

// Material returns the first material.
func (m *Mesh) Material() *Material {
	return m.Materials[0]
}

// MaterialFor returns the material used by geometry group i.
func (m *Mesh) MaterialFor(group int) *Material {
	return m.Materials[group%len(m.Materials)]
}

func (m *Mesh) cloneNode() Node {
	cp := *m
	cp.Materials = slices.Clone(m.Materials)
	return &cp
}

// AxesHelper draws the X (red), Y (green) and Z (blue) axes from the origin with the given length.
type AxesHelper struct {
	Object
	Size float32
}

// NewAxesHelper returns an axes helper.
func NewAxesHelper(size float32) *AxesHelper {
	a := &AxesHelper{Size: size}
	a.init(a)
	return a
}

func (a *AxesHelper) cloneNode() Node {
	cp := *a
	return &cp
}

// Scene is the root of a scene graph. Background is the clear color.
type Scene struct {
	Object
	Background Color
}

// New returns an empty scene with a black background.
func New() *Scene {
	s := &Scene{}
	s.init(s)
	s.Name = "scene"
	return s
}

func (s *Scene) cloneNode() Node {
	cp := *s
	return &cp
}

// Meshes returns every mesh in the scene, in traversal order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	s.Traverse(func(n Node) {
		if m, ok := n.(*Mesh); ok {
			out = append(out, m)
		}
	})
	return out
}

// Lights returns every light in the scene, in traversal order.
func (s *Scene) Lights() []Light {
	var out []Light
	s.Traverse(func(n Node) {
		if l, ok := n.(Light); ok {
			out = append(out, l)
		}
	})
	return out
}
