package scene

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line. Direction is unit length when built by SetFromCamera.
type Ray struct {
	Origin, Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersection is one ray hit on a mesh triangle.
type Intersection struct {
	Distance  float32
	Point     Vec3
	Object    *Mesh
	FaceIndex int
}

// Raycaster finds meshes under a ray. Hits closer than Near or farther than Far are dropped.
type Raycaster struct {
	Ray       Ray
	Near, Far float32
}

// NewRaycaster returns a raycaster with an unbounded range.
func NewRaycaster() *Raycaster {
	return &Raycaster{Far: math32.Inf(1)}
}

// SetFromCamera aims the ray from the camera through a point in normalized device coordinates
// (x and y in [-1, 1], y up).
func (rc *Raycaster) SetFromCamera(ndc Vec2, cam *PerspectiveCamera) {
	origin := cam.WorldPosition()
	inv := cam.ProjectionMatrix().Mul4(cam.ViewMatrix()).Inv()
	p := inv.Mul4x1(mgl32.Vec4{ndc.X, ndc.Y, 0.5, 1})
	if p[3] != 0 {
		p = p.Mul(1 / p[3])
	}
	rc.Ray = Ray{Origin: origin, Direction: normalize(Vec3{p[0], p[1], p[2]}.Sub(origin))}
}

// IntersectObject tests n (and its descendants when recursive) and returns hits sorted by
// distance, nearest first.
func (rc *Raycaster) IntersectObject(n Node, recursive bool) []Intersection {
	return rc.IntersectObjects([]Node{n}, recursive)
}

// IntersectObjects tests every node in nodes; see IntersectObject.
func (rc *Raycaster) IntersectObjects(nodes []Node, recursive bool) []Intersection {
	var hits []Intersection
	for _, n := range nodes {
		if recursive {
			n.Base().Traverse(func(k Node) {
				hits = rc.intersectNode(k, hits)
			})
		} else {
			hits = rc.intersectNode(n, hits)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (rc *Raycaster) intersectNode(n Node, hits []Intersection) []Intersection {
	m, ok := n.(*Mesh)
	if !ok || m.Geometry == nil || !m.Visible {
		return hits
	}
	world := m.WorldMatrix()
	if !rc.hitsBounds(m.Geometry.Bounds, world) {
		return hits
	}
	inv := world.Inv()
	o := inv.Mul4x1(mgl32.Vec4{rc.Ray.Origin.X, rc.Ray.Origin.Y, rc.Ray.Origin.Z, 1})
	d := inv.Mul4x1(mgl32.Vec4{rc.Ray.Direction.X, rc.Ray.Direction.Y, rc.Ray.Direction.Z, 0})
	local := Ray{Origin: Vec3{o[0], o[1], o[2]}, Direction: Vec3{d[0], d[1], d[2]}}

	g := m.Geometry
	for i := 0; i < g.TriangleCount(); i++ {
		side := rc.sideFor(m, 3*i)
		a, b, c := g.Triangle(i)
		var t float32
		var hit bool
		if side == BackSide {
			t, hit = intersectTriangle(local, c, b, a, true)
		} else {
			t, hit = intersectTriangle(local, a, b, c, side == FrontSide)
		}
		if !hit {
			continue
		}
		lp := local.At(t)
		wp := world.Mul4x1(mgl32.Vec4{lp.X, lp.Y, lp.Z, 1})
		point := Vec3{wp[0], wp[1], wp[2]}
		dist := point.Sub(rc.Ray.Origin).Len()
		if dist < rc.Near || dist > rc.Far {
			continue
		}
		hits = append(hits, Intersection{Distance: dist, Point: point, Object: m, FaceIndex: i})
	}
	return hits
}

// sideFor returns the side of the material drawing the triangle that starts at index offset.
func (rc *Raycaster) sideFor(m *Mesh, offset int) Side {
	for _, gr := range m.Geometry.Groups {
		if offset >= gr.Start && offset < gr.Start+gr.Count {
			return m.MaterialFor(gr.MaterialIndex).Side
		}
	}
	return m.Material().Side
}

// hitsBounds rejects meshes whose world-space bounding sphere the ray misses.
func (rc *Raycaster) hitsBounds(s Sphere, world mgl32.Mat4) bool {
	c := world.Mul4x1(mgl32.Vec4{s.Center.X, s.Center.Y, s.Center.Z, 1})
	center := Vec3{c[0], c[1], c[2]}
	sx := world.Col(0).Vec3().Len()
	sy := world.Col(1).Vec3().Len()
	sz := world.Col(2).Vec3().Len()
	r := s.Radius * math32.Max(sx, math32.Max(sy, sz))

	toCenter := center.Sub(rc.Ray.Origin)
	t := dot(toCenter, rc.Ray.Direction)
	if t < 0 {
		// Behind the origin; only a hit when the origin is inside the sphere.
		return toCenter.Len() <= r
	}
	closest := rc.Ray.At(t)
	return closest.Sub(center).Len() <= r
}

// intersectTriangle returns the ray parameter of the hit on triangle abc. With backfaceCulling,
// triangles facing away from the ray (clockwise as seen from the origin) are ignored.
func intersectTriangle(r Ray, a, b, c Vec3, backfaceCulling bool) (float32, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	normal := cross(edge1, edge2)

	ddn := dot(r.Direction, normal)
	var sign float32
	switch {
	case ddn > 0:
		if backfaceCulling {
			return 0, false
		}
		sign = 1
	case ddn < 0:
		sign = -1
		ddn = -ddn
	default:
		return 0, false
	}
	diff := r.Origin.Sub(a)
	ddqxe2 := sign * dot(r.Direction, cross(diff, edge2))
	if ddqxe2 < 0 {
		return 0, false
	}
	dde1xq := sign * dot(r.Direction, cross(edge1, diff))
	if dde1xq < 0 {
		return 0, false
	}
	if ddqxe2+dde1xq > ddn {
		return 0, false
	}
	qdn := -sign * dot(diff, normal)
	if qdn < 0 {
		return 0, false
	}
	return qdn / ddn, true
}
