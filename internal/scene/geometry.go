package scene

import (
	"github.com/chewxy/math32"
)

// GeometryGroup is a run of indices drawn with one material of a multi-material mesh.
type GeometryGroup struct {
	Start, Count  int
	MaterialIndex int
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center Vec3
	Radius float32
}

// Geometry is CPU-side vertex data: positions and normals (xyz), uvs (uv) and triangle
// indices. Parameters and orientation follow the three.js primitives so scenes built for that
// library look the same: planes lie in XY facing +Z, cylinders stand along Y.
type Geometry struct {
	Kind      string
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
	// Groups is set for geometries with per-face materials (boxes: +X, -X, +Y, -Y, +Z, -Z).
	Groups []GeometryGroup
	Bounds Sphere
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Vertex returns vertex i.
func (g *Geometry) Vertex(i int) Vec3 {
	return Vec3{g.Positions[3*i], g.Positions[3*i+1], g.Positions[3*i+2]}
}

// Triangle returns the corners of triangle i.
func (g *Geometry) Triangle(i int) (a, b, c Vec3) {
	return g.Vertex(int(g.Indices[3*i])), g.Vertex(int(g.Indices[3*i+1])), g.Vertex(int(g.Indices[3*i+2]))
}

// builder accumulates vertex attributes; index is the next vertex number.
type builder struct {
	g     *Geometry
	index int
}

func newBuilder(kind string) *builder {
	return &builder{g: &Geometry{Kind: kind}}
}

func (b *builder) vertex(p, n Vec3, u, v float32) int {
	b.g.Positions = append(b.g.Positions, p.X, p.Y, p.Z)
	b.g.Normals = append(b.g.Normals, n.X, n.Y, n.Z)
	b.g.UVs = append(b.g.UVs, u, v)
	b.index++
	return b.index - 1
}

func (b *builder) tri(a, c, d int) {
	b.g.Indices = append(b.g.Indices, uint16(a), uint16(c), uint16(d))
}

func (b *builder) done() *Geometry {
	b.g.Bounds = boundingSphere(b.g.Positions)
	return b.g
}

func boundingSphere(pos []float32) Sphere {
	if len(pos) < 3 {
		return Sphere{}
	}
	minV := Vec3{pos[0], pos[1], pos[2]}
	maxV := minV
	for i := 3; i+2 < len(pos); i += 3 {
		minV.X = math32.Min(minV.X, pos[i])
		minV.Y = math32.Min(minV.Y, pos[i+1])
		minV.Z = math32.Min(minV.Z, pos[i+2])
		maxV.X = math32.Max(maxV.X, pos[i])
		maxV.Y = math32.Max(maxV.Y, pos[i+1])
		maxV.Z = math32.Max(maxV.Z, pos[i+2])
	}
	center := minV.Add(maxV).Mul(0.5)
	var r float32
	for i := 0; i+2 < len(pos); i += 3 {
		d := Vec3{pos[i], pos[i+1], pos[i+2]}.Sub(center).Len()
		r = math32.Max(r, d)
	}
	return Sphere{Center: center, Radius: r}
}

func normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// axis sets component i (0=x, 1=y, 2=z) of v.
func axis(v *Vec3, i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}

// NewBoxGeometry returns a box centered at the origin with one group per face.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	b := newBuilder("box")
	// u, v, w axes; u and v directions; plane width, height and signed depth.
	faces := []struct {
		u, v, w    int
		udir, vdir float32
		pw, ph, pd float32
	}{
		{2, 1, 0, -1, -1, depth, height, width},   // +x
		{2, 1, 0, 1, -1, depth, height, -width},   // -x
		{0, 2, 1, 1, 1, width, depth, height},     // +y
		{0, 2, 1, 1, -1, width, depth, -height},   // -y
		{0, 1, 2, 1, -1, width, height, depth},    // +z
		{0, 1, 2, -1, -1, width, height, -depth},  // -z
	}
	for mi, f := range faces {
		start := len(b.g.Indices)
		base := b.index
		nsign := float32(1)
		if f.pd < 0 {
			nsign = -1
		}
		for iy := 0; iy <= 1; iy++ {
			y := float32(iy)*f.ph - f.ph/2
			for ix := 0; ix <= 1; ix++ {
				x := float32(ix)*f.pw - f.pw/2
				var p, n Vec3
				axis(&p, f.u, x*f.udir)
				axis(&p, f.v, y*f.vdir)
				axis(&p, f.w, f.pd/2)
				axis(&n, f.w, nsign)
				b.vertex(p, n, float32(ix), 1-float32(iy))
			}
		}
		a, bb, c, d := base, base+2, base+3, base+1
		b.tri(a, bb, d)
		b.tri(bb, c, d)
		b.g.Groups = append(b.g.Groups, GeometryGroup{Start: start, Count: 6, MaterialIndex: mi})
	}
	return b.done()
}

// NewPlaneGeometry returns a single-quad plane in XY facing +Z.
func NewPlaneGeometry(width, height float32) *Geometry {
	b := newBuilder("plane")
	n := Vec3{0, 0, 1}
	for iy := 0; iy <= 1; iy++ {
		y := float32(iy)*height - height/2
		for ix := 0; ix <= 1; ix++ {
			x := float32(ix)*width - width/2
			b.vertex(Vec3{x, -y, 0}, n, float32(ix), 1-float32(iy))
		}
	}
	b.tri(0, 2, 1)
	b.tri(2, 3, 1)
	return b.done()
}

// DefaultSphereSegments are used when a sphere is built without explicit segments.
const (
	DefaultSphereWidthSegments  = 32
	DefaultSphereHeightSegments = 16
)

// NewSphereGeometry returns a UV sphere. Segment counts below the minimum (3 and 2) are raised.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)
	b := newBuilder("sphere")
	grid := make([][]int, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		var uOffset float32
		if iy == 0 {
			uOffset = 0.5 / float32(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float32(widthSegments)
		}
		row := make([]int, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi
			theta := v * math32.Pi
			p := Vec3{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			}
			row[ix] = b.vertex(p, normalize(p), u+uOffset, 1-v)
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			bb := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				b.tri(a, bb, d)
			}
			if iy != heightSegments-1 {
				b.tri(bb, c, d)
			}
		}
	}
	return b.done()
}

// NewTorusGeometry returns a torus in the XY plane around the Z axis.
func NewTorusGeometry(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	radialSegments = max(2, radialSegments)
	tubularSegments = max(3, tubularSegments)
	b := newBuilder("torus")
	for j := 0; j <= radialSegments; j++ {
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi
			v := float32(j) / float32(radialSegments) * 2 * math32.Pi
			p := Vec3{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			center := Vec3{radius * math32.Cos(u), radius * math32.Sin(u), 0}
			b.vertex(p, normalize(p.Sub(center)), float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}
	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := stride*j + i - 1
			bb := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			b.tri(a, bb, d)
			b.tri(bb, c, d)
		}
	}
	return b.done()
}

// CylinderOptions are the optional cylinder parameters. The zero value means 32 radial
// segments, one height segment, capped ends and a full circle.
type CylinderOptions struct {
	RadialSegments int
	HeightSegments int
	OpenEnded      bool
	ThetaStart     float32
	// ThetaLength of 0 means a full circle.
	ThetaLength float32
}

// NewCylinderGeometry returns a cylinder along Y centered at the origin.
func NewCylinderGeometry(radiusTop, radiusBottom, height float32, opts CylinderOptions) *Geometry {
	radial := opts.RadialSegments
	if radial <= 0 {
		radial = 32
	}
	radial = max(3, radial)
	heightSegs := max(1, opts.HeightSegments)
	thetaLength := opts.ThetaLength
	if thetaLength == 0 {
		thetaLength = 2 * math32.Pi
	}
	b := newBuilder("cylinder")
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	rows := make([][]int, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float32(y) / float32(heightSegs)
		r := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]int, radial+1)
		for x := 0; x <= radial; x++ {
			u := float32(x) / float32(radial)
			theta := u*thetaLength + opts.ThetaStart
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			p := Vec3{r * sin, -v*height + half, r * cos}
			row[x] = b.vertex(p, normalize(Vec3{sin, slope, cos}), u, 1-v)
		}
		rows[y] = row
	}
	for x := 0; x < radial; x++ {
		for y := 0; y < heightSegs; y++ {
			a := rows[y][x]
			bb := rows[y+1][x]
			c := rows[y+1][x+1]
			d := rows[y][x+1]
			if radiusTop > 0 || y != 0 {
				b.tri(a, bb, d)
			}
			if radiusBottom > 0 || y != heightSegs-1 {
				b.tri(bb, c, d)
			}
		}
	}
	if !opts.OpenEnded {
		if radiusTop > 0 {
			cylinderCap(b, true, radiusTop, half, radial, opts.ThetaStart, thetaLength)
		}
		if radiusBottom > 0 {
			cylinderCap(b, false, radiusBottom, half, radial, opts.ThetaStart, thetaLength)
		}
	}
	return b.done()
}

func cylinderCap(b *builder, top bool, radius, half float32, radial int, thetaStart, thetaLength float32) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	n := Vec3{0, sign, 0}
	centerStart := b.index
	for x := 1; x <= radial; x++ {
		b.vertex(Vec3{0, half * sign, 0}, n, 0.5, 0.5)
	}
	centerEnd := b.index
	for x := 0; x <= radial; x++ {
		u := float32(x) / float32(radial)
		theta := u*thetaLength + thetaStart
		sin, cos := math32.Sin(theta), math32.Cos(theta)
		b.vertex(Vec3{radius * sin, half * sign, radius * cos}, n, cos*0.5+0.5, sin*0.5*sign+0.5)
	}
	for x := 0; x < radial; x++ {
		c := centerStart + x
		i := centerEnd + x
		if top {
			b.tri(i, i+1, c)
		} else {
			b.tri(i+1, i, c)
		}
	}
}
