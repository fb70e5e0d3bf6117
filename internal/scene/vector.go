package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D vector, used for normalized device coordinates (x, y in [-1, 1]).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector with settable fields so demos can write obj.Position.X = v.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Set assigns all three components.
func (v *Vec3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Vec converts to an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// FromVec converts an mgl32 vector.
func FromVec(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Euler is a rotation in radians applied in X, then Y, then Z order
// (the matrix is Rx * Ry * Rz).
type Euler struct {
	X, Y, Z float32
}

// Set assigns all three angles.
func (e *Euler) Set(x, y, z float32) {
	e.X, e.Y, e.Z = x, y, z
}

// Matrix returns the rotation matrix for e.
func (e Euler) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(e.X).Mul4(mgl32.HomogRotate3DY(e.Y)).Mul4(mgl32.HomogRotate3DZ(e.Z))
}

// Color is a 24-bit RGB color written as 0xRRGGBB.
type Color uint32

// ColorFromFloat mirrors assigning a fractional number to a hex color:
// the value is floored and clamped to 24 bits.
func ColorFromFloat(v float32) Color {
	if v <= 0 {
		return 0
	}
	if v >= 0xffffff {
		return 0xffffff
	}
	return Color(uint32(math32.Floor(v)))
}

// RGB returns the components as bytes.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Floats returns the components in [0, 1].
func (c Color) Floats() (r, g, b float32) {
	rb, gb, bb := c.RGB()
	return float32(rb) / 255, float32(gb) / 255, float32(bb) / 255
}

// RGBToColor packs byte components.
func RGBToColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// HSV returns hue in [0, 360), saturation and value in [0, 1].
func (c Color) HSV() (h, s, v float32) {
	r, g, b := c.Floats()
	maxc := math32.Max(r, math32.Max(g, b))
	minc := math32.Min(r, math32.Min(g, b))
	v = maxc
	d := maxc - minc
	if maxc > 0 {
		s = d / maxc
	}
	if d == 0 {
		return 0, s, v
	}
	switch maxc {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, v
}

// HSVToColor converts hue in degrees, saturation and value in [0, 1].
func HSVToColor(h, s, v float32) Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGBToColor(toByte(r+m), toByte(g+m), toByte(b+m))
}

func toByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math32.Floor(f*255 + 0.5))
}
