package scene

import (
	"github.com/chewxy/math32"
)

// Light is implemented by every light node.
type Light interface {
	Node
	Light() *LightBase
}

// LightBase is the color and strength shared by all lights.
type LightBase struct {
	Color     Color
	Intensity float32
}

// Light returns l; embedding types satisfy Light through it.
func (l *LightBase) Light() *LightBase {
	return l
}

// LightShadow configures a shadow-casting light. Map sizes are in texels; Near and Far bound
// the light's shadow camera.
type LightShadow struct {
	MapWidth, MapHeight int
	Near, Far           float32
}

// DefaultLightShadow matches the usual defaults: 512x512 map, near 0.5, far 500.
func DefaultLightShadow() LightShadow {
	return LightShadow{MapWidth: 512, MapHeight: 512, Near: 0.5, Far: 500}
}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Object
	LightBase
}

// NewAmbientLight returns an ambient light.
func NewAmbientLight(c Color, intensity float32) *AmbientLight {
	l := &AmbientLight{LightBase: LightBase{Color: c, Intensity: intensity}}
	l.init(l)
	return l
}

func (l *AmbientLight) cloneNode() Node {
	cp := *l
	return &cp
}

// DirectionalLight shines parallel rays from its position towards Target.
type DirectionalLight struct {
	Object
	LightBase
	Target Vec3
	Shadow LightShadow
}

// NewDirectionalLight returns a directional light positioned at (0, 1, 0) aiming at the origin.
func NewDirectionalLight(c Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{LightBase: LightBase{Color: c, Intensity: intensity}, Shadow: DefaultLightShadow()}
	l.init(l)
	l.Position = Vec3{0, 1, 0}
	return l
}

// Direction returns the unit vector pointing from Target towards the light.
func (l *DirectionalLight) Direction() Vec3 {
	return normalize(l.WorldPosition().Sub(l.Target))
}

func (l *DirectionalLight) cloneNode() Node {
	cp := *l
	return &cp
}

// SpotLight shines a cone from its position towards Target. Angle is the cone half-angle in
// radians; Distance 0 means unlimited range.
type SpotLight struct {
	Object
	LightBase
	Target   Vec3
	Angle    float32
	Distance float32
	Penumbra float32
	Shadow   LightShadow
}

// NewSpotLight returns a spot light at (0, 1, 0) aiming at the origin with a 60 degree half-angle.
func NewSpotLight(c Color, intensity float32) *SpotLight {
	l := &SpotLight{
		LightBase: LightBase{Color: c, Intensity: intensity},
		Angle:     math32.Pi / 3,
		Shadow:    DefaultLightShadow(),
	}
	l.init(l)
	l.Position = Vec3{0, 1, 0}
	return l
}

// Direction returns the unit vector from the light towards its target.
func (l *SpotLight) Direction() Vec3 {
	return normalize(l.Target.Sub(l.WorldPosition()))
}

func (l *SpotLight) cloneNode() Node {
	cp := *l
	return &cp
}

// Segment is a colored line in world space, used by helpers.
type Segment struct {
	From, To Vec3
	Color    Color
}

// SpotLightHelper outlines a spot light's cone.
type SpotLightHelper struct {
	Object
	Light *SpotLight
}

// NewSpotLightHelper returns a helper for l.
func NewSpotLightHelper(l *SpotLight) *SpotLightHelper {
	h := &SpotLightHelper{Light: l}
	h.init(h)
	return h
}

func (h *SpotLightHelper) cloneNode() Node {
	cp := *h
	return &cp
}

// spotHelperRays is the number of lines from the apex to the cone rim.
const spotHelperRays = 32

// Segments returns the cone outline in world space: rays from the apex to the rim plus the
// rim circle. The cone length is the light's Distance, or 1000 when the range is unlimited.
func (h *SpotLightHelper) Segments() []Segment {
	l := h.Light
	length := l.Distance
	if length == 0 {
		length = 1000
	}
	apex := l.WorldPosition()
	dir := l.Direction()
	radius := length * math32.Tan(l.Angle)

	// Orthonormal basis around dir.
	up := Vec3{0, 1, 0}
	if math32.Abs(dir.Y) > 0.99 {
		up = Vec3{1, 0, 0}
	}
	right := normalize(cross(up, dir))
	up = cross(dir, right)

	center := apex.Add(dir.Mul(length))
	rim := make([]Vec3, spotHelperRays)
	for i := range rim {
		a := float32(i) / spotHelperRays * 2 * math32.Pi
		rim[i] = center.Add(right.Mul(radius * math32.Cos(a))).Add(up.Mul(radius * math32.Sin(a)))
	}
	segs := make([]Segment, 0, 2*spotHelperRays)
	for i, p := range rim {
		if i%4 == 0 {
			segs = append(segs, Segment{From: apex, To: p, Color: l.Color})
		}
		segs = append(segs, Segment{From: p, To: rim[(i+1)%len(rim)], Color: l.Color})
	}
	return segs
}

func cross(a, b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

func dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
