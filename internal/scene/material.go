package scene

import (
	"image"
	"sync"
)

// MaterialKind selects how the renderer shades a surface.
type MaterialKind int

const (
	// Basic is unlit: the surface is drawn in its flat color.
	Basic MaterialKind = iota
	// Normal colors the surface by its view-independent normal direction.
	Normal
	// Phong is lit with ambient, diffuse and specular terms.
	Phong
	// Standard is lit like Phong with a softer highlight; used with texture maps.
	Standard
)

func (k MaterialKind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Normal:
		return "normal"
	case Phong:
		return "phong"
	case Standard:
		return "standard"
	}
	return "unknown"
}

// Lit reports whether the material responds to scene lights.
func (k MaterialKind) Lit() bool {
	return k == Phong || k == Standard
}

// Side selects which triangle faces are drawn and hit by rays.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material describes a surface. Materials are shared between meshes and clones, so changing
// Color on one material recolors every mesh using it.
type Material struct {
	Kind      MaterialKind
	Color     Color
	Wireframe bool
	Side      Side
	// Map is an optional albedo texture, multiplied with Color.
	Map *Texture
}

// NewBasicMaterial returns an unlit material of the given color.
func NewBasicMaterial(c Color) *Material {
	return &Material{Kind: Basic, Color: c}
}

// NewNormalMaterial returns a material shaded by surface normals.
func NewNormalMaterial() *Material {
	return &Material{Kind: Normal, Color: 0xffffff}
}

// NewPhongMaterial returns a lit material of the given color.
func NewPhongMaterial(c Color) *Material {
	return &Material{Kind: Phong, Color: c}
}

// NewStandardMaterial returns a lit material, typically textured through Map.
func NewStandardMaterial(c Color, m *Texture) *Material {
	return &Material{Kind: Standard, Color: c, Map: m}
}

// Texture is an image referenced by URL. Loading happens in the background; the decoded image
// is published with SetImage and picked up by the renderer on its next frame.
type Texture struct {
	URL string

	mu      sync.Mutex
	img     image.Image
	version int
	err     error
}

// NewTexture returns an unloaded texture for url.
func NewTexture(url string) *Texture {
	return &Texture{URL: url}
}

// SetImage publishes a decoded image. Safe to call from any goroutine.
func (t *Texture) SetImage(img image.Image) {
	t.mu.Lock()
	t.img = img
	t.err = nil
	t.version++
	t.mu.Unlock()
}

// SetError records a load failure. The texture stays unloaded.
func (t *Texture) SetError(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}

// Image returns the current image (nil until loaded) and a version that increments on each
// SetImage, so the renderer can tell when to re-upload.
func (t *Texture) Image() (image.Image, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.img, t.version
}

// Err returns the last load error, if any.
func (t *Texture) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
