// Package demos builds the scene for each demo program. A Demo is a plain value: the app
// renders Scene through Camera every frame and feeds it time, clicks and resizes.
package demos

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"scenedemos/internal/gui"
	"scenedemos/internal/logger"
	"scenedemos/internal/scene"
	"scenedemos/internal/tween"
)

// ErrUnknownDemo is returned by Build for a name that is not registered.
var ErrUnknownDemo = errors.New("unknown demo")

// Sizer is the renderer side of a resize.
type Sizer interface {
	SetSize(width, height int)
}

// Demo is one runnable scene.
type Demo struct {
	Name   string
	Title  string
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera

	ShadowMapEnabled bool
	// Orbit attaches orbit controls to Camera.
	Orbit bool
	// Stats shows the frame-rate counter.
	Stats bool
	Panel *gui.Panel

	Tweens   *tween.Group
	Textures []*scene.Texture

	// Tick sets transforms from the seconds elapsed since the demo started.
	Tick func(elapsed float32)
	// OnClick receives the clicked window pixel and its normalized device coordinates.
	OnClick func(px, py float32, ndc scene.Vec2)
	// OnStart runs once before the first frame.
	OnStart func(now time.Time)

	width, height int
	started       bool
	now           time.Time
}

// Options are the inputs shared by every demo builder.
type Options struct {
	Width, Height int
	Log           *logger.Logger
	// Rand seeds random layouts. Nil uses a time-seeded source.
	Rand *rand.Rand
	// TextureURLs maps texture names to URLs, see config.Textures.
	TextureURLs map[string]string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 720
	}
	if o.Log == nil {
		o.Log = logger.New("")
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Update advances the demo to now. elapsed is seconds since the demo started.
func (d *Demo) Update(now time.Time, elapsed float32) {
	d.now = now
	if !d.started {
		d.started = true
		if d.OnStart != nil {
			d.OnStart(now)
		}
	}
	if d.Tick != nil {
		d.Tick(elapsed)
	}
	if d.Tweens != nil {
		d.Tweens.Update(now)
	}
}

// Resize matches the camera to a new viewport and resizes the renderer, which may be nil.
func (d *Demo) Resize(width, height int, r Sizer) {
	if width <= 0 || height <= 0 {
		return
	}
	d.width, d.height = width, height
	d.Camera.Aspect = float32(width) / float32(height)
	d.Camera.UpdateProjectionMatrix()
	if r != nil {
		r.SetSize(width, height)
	}
}

// Size returns the current viewport size.
func (d *Demo) Size() (width, height int) {
	return d.width, d.height
}

// Click forwards a click at window pixel (px, py) to OnClick.
func (d *Demo) Click(px, py float32) {
	if d.OnClick == nil {
		return
	}
	d.OnClick(px, py, PointerToNDC(px, py, float32(d.width), float32(d.height)))
}

// PointerToNDC maps a window pixel to normalized device coordinates: x right and y up, both
// in [-1, 1].
func PointerToNDC(px, py, width, height float32) scene.Vec2 {
	return scene.Vec2{X: px/width*2 - 1, Y: -(py/height)*2 + 1}
}

// Builder constructs a demo.
type Builder func(Options) *Demo

type entry struct {
	name    string
	summary string
	build   Builder
}

var registry = []entry{
	{"cubes", "twenty random cubes spinning at their own phase", Cubes},
	{"viewer", "a unit cube with axes and orbit controls", Viewer},
	{"groups", "three cubes rotating together as a group", Groups},
	{"panel", "parameter panel driving colors, positions and an orbiting sphere", PanelDemo},
	{"lights", "phong materials under ambient, directional and spot lights", Lights},
	{"textured", "texture-mapped plane and cube with shadows", Textured},
	{"picker", "click spheres to toggle their highlight", Picker},
	{"tween", "a sphere eased across the scene", TweenDemo},
	{"car", "a toy car with spinning block-tire wheels", Car},
	{"truck", "a car with spoked wheels and a prism roof driving over a plane", Truck},
	{"solar", "nested groups orbiting like a solar system", Solar},
}

// Names returns the registered demo names in display order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	return out
}

// Summary returns the one-line description of a demo, or "" when unknown.
func Summary(name string) string {
	for _, e := range registry {
		if e.name == name {
			return e.summary
		}
	}
	return ""
}

// Build constructs the named demo.
func Build(name string, opts Options) (*Demo, error) {
	for _, e := range registry {
		if e.name == name {
			opts = opts.withDefaults()
			d := e.build(opts)
			d.Name = name
			if d.Title == "" {
				d.Title = name
			}
			d.Resize(opts.Width, opts.Height, nil)
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// newCamera returns the 75 degree camera every demo uses, at pos and aimed at the origin.
func newCamera(o Options, pos scene.Vec3) *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(75, float32(o.Width)/float32(o.Height), 0.1, 1000)
	cam.Position = pos
	cam.LookAt(0, 0, 0)
	return cam
}

func newDemo(o Options, title string, camPos scene.Vec3) *Demo {
	return &Demo{
		Title:  title,
		Scene:  scene.New(),
		Camera: newCamera(o, camPos),
		width:  o.Width,
		height: o.Height,
	}
}
