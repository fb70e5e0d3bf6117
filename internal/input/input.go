// Package input routes one frame of mouse state to the panel, the frame-rate widget, the orbit
// controls and the demo's click handler, in that order of priority.
package input

import (
	"github.com/chewxy/math32"

	"scenedemos/internal/gui"
	"scenedemos/internal/orbit"
	"scenedemos/internal/stats"
)

// clickSlop is how far, in pixels, the pointer may move between press and release and still
// count as a click rather than an orbit drag.
const clickSlop = 4

// Frame is the mouse state sampled for one frame.
type Frame struct {
	X, Y   float32
	DX, DY float32
	Wheel  float32

	LeftPressed, LeftDown, LeftReleased bool
	RightDown                           bool
}

// Router dispatches frames. Nil targets are skipped.
type Router struct {
	Panel *gui.Panel
	Stats *stats.Stats
	Orbit *orbit.Controls
	Click func(x, y float32)

	pressX, pressY float32
	// dragging is set once the current left press leaves clickSlop.
	dragging bool
	// owner is the target that took the current left press.
	owner target
}

type target int

const (
	none target = iota
	panelTarget
	statsTarget
	sceneTarget
)

// Handle applies f.
func (r *Router) Handle(f Frame) {
	if r.Panel != nil {
		consumed := r.Panel.HandlePointer(gui.Pointer{
			X: f.X, Y: f.Y,
			Down:     f.LeftDown,
			Pressed:  f.LeftPressed,
			Released: f.LeftReleased,
		})
		if f.LeftPressed && consumed {
			r.owner = panelTarget
		}
		if consumed && r.owner != sceneTarget {
			r.endPress(f)
			return
		}
	}

	if f.LeftPressed {
		r.pressX, r.pressY = f.X, f.Y
		r.dragging = false
		r.owner = sceneTarget
		if r.Stats != nil && r.Stats.Contains(f.X, f.Y) {
			r.owner = statsTarget
			r.Stats.NextMode()
		}
	}

	if r.Orbit != nil && r.owner != statsTarget && r.owner != panelTarget {
		if f.LeftDown && !f.LeftPressed {
			switch {
			case r.dragging:
				r.Orbit.Rotate(f.DX, f.DY)
			case !r.withinSlop(f):
				// Rotation held back inside the slop is applied in one step.
				r.dragging = true
				r.Orbit.Rotate(f.X-r.pressX, f.Y-r.pressY)
			}
		}
		if f.RightDown {
			r.Orbit.Pan(f.DX, f.DY)
		}
		if f.Wheel != 0 {
			r.Orbit.Dolly(f.Wheel)
		}
	}

	if f.LeftReleased && r.owner == sceneTarget && r.Click != nil && !r.dragging && r.withinSlop(f) {
		r.Click(f.X, f.Y)
	}
	r.endPress(f)
}

func (r *Router) withinSlop(f Frame) bool {
	return math32.Abs(f.X-r.pressX) <= clickSlop && math32.Abs(f.Y-r.pressY) <= clickSlop
}

func (r *Router) endPress(f Frame) {
	if f.LeftReleased || (!f.LeftDown && !f.LeftPressed) {
		r.owner = none
		r.dragging = false
	}
}
