// Package tween animates float32 fields towards target values over time. Interpolation and
// easing curves come from gween; this package adds start delays, repeats, yoyo and lifecycle
// callbacks, and drives everything from absolute timestamps so it plugs into a frame loop.
package tween

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Infinite repeats a tween forever when passed to Repeat.
const Infinite = -1

// ErrUnknownEasing is returned by EasingByName for names that are not registered.
var ErrUnknownEasing = errors.New("tween: unknown easing")

type property struct {
	target   *float32
	from, to float32
}

// Tween moves one or more float32 fields from their values at Start to the values given in To.
// Configure it with the chainable setters, then call Start and Update once per frame.
type Tween struct {
	props    []property
	duration time.Duration
	delay    time.Duration
	repeat   int
	yoyo     bool
	easing   ease.TweenFunc

	onStart, onUpdate, onComplete, onStop func()

	curves      []*gween.Tween
	startTime   time.Time
	running     bool
	startFired  bool
	repeatsLeft int
}

// New returns a tween lasting duration with linear easing.
func New(duration time.Duration) *Tween {
	return &Tween{duration: duration, easing: ease.Linear}
}

// To adds a field to animate and its final value.
func (t *Tween) To(target *float32, value float32) *Tween {
	t.props = append(t.props, property{target: target, to: value})
	return t
}

// Easing sets the easing curve.
func (t *Tween) Easing(fn ease.TweenFunc) *Tween {
	if fn != nil {
		t.easing = fn
	}
	return t
}

// Delay postpones the start of the animation after Start.
func (t *Tween) Delay(d time.Duration) *Tween {
	t.delay = d
	return t
}

// Repeat replays the animation n more times after the first run; Infinite never stops.
func (t *Tween) Repeat(n int) *Tween {
	t.repeat = n
	return t
}

// Yoyo makes every repeat run backwards from the previous end value.
func (t *Tween) Yoyo(on bool) *Tween {
	t.yoyo = on
	return t
}

// OnStart is called once, on the first update after the delay has elapsed.
func (t *Tween) OnStart(fn func()) *Tween {
	t.onStart = fn
	return t
}

// OnUpdate is called after every update that changed the fields.
func (t *Tween) OnUpdate(fn func()) *Tween {
	t.onUpdate = fn
	return t
}

// OnComplete is called when the last run finishes.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// OnStop is called when Stop interrupts a running tween.
func (t *Tween) OnStop(fn func()) *Tween {
	t.onStop = fn
	return t
}

// Start records the current field values as start points and schedules the animation at
// now plus the delay.
func (t *Tween) Start(now time.Time) *Tween {
	for i := range t.props {
		t.props[i].from = *t.props[i].target
	}
	t.startTime = now.Add(t.delay)
	t.running = true
	t.startFired = false
	t.repeatsLeft = t.repeat
	t.buildCurves()
	return t
}

// Stop halts a running tween where it is and fires OnStop.
func (t *Tween) Stop() {
	if !t.running {
		return
	}
	t.running = false
	if t.onStop != nil {
		t.onStop()
	}
}

// IsPlaying reports whether the tween has been started and has not completed or stopped.
func (t *Tween) IsPlaying() bool {
	return t.running
}

func (t *Tween) buildCurves() {
	secs := float32(t.duration.Seconds())
	t.curves = t.curves[:0]
	for _, p := range t.props {
		t.curves = append(t.curves, gween.New(p.from, p.to, secs, t.easing))
	}
}

// Update advances the animation to now and writes the fields. It returns false once the tween
// has completed or was stopped.
func (t *Tween) Update(now time.Time) bool {
	if !t.running {
		return false
	}
	if now.Before(t.startTime) {
		return true
	}
	if !t.startFired {
		t.startFired = true
		if t.onStart != nil {
			t.onStart()
		}
	}
	elapsed := now.Sub(t.startTime)
	if elapsed > t.duration {
		elapsed = t.duration
	}
	secs := float32(elapsed.Seconds())
	for i, c := range t.curves {
		if elapsed == t.duration {
			*t.props[i].target = t.props[i].to
			continue
		}
		v, _ := c.Set(secs)
		*t.props[i].target = v
	}
	if t.onUpdate != nil {
		t.onUpdate()
	}
	if elapsed < t.duration {
		return true
	}

	if t.repeatsLeft != 0 {
		if t.repeatsLeft > 0 {
			t.repeatsLeft--
		}
		for i := range t.props {
			if t.yoyo {
				t.props[i].from, t.props[i].to = t.props[i].to, t.props[i].from
			}
			*t.props[i].target = t.props[i].from
		}
		t.buildCurves()
		t.startTime = now.Add(t.delay)
		return true
	}
	t.running = false
	if t.onComplete != nil {
		t.onComplete()
	}
	return false
}

// Group updates a set of tweens together and forgets the ones that finished.
type Group struct {
	tweens []*Tween
}

// Add schedules tweens for updating.
func (g *Group) Add(ts ...*Tween) {
	g.tweens = append(g.tweens, ts...)
}

// Len returns the number of active tweens.
func (g *Group) Len() int {
	return len(g.tweens)
}

// Update advances every tween and drops completed or stopped ones.
func (g *Group) Update(now time.Time) {
	kept := g.tweens[:0]
	for _, tw := range g.tweens {
		if tw.Update(now) {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(g.tweens); i++ {
		g.tweens[i] = nil
	}
	g.tweens = kept
}

var easings = map[string]ease.TweenFunc{
	"linear.none":       ease.Linear,
	"quadratic.in":      ease.InQuad,
	"quadratic.out":     ease.OutQuad,
	"quadratic.inout":   ease.InOutQuad,
	"cubic.in":          ease.InCubic,
	"cubic.out":         ease.OutCubic,
	"cubic.inout":       ease.InOutCubic,
	"quartic.in":        ease.InQuart,
	"quartic.out":       ease.OutQuart,
	"quartic.inout":     ease.InOutQuart,
	"quintic.in":        ease.InQuint,
	"quintic.out":       ease.OutQuint,
	"quintic.inout":     ease.InOutQuint,
	"sinusoidal.in":     ease.InSine,
	"sinusoidal.out":    ease.OutSine,
	"sinusoidal.inout":  ease.InOutSine,
	"exponential.in":    ease.InExpo,
	"exponential.out":   ease.OutExpo,
	"exponential.inout": ease.InOutExpo,
	"circular.in":       ease.InCirc,
	"circular.out":      ease.OutCirc,
	"circular.inout":    ease.InOutCirc,
	"elastic.in":        ease.InElastic,
	"elastic.out":       ease.OutElastic,
	"elastic.inout":     ease.InOutElastic,
	"back.in":           ease.InBack,
	"back.out":          ease.OutBack,
	"back.inout":        ease.InOutBack,
	"bounce.in":         ease.InBounce,
	"bounce.out":        ease.OutBounce,
	"bounce.inout":      ease.InOutBounce,
}

// EasingByName resolves names of the form "Family.Mode", e.g. "Quadratic.InOut",
// "Bounce.Out" or "Linear.None". Matching is case-insensitive.
func EasingByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}
