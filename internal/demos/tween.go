package demos

import (
	"time"

	"scenedemos/internal/gui"
	"scenedemos/internal/scene"
	"scenedemos/internal/tween"
)

// tweenDuration is how long the sphere takes to cross the scene.
const tweenDuration = time.Second

// TweenDemo eases a sphere from x = -4 to x = 4. The panel restarts or stops the tween and
// turns on repeat and yoyo.
func TweenDemo(o Options) *Demo {
	d := newDemo(o, "Tween", scene.V3(0, 10, 9))
	d.Orbit = true
	d.Stats = true
	d.Tweens = &tween.Group{}

	sphere := scene.NewMesh(scene.NewSphereGeometry(1, 32, 32), scene.NewBasicMaterial(0xff0000))
	sphere.Name = "sphere"
	sphere.Position.X = -4
	d.Scene.Add(scene.NewAxesHelper(5), sphere)

	settings := struct {
		Repeat bool
		Yoyo   bool
	}{}
	var current *tween.Tween

	start := func(now time.Time) {
		if current != nil {
			current.Stop()
		}
		sphere.Position.X = -4
		easing, _ := tween.EasingByName("Quadratic.InOut")
		t := tween.New(tweenDuration).
			To(&sphere.Position.X, 4).
			Easing(easing).
			Yoyo(settings.Yoyo).
			OnStart(func() { o.Log.Log("tween start") }).
			OnUpdate(func() { o.Log.Logf("x = %.3f", sphere.Position.X) }).
			OnComplete(func() { o.Log.Log("tween complete") }).
			OnStop(func() { o.Log.Log("tween stop") })
		if settings.Repeat {
			t.Repeat(tween.Infinite)
		}
		current = t.Start(now)
		d.Tweens.Add(current)
	}
	d.OnStart = start

	p := gui.New()
	d.Panel = p
	p.AddBool("repeat", &settings.Repeat)
	p.AddBool("yoyo", &settings.Yoyo)
	p.AddFunc("restart", func() { start(d.now) })
	p.AddFunc("stop", func() {
		if current != nil {
			current.Stop()
		}
	})
	return d
}
