// Package app opens a window for one demo and drives it: input, animation, rendering and the
// panel and frame-rate overlays.
package app

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenedemos/internal/config"
	"scenedemos/internal/demos"
	"scenedemos/internal/download"
	"scenedemos/internal/graphics"
	"scenedemos/internal/gui"
	"scenedemos/internal/input"
	"scenedemos/internal/logger"
	"scenedemos/internal/orbit"
	"scenedemos/internal/render"
	"scenedemos/internal/scene"
	"scenedemos/internal/stats"
	"scenedemos/internal/textures"
)

// Run builds the demo called name and runs it until the window is closed.
func Run(name string, cfg config.Config, log *logger.Logger) error {
	d, err := demos.Build(name, demos.Options{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Log:         log,
		TextureURLs: cfg.Textures.URLs,
	})
	if err != nil {
		return err
	}
	log.Logf("starting %s: %s", d.Name, d.Title)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &app{demo: d, cfg: cfg, log: log, ctx: ctx, cancel: cancel, clock: scene.NewClock()}
	graphics.Run(graphics.Window{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title + " - " + d.Title,
		FPS:    cfg.Window.FPS,
		MSAA:   cfg.Window.MSAA,
	}, graphics.Hooks{
		Init:   a.init,
		Resize: a.resize,
		Update: a.update,
		Draw:   a.draw,
		Close:  a.close,
	})
	log.Logf("closed %s", d.Name)
	return nil
}

type app struct {
	demo   *demos.Demo
	cfg    config.Config
	log    *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
	clock  *scene.Clock

	renderer *render.Renderer
	orbit    *orbit.Controls
	stats    *stats.Stats
	router   *input.Router
	loader   *textures.Loader
}

func (a *app) init() {
	d := a.demo
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()

	a.renderer = render.New(w, h)
	a.renderer.ShadowMapEnabled = d.ShadowMapEnabled
	a.renderer.GridVisible = a.cfg.ShowGrid
	d.Resize(w, h, a.renderer)

	if d.Orbit {
		a.orbit = orbit.New(d.Camera)
		a.orbit.EnableDamping = true
		a.orbit.SetViewport(w, h)
	}
	if d.Stats && a.cfg.ShowStats {
		a.stats = stats.New()
	}
	if d.Panel != nil {
		if path := a.cfg.PanelStylesheet; path != "" {
			sheet, err := gui.LoadStylesheet(path)
			if err != nil {
				a.log.Logf("panel: %v", err)
			} else {
				d.Panel.SetStylesheet(sheet)
			}
		}
		d.Panel.LayoutRight(float32(w), 0)
	}
	a.router = &input.Router{Panel: d.Panel, Stats: a.stats, Orbit: a.orbit, Click: d.Click}

	if len(d.Textures) > 0 {
		a.loader = &textures.Loader{
			Fetcher: download.New(),
			MaxSize: a.cfg.Textures.MaxSize,
			Log:     a.log,
		}
		cache, err := textures.OpenCache(a.cfg.Textures.CacheDir)
		if err != nil {
			a.log.Logf("texture cache disabled: %v", err)
		} else {
			a.loader.Cache = cache
		}
		for _, t := range d.Textures {
			a.loader.Load(a.ctx, t)
		}
	}
	a.clock.Start()
}

func (a *app) resize(w, h int) {
	a.demo.Resize(w, h, a.renderer)
	if a.orbit != nil {
		a.orbit.SetViewport(w, h)
	}
}

func (a *app) update() {
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	a.router.Handle(input.Frame{
		X: pos.X, Y: pos.Y,
		DX: delta.X, DY: delta.Y,
		Wheel:        rl.GetMouseWheelMove(),
		LeftPressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		LeftDown:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		LeftReleased: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		RightDown:    rl.IsMouseButtonDown(rl.MouseButtonRight),
	})

	a.demo.Update(time.Now(), a.clock.ElapsedTime())
	if a.orbit != nil {
		a.orbit.Update()
	}
}

func (a *app) draw() {
	a.renderer.Render(a.demo.Scene, a.demo.Camera)

	if p := a.demo.Panel; p != nil {
		w, _ := a.renderer.Size()
		render.DrawPanel(p.LayoutRight(float32(w), 0))
	}
	if a.stats != nil {
		a.stats.Update()
		render.DrawStats(a.stats)
	}
}

func (a *app) close() {
	a.cancel()
	if a.loader != nil {
		a.loader.Wait()
	}
	a.renderer.Close()
}
