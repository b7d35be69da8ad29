package main

import (
	"log/slog"

	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/config"
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/debugserver"
	"github.com/hubastard/flexbox/engine/gfx/renderer2d"
	"github.com/hubastard/flexbox/engine/metrics"
	"github.com/hubastard/flexbox/engine/ui"
)

type App struct {
	scene   config.Scene
	log     *slog.Logger
	metrics *metrics.Collector
	store   *debugserver.SnapshotStore

	r2d   *renderer2d.Renderer2D
	layer *ContainersLayer
}

func (a *App) OnStart(e *core.Engine) {
	backend, ok := e.Renderer.(renderer2d.Backend)
	if !ok {
		e.Log.Error("renderer cannot draw quads", "renderer", e.Renderer)
		e.Window.RequestClose()
		return
	}
	var err error
	a.r2d, err = renderer2d.New(backend, 10000, ui.HandleSize)
	if err != nil {
		e.Log.Error("renderer2d init failed", "err", err)
		e.Window.RequestClose()
		return
	}

	stage, err := buildStage(a.scene, a.log, a.metrics)
	if err != nil {
		e.Log.Error("scene build failed", "err", err)
		e.Window.RequestClose()
		return
	}
	a.layer = &ContainersLayer{
		stage:   stage,
		r2d:     a.r2d,
		store:   a.store,
		rebuild: func() (*ui.Stage, error) { return buildStage(a.scene, a.log, a.metrics) },
	}
	e.Layers.Push(e, a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.r2d != nil {
		st := a.r2d.Stats()
		e.Log.Debug("last frame", "draw_calls", st.DrawCalls, "quads", st.QuadCount)
	}
}

// buildStage turns the scene's containers into a stage, each container
// logging and reporting metrics under its own name.
func buildStage(scene config.Scene, log *slog.Logger, m *metrics.Collector) (*ui.Stage, error) {
	stage := ui.NewStage()
	for _, cfg := range scene.Containers {
		c, err := cfg.Build(ui.WithLogger(withContainer(log, cfg.Name)), ui.WithObserver(m))
		if err != nil {
			return nil, err
		}
		stage.Add(c)
	}
	stage.SetStyle(ui.Style{
		FrameColor:  colors.White,
		FrameStroke: 3,
		Background:  colors.White.WithAlpha(0.04),
		HandleColor: colors.White,
	})
	return stage, nil
}
