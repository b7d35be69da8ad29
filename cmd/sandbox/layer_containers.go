package main

import (
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/debugserver"
	"github.com/hubastard/flexbox/engine/scene"
	"github.com/hubastard/flexbox/engine/ui"
)

type sceneRenderer interface {
	ui.Renderer
	BeginScene(vp [16]float32)
	EndScene()
}

// ContainersLayer ticks, draws and routes pointer input to the stage.
type ContainersLayer struct {
	cam     *scene.ScreenCamera
	stage   *ui.Stage
	r2d     sceneRenderer
	store   *debugserver.SnapshotStore
	rebuild func() (*ui.Stage, error)
	frame   uint64
}

// windowSizer is implemented by windows whose framebuffer and window sizes
// differ (HiDPI). Pointer events arrive in window coordinates.
type windowSizer interface {
	WindowSize() (int, int)
}

func viewportSize(w core.Window) (int, int) {
	if ws, ok := w.(windowSizer); ok {
		return ws.WindowSize()
	}
	return w.FramebufferSize()
}

func (l *ContainersLayer) OnAttach(e *core.Engine) {
	l.cam = scene.NewScreenCamera(viewportSize(e.Window))
	l.stage.Init()
	l.publish()
}

func (l *ContainersLayer) OnDetach(e *core.Engine) {}

func (l *ContainersLayer) OnUpdate(e *core.Engine, dt float64) {
	if n := l.stage.Update(); n > 0 {
		e.Log.Debug("relayout", "containers", n)
	}
}

func (l *ContainersLayer) OnRender(e *core.Engine, alpha float64) {
	l.r2d.BeginScene(l.cam.VP())
	l.stage.Draw(l.r2d)
	l.r2d.EndScene()
	l.frame++
	l.publish()
}

func (l *ContainersLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.cam.SetViewportPixels(viewportSize(e.Window))
		return false
	case core.EventKey:
		if !v.Down {
			return false
		}
		switch v.Key {
		case core.KeyR:
			l.reset(e)
			return true
		case core.KeyP:
			for _, s := range l.stage.Snapshot() {
				e.Log.Info("container", "name", s.Name, "bounds", s.Bounds, "policy", s.Policy, "state", s.State, "passes", s.Passes)
			}
			return true
		}
		return false
	}
	return l.stage.HandleEvent(ev)
}

func (l *ContainersLayer) reset(e *core.Engine) {
	if l.rebuild == nil {
		return
	}
	stage, err := l.rebuild()
	if err != nil {
		e.Log.Error("scene rebuild failed", "err", err)
		return
	}
	l.stage = stage
	l.stage.Init()
	e.Log.Info("scene rebuilt", "containers", len(stage.Containers()))
}

func (l *ContainersLayer) publish() {
	if l.store != nil {
		l.store.Publish(l.frame, l.stage.Snapshot())
	}
}
