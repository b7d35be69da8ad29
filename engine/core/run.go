package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/flexbox/engine/logging"
)

// Fixed update rate of the main loop.
const Tick = time.Second / 60

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	return RunEngine(&Engine{Log: logging.NewNop()}, app, cfg, newWindow, newRenderer)
}

// RunEngine is Run with a caller-provided Engine, e.g. one carrying a logger.
func RunEngine(eng *Engine, app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	if eng.Log == nil {
		eng.Log = logging.NewNop()
	}
	eng.Window, eng.Renderer, eng.Input, eng.start = win, rend, NewInput(), time.Now()

	win.SetEventCallback(func(ev Event) {
		if r, ok := ev.(EventResize); ok && r.W > 0 && r.H > 0 {
			fw, fh := win.FramebufferSize()
			rend.Resize(fw, fh)
		}
		dispatch(eng, app, ev)
	})

	app.OnStart(eng)
	eng.Log.Info("engine started", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	// Fixed-timestep (60 Hz) with interpolation
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= Tick && steps < maxStep {
			dt := float64(Tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= Tick
			steps++
		}
		alpha := float64(accum) / float64(Tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
		eng.frames++
	}

	eng.Layers.ForEachReverse(func(l Layer) bool {
		l.OnDetach(eng)
		return false
	})
	app.OnShutdown(eng)
	eng.Log.Info("engine exit", "frames", eng.frames, "uptime", eng.Uptime())
	return nil
}

// dispatch updates input state, then offers ev to the layers top-down and
// finally to the app if no layer handled it.
func dispatch(eng *Engine, app App, ev Event) {
	eng.Input.Handle(ev)
	if _, ok := ev.(EventCloseRequested); ok {
		eng.Window.RequestClose()
	}
	handled := false
	eng.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(eng, ev)
		return handled
	})
	if !handled {
		app.OnEvent(eng, ev)
	}
}
