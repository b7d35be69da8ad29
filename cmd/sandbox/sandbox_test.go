package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/config"
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/debugserver"
	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/logging"
	"github.com/hubastard/flexbox/engine/metrics"
	"github.com/hubastard/flexbox/engine/ui"
)

type stubWindow struct{ closed bool }

func (w *stubWindow) PollEvents()                          {}
func (w *stubWindow) SwapBuffers()                         {}
func (w *stubWindow) ShouldClose() bool                    { return w.closed }
func (w *stubWindow) RequestClose()                        { w.closed = true }
func (w *stubWindow) FramebufferSize() (int, int)          { return 1600, 1200 }
func (w *stubWindow) WindowSize() (int, int)               { return 800, 600 }
func (w *stubWindow) SetTitle(string)                      {}
func (w *stubWindow) SetEventCallback(cb func(core.Event)) {}
func (w *stubWindow) Destroy()                             {}

type stubRenderer struct {
	scenes int
	glyphs []geom.Rect
}

func (r *stubRenderer) BeginScene([16]float32)                      { r.scenes++ }
func (r *stubRenderer) EndScene()                                   {}
func (r *stubRenderer) FillRect(geom.Rect, colors.Color)            {}
func (r *stubRenderer) StrokeRect(geom.Rect, float32, colors.Color) {}
func (r *stubRenderer) DrawResizeGlyph(rc geom.Rect, _ colors.Color) {
	r.glyphs = append(r.glyphs, rc)
}

func newTestLayer(t *testing.T) (*ContainersLayer, *core.Engine, *debugserver.SnapshotStore) {
	t.Helper()
	scene := config.Default()
	log := logging.NewNop()
	m := metrics.New()
	stage, err := buildStage(scene, log, m)
	require.NoError(t, err)

	store := &debugserver.SnapshotStore{}
	l := &ContainersLayer{
		stage:   stage,
		r2d:     &stubRenderer{},
		store:   store,
		rebuild: func() (*ui.Stage, error) { return buildStage(scene, log, m) },
	}
	e := &core.Engine{Window: &stubWindow{}, Log: log}
	l.OnAttach(e)
	return l, e, store
}

func TestBuildStage_DefaultScene(t *testing.T) {
	stage, err := buildStage(config.Default(), logging.NewNop(), metrics.New())
	require.NoError(t, err)
	require.Len(t, stage.Containers(), 2)
	assert.Equal(t, "column", stage.Containers()[0].Name())
	assert.Equal(t, "row", stage.Containers()[1].Name())
}

func TestLoadScene(t *testing.T) {
	s, err := loadScene("")
	require.NoError(t, err)
	assert.Len(t, s.Containers, 2)

	_, err = loadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLayer_AttachPublishesInitialLayout(t *testing.T) {
	_, _, store := newTestLayer(t)
	frame, snaps := store.Load()
	assert.Zero(t, frame)
	require.Len(t, snaps, 2)
	assert.Equal(t, 1, snaps[0].Passes)
}

func TestLayer_DragResizesRow(t *testing.T) {
	l, e, store := newTestLayer(t)

	// Row sits at (350, 375) with a 400x200 frame; its handle starts at (380, 180).
	grab := geom.V(350+385, 375+185)
	assert.False(t, l.OnEvent(e, core.EventMouseMove{X: float64(grab.X), Y: float64(grab.Y)}))
	assert.True(t, l.OnEvent(e, core.EventMouseButton{Button: core.MouseLeft, Down: true, X: float64(grab.X), Y: float64(grab.Y)}))
	assert.True(t, l.OnEvent(e, core.EventMouseMove{X: float64(grab.X + 20), Y: float64(grab.Y + 10)}))

	l.OnUpdate(e, 1.0/60)
	l.OnRender(e, 0)

	frame, snaps := store.Load()
	assert.Equal(t, uint64(1), frame)
	assert.Equal(t, geom.V(420, 210), snaps[1].Bounds)
	assert.Equal(t, 2, snaps[1].Passes)
	assert.Equal(t, 1, snaps[0].Passes, "column untouched")

	assert.True(t, l.OnEvent(e, core.EventMouseButton{Button: core.MouseLeft, X: float64(grab.X + 20), Y: float64(grab.Y + 10)}))
	assert.Nil(t, l.stage.Active())
}

func TestLayer_ResetKey(t *testing.T) {
	l, e, _ := newTestLayer(t)
	row := l.stage.Containers()[1]
	row.ResizeBy(geom.V(50, 50))

	assert.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyR, Down: true}))
	assert.Equal(t, geom.V(400, 200), l.stage.Containers()[1].Bounds())
	assert.False(t, l.OnEvent(e, core.EventKey{Key: core.KeyR}))
	assert.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyP, Down: true}))
}

func TestLayer_RenderDrawsHandles(t *testing.T) {
	l, e, _ := newTestLayer(t)
	l.OnRender(e, 0)

	r := l.r2d.(*stubRenderer)
	assert.Equal(t, 1, r.scenes)
	require.Len(t, r.glyphs, 2)
	assert.Equal(t, geom.Rect{Pos: geom.V(355, 330), Size: geom.V(15, 15)}, r.glyphs[0])
}

func TestViewportSize_PrefersWindowSize(t *testing.T) {
	w, h := viewportSize(&stubWindow{})
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestApp_EscapeCloses(t *testing.T) {
	win := &stubWindow{}
	(&App{}).OnEvent(&core.Engine{Window: win}, core.EventKey{Key: core.KeyEscape, Down: true})
	assert.True(t, win.closed)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "log-level", "debug-addr", "vsync"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRun_FailsBeforeOpeningWindow(t *testing.T) {
	err := run(context.Background(), options{logLevel: "loud"}, false)
	assert.Error(t, err)

	err = run(context.Background(), options{logLevel: "info", configPath: filepath.Join(t.TempDir(), "nope.yaml")}, false)
	assert.Error(t, err)
}
