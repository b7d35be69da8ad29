package ui

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/layout"
	"github.com/hubastard/flexbox/engine/logging"
)

// spyChild counts position writes.
type spyChild struct {
	size   geom.Vec2
	pos    geom.Vec2
	writes int
}

func (s *spyChild) Size() geom.Vec2    { return s.size }
func (s *spyChild) SetPos(p geom.Vec2) { s.pos = p; s.writes++ }

type countingObserver struct {
	passes, skipped int
	sizes           []geom.Vec2
}

func (o *countingObserver) LayoutPass(string, int, geom.Vec2, time.Duration) { o.passes++ }
func (o *countingObserver) LayoutSkipped(string)                             { o.skipped++ }
func (o *countingObserver) Resized(_ string, s geom.Vec2)                    { o.sizes = append(o.sizes, s) }

func newSpies(n int, size geom.Vec2) []*spyChild {
	out := make([]*spyChild, n)
	for i := range out {
		out[i] = &spyChild{size: size}
	}
	return out
}

func asChildren(spies []*spyChild) []Child {
	out := make([]Child, len(spies))
	for i, s := range spies {
		out[i] = s
	}
	return out
}

func TestContainer_InitPositionsChildren(t *testing.T) {
	spies := newSpies(3, geom.V(74, 74))
	p := layout.NewPolicy(geom.Horizontal, layout.JustifySpaceBetween, layout.AlignEnd, 0, 10, 25)
	c := NewContainer("h", geom.V(400, 200), p)
	c.Register(asChildren(spies)...)

	c.Init()

	want := layout.Solve(geom.V(400, 200), []geom.Vec2{geom.V(74, 74), geom.V(74, 74), geom.V(74, 74)}, p)
	for i, s := range spies {
		assert.Equal(t, want[i], s.pos, "child %d", i)
		assert.Equal(t, 1, s.writes)
	}
	assert.Equal(t, geom.V(10, 101), spies[0].pos)
	assert.Equal(t, geom.V(316, 101), spies[2].pos)
	assert.Equal(t, want, c.Positions())
	assert.Equal(t, 1, c.Passes())
	assert.False(t, c.Dirty())
}

func TestContainer_TickBeforeInitRunsInit(t *testing.T) {
	spy := &spyChild{size: geom.V(10, 10)}
	c := NewContainer("c", geom.V(100, 100), layout.Policy{Justify: layout.JustifyCenter}, WithChildren(spy))

	require.False(t, c.Initialized())
	assert.True(t, c.Tick())
	assert.True(t, c.Initialized())
	assert.Equal(t, geom.V(45, 0), spy.pos)
}

func TestContainer_StableContainerSkipsLayout(t *testing.T) {
	spies := newSpies(2, geom.V(10, 10))
	obs := &countingObserver{}
	c := NewContainer("c", geom.V(100, 50), layout.Policy{}, WithChildren(asChildren(spies)...), WithObserver(obs))
	c.Init()

	for i := 0; i < 5; i++ {
		assert.False(t, c.NeedsRelayout())
		assert.False(t, c.Tick())
	}
	for _, s := range spies {
		assert.Equal(t, 1, s.writes)
	}
	assert.Equal(t, 1, obs.passes)
	assert.Equal(t, 5, obs.skipped)
}

func TestContainer_ExternalFrameResizeTriggersLayout(t *testing.T) {
	spy := &spyChild{size: geom.V(10, 10)}
	frame := NewRectFrame(geom.V(100, 50))
	c := NewContainer("c", geom.Zero, layout.Policy{Justify: layout.JustifyEnd}, WithFrame(frame), WithChildren(spy))
	c.Init()
	require.Equal(t, geom.V(90, 0), spy.pos)

	frame.Resize(geom.V(200, 50))
	assert.True(t, c.NeedsRelayout())
	assert.True(t, c.Tick())
	assert.Equal(t, geom.V(190, 0), spy.pos)
	assert.Equal(t, 2, spy.writes)

	assert.False(t, c.Tick())
	assert.Equal(t, 2, spy.writes)
}

func TestContainer_RegisterAfterInitMarksDirty(t *testing.T) {
	a, b := &spyChild{size: geom.V(10, 10)}, &spyChild{size: geom.V(20, 10)}
	c := NewContainer("c", geom.V(100, 10), layout.Policy{Gap: 5}, WithChildren(a))
	c.Init()

	c.Register(b)
	assert.True(t, c.Dirty())
	assert.True(t, c.Tick())
	assert.Equal(t, geom.V(0, 0), a.pos)
	assert.Equal(t, geom.V(15, 0), b.pos)
	assert.Len(t, c.Children(), 2)
}

func TestContainer_SetPolicyRelayouts(t *testing.T) {
	spy := &spyChild{size: geom.V(10, 10)}
	c := NewContainer("c", geom.V(100, 100), layout.Policy{}, WithChildren(spy))
	c.Init()

	c.SetPolicy(layout.Policy{Justify: layout.JustifyCenter, Align: layout.AlignCenter})
	assert.True(t, c.Tick())
	assert.Equal(t, geom.V(45, 45), spy.pos)
	assert.Equal(t, layout.JustifyCenter, c.Policy().Justify)
}

func TestContainer_NoChildren(t *testing.T) {
	c := NewContainer("empty", geom.V(100, 100), layout.Policy{Justify: layout.JustifySpaceBetween})
	assert.NotPanics(t, c.Init)
	assert.Empty(t, c.Positions())
}

func TestContainer_Idempotent(t *testing.T) {
	spies := newSpies(3, geom.V(20, 20))
	c := NewContainer("c", geom.V(200, 80), layout.Policy{Justify: layout.JustifySpaceEvenly, Align: layout.AlignCenter},
		WithChildren(asChildren(spies)...))
	c.Init()
	first := c.Positions()

	c.SetPolicy(c.Policy())
	c.Tick()
	assert.Equal(t, first, c.Positions())
}

func TestContainer_LogsOverflowOnce(t *testing.T) {
	var buf bytes.Buffer
	spies := newSpies(3, geom.V(50, 10))
	c := NewContainer("tight", geom.V(100, 10), layout.Policy{},
		WithChildren(asChildren(spies)...),
		WithLogger(logging.NewWithWriter(&buf, slog.LevelWarn)))

	c.Init()
	c.SetPolicy(layout.Policy{Justify: layout.JustifyCenter})
	c.Tick()

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("children overflow container")))
	assert.Equal(t, geom.V(-25, 0), spies[0].pos)
}
