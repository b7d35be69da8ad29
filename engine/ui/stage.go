package ui

import (
	"github.com/hubastard/flexbox/engine/core"
	"github.com/hubastard/flexbox/engine/geom"
)

// Stage owns the containers of a scene. It turns raw pointer input into drag
// events for the container whose handle was grabbed and ticks every
// container once per update.
type Stage struct {
	containers []*Container
	active     *Container
	pointer    geom.Vec2
	style      Style
}

func NewStage(containers ...*Container) *Stage {
	return &Stage{containers: containers, style: DefaultStyle}
}

func (s *Stage) Add(containers ...*Container) { s.containers = append(s.containers, containers...) }
func (s *Stage) Containers() []*Container     { return s.containers }
func (s *Stage) SetStyle(style Style)         { s.style = style }

// Active returns the container whose handle is being dragged, or nil.
func (s *Stage) Active() *Container { return s.active }

// Init runs the initial layout pass of every container.
func (s *Stage) Init() {
	for _, c := range s.containers {
		c.Init()
	}
}

// Update ticks every container and returns how many ran a layout pass.
func (s *Stage) Update() int {
	n := 0
	for _, c := range s.containers {
		if c.Tick() {
			n++
		}
	}
	return n
}

func (s *Stage) Draw(r Renderer) {
	for _, c := range s.containers {
		c.Draw(r, s.style)
	}
}

// HandleEvent consumes the pointer events that start, feed or end a drag and
// reports whether ev was used.
func (s *Stage) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseMove:
		s.pointer = geom.V(float32(e.X), float32(e.Y))
		if s.active == nil {
			return false
		}
		s.active.HandleDrag(DragEvent{Kind: DragMove, Pos: s.pointer})
		return true

	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			return false
		}
		s.pointer = geom.V(float32(e.X), float32(e.Y))
		if e.Down {
			return s.grab()
		}
		return s.release()
	}
	return false
}

// grab starts a drag on the topmost container whose handle is under the
// pointer. Later containers are drawn on top, so they are tested first.
func (s *Stage) grab() bool {
	for i := len(s.containers) - 1; i >= 0; i-- {
		c := s.containers[i]
		if c.HandleContains(s.pointer) {
			s.active = c
			c.HandleDrag(DragEvent{Kind: DragStart, Pos: s.pointer})
			return true
		}
	}
	return false
}

func (s *Stage) release() bool {
	c := s.active
	if c == nil {
		return false
	}
	s.active = nil
	if c.HandleContains(s.pointer) {
		c.HandleDrag(DragEvent{Kind: PointerUp})
	} else {
		c.HandleDrag(DragEvent{Kind: DragEnd})
	}
	return true
}
