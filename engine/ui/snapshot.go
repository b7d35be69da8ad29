package ui

import "github.com/hubastard/flexbox/engine/geom"

// Snapshot is a read-only copy of a container's state, safe to hand to
// another goroutine.
type Snapshot struct {
	Name     string
	Pos      geom.Vec2
	Bounds   geom.Vec2
	Policy   string
	State    string
	Dirty    bool
	Passes   int
	Children []geom.Rect
	Handle   *geom.Rect
}

func (c *Container) Snapshot() Snapshot {
	s := Snapshot{
		Name:     c.name,
		Pos:      c.pos,
		Bounds:   c.frame.Size(),
		Policy:   c.policy.String(),
		State:    c.drag.String(),
		Dirty:    c.dirty,
		Passes:   c.passes,
		Children: make([]geom.Rect, len(c.children)),
	}
	for i, child := range c.children {
		var pos geom.Vec2
		if i < len(c.positions) {
			pos = c.positions[i]
		}
		s.Children[i] = geom.Rect{Pos: pos, Size: child.Size()}
	}
	if c.handle != nil {
		s.Handle = &geom.Rect{Pos: c.handle.pos, Size: c.handle.size}
	}
	return s
}

// Snapshot copies the state of every container on the stage.
func (s *Stage) Snapshot() []Snapshot {
	out := make([]Snapshot, len(s.containers))
	for i, c := range s.containers {
		out[i] = c.Snapshot()
	}
	return out
}
