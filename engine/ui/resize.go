package ui

import (
	"fmt"

	"github.com/hubastard/flexbox/engine/geom"
)

// Resize handle geometry, in container-local pixels.
const (
	HandleSize  = 15
	HandleInset = 20
)

type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("DragState(%d)", int(s))
	}
}

type DragKind uint8

const (
	DragStart DragKind = iota
	DragMove
	DragEnd
	PointerUp
)

func (k DragKind) String() string {
	switch k {
	case DragStart:
		return "drag-start"
	case DragMove:
		return "drag-move"
	case DragEnd:
		return "drag-end"
	case PointerUp:
		return "pointer-up"
	default:
		return fmt.Sprintf("DragKind(%d)", int(k))
	}
}

// DragEvent is one pointer event aimed at a container's resize handle. Pos is
// in screen space and ignored for DragEnd and PointerUp.
type DragEvent struct {
	Kind DragKind
	Pos  geom.Vec2
}

// ResizeHandle is the grip glued to a container's bottom-right corner. It
// belongs to the container and holds no reference back to it.
type ResizeHandle struct {
	pos  geom.Vec2 // container-local
	size geom.Vec2
}

func newResizeHandle(bounds geom.Vec2) *ResizeHandle {
	h := &ResizeHandle{size: geom.V(HandleSize, HandleSize)}
	h.glue(bounds)
	return h
}

// glue places the handle at its inset from the bottom-right corner of bounds.
func (h *ResizeHandle) glue(bounds geom.Vec2) {
	h.pos = bounds.Sub(geom.V(HandleInset, HandleInset))
}

func (h *ResizeHandle) Pos() geom.Vec2  { return h.pos }
func (h *ResizeHandle) Size() geom.Vec2 { return h.size }

// DragState reports whether the handle is currently being dragged.
func (c *Container) DragState() DragState { return c.drag }

// HandleContains reports whether the screen point p lies on the resize handle.
func (c *Container) HandleContains(p geom.Vec2) bool {
	if c.handle == nil {
		return false
	}
	return geom.Rect{Pos: c.pos.Add(c.handle.pos), Size: c.handle.size}.Contains(p)
}

// Contains reports whether the screen point p lies inside the container.
func (c *Container) Contains(p geom.Vec2) bool {
	return geom.Rect{Pos: c.pos, Size: c.frame.Size()}.Contains(p)
}

// HandleDrag applies one pointer event. Containers without a resize handle
// ignore every event.
func (c *Container) HandleDrag(ev DragEvent) {
	if c.handle == nil {
		return
	}
	switch ev.Kind {
	case DragStart:
		c.drag = Dragging
		c.anchor = ev.Pos
	case DragMove:
		if c.drag != Dragging {
			return
		}
		// Advance the anchor only by what the frame absorbed so a clamped
		// shrink is recovered before the corner grows again.
		c.anchor = c.anchor.Add(c.ResizeBy(ev.Pos.Sub(c.anchor)))
	case DragEnd, PointerUp:
		c.drag = Idle
		c.anchor = geom.Zero
	}
}

// ResizeBy grows the frame by delta, never below zero, moves the handle by
// the same amount and marks the container dirty. It returns the part of
// delta actually applied. A zero delta does nothing.
func (c *Container) ResizeBy(delta geom.Vec2) geom.Vec2 {
	if c.handle == nil || delta.IsZero() {
		return geom.Zero
	}
	size := c.frame.Size()
	next := size.Add(delta).Max(geom.Zero)
	applied := next.Sub(size)
	if applied.IsZero() {
		return geom.Zero
	}
	c.frame.Resize(next)
	c.handle.pos = c.handle.pos.Add(applied)
	c.dirty = true
	c.obs.Resized(c.name, next)
	return applied
}
