package ui

import (
	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/geom"
)

// Child is anything a Container can position: a readable size and a
// writable position relative to the container's top-left corner.
type Child interface {
	Size() geom.Vec2
	SetPos(p geom.Vec2)
}

type Base struct {
	position geom.Vec2
	size     geom.Vec2
	color    colors.Color
}

func (b *Base) Pos() geom.Vec2          { return b.position }
func (b *Base) Size() geom.Vec2         { return b.size }
func (b *Base) SetPos(p geom.Vec2)      { b.position = p }
func (b *Base) SetSize(s geom.Vec2)     { b.size = s }
func (b *Base) Color() colors.Color     { return b.color }
func (b *Base) SetColor(c colors.Color) { b.color = c }

// Bounds returns the rectangle covered by b, offset by origin.
func (b *Base) Bounds(origin geom.Vec2) geom.Rect {
	return geom.Rect{Pos: origin.Add(b.position), Size: b.size}
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner, base: Base{color: colors.White}}
}

func (c *Common[T]) Node() *Base        { return &c.base }
func (c *Common[T]) Size() geom.Vec2    { return c.base.Size() }
func (c *Common[T]) Pos() geom.Vec2     { return c.base.Pos() }
func (c *Common[T]) SetPos(p geom.Vec2) { c.base.SetPos(p) }
func (c *Common[T]) Position(x, y float32) T {
	c.base.SetPos(geom.V(x, y))
	return c.owner
}
func (c *Common[T]) Dims(w, h float32) T {
	c.base.SetSize(geom.V(w, h))
	return c.owner
}
func (c *Common[T]) Color(col colors.Color) T {
	c.base.SetColor(col)
	return c.owner
}

// UIBox is a plain filled rectangle, the stock Child used by hosts and tests.
type UIBox struct {
	Common[*UIBox]
}

func Box(w, h float32) *UIBox {
	b := &UIBox{}
	b.Common = NewCommon(b)
	b.base.SetSize(geom.V(w, h))
	return b
}

func (b *UIBox) Draw(r Renderer, origin geom.Vec2) {
	if b.base.color[3] <= 0 {
		return
	}
	rect := b.base.Bounds(origin)
	r.FillRect(rect, b.base.color)
}
