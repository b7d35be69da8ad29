package ui

import (
	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/geom"
)

// Renderer is what the ui package needs from a graphics backend. All
// rectangles are in screen pixels with a top-left origin.
type Renderer interface {
	FillRect(r geom.Rect, c colors.Color)
	StrokeRect(r geom.Rect, thickness float32, c colors.Color)
	DrawResizeGlyph(r geom.Rect, c colors.Color)
}

// Drawable children are painted by their container after the frame.
type Drawable interface {
	Draw(r Renderer, origin geom.Vec2)
}

type Style struct {
	FrameColor  colors.Color
	FrameStroke float32
	Background  colors.Color
	HandleColor colors.Color
}

// DefaultStyle is a transparent frame with a 3px white outline.
var DefaultStyle = Style{
	FrameColor:  colors.White,
	FrameStroke: 3,
	HandleColor: colors.Black,
}

// Draw paints the frame, the children that know how to draw themselves and
// the resize handle, in that order.
func (c *Container) Draw(r Renderer, style Style) {
	frame := geom.Rect{Pos: c.pos, Size: c.frame.Size()}
	if style.Background[3] > 0 {
		r.FillRect(frame, style.Background)
	}
	if style.FrameStroke > 0 && style.FrameColor[3] > 0 {
		r.StrokeRect(frame, style.FrameStroke, style.FrameColor)
	}
	for _, child := range c.children {
		if d, ok := child.(Drawable); ok {
			d.Draw(r, c.pos)
		}
	}
	if c.handle != nil {
		r.DrawResizeGlyph(geom.Rect{Pos: c.pos.Add(c.handle.pos), Size: c.handle.size}, style.HandleColor)
	}
}
