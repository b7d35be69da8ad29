package ui

import "github.com/hubastard/flexbox/engine/geom"

// Frame is the rendered background of a container. The container reads its
// bounds from the frame every tick and resizes it while the handle is dragged.
type Frame interface {
	Size() geom.Vec2
	Resize(size geom.Vec2)
}

// RectFrame is a plain rectangle frame; hosts with richer backgrounds
// (nine-slices, textures) provide their own Frame.
type RectFrame struct {
	size geom.Vec2
}

func NewRectFrame(size geom.Vec2) *RectFrame { return &RectFrame{size: size} }

func (f *RectFrame) Size() geom.Vec2       { return f.size }
func (f *RectFrame) Resize(size geom.Vec2) { f.size = size }
