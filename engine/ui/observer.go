package ui

import (
	"time"

	"github.com/hubastard/flexbox/engine/geom"
)

// Observer receives a callback for every tick outcome of a container.
type Observer interface {
	LayoutPass(container string, children int, bounds geom.Vec2, took time.Duration)
	LayoutSkipped(container string)
	Resized(container string, size geom.Vec2)
}

type nopObserver struct{}

func (nopObserver) LayoutPass(string, int, geom.Vec2, time.Duration) {}
func (nopObserver) LayoutSkipped(string)                             {}
func (nopObserver) Resized(string, geom.Vec2)                        {}
