package ui

import (
	"log/slog"
	"time"

	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/layout"
	"github.com/hubastard/flexbox/engine/logging"
)

// Container positions its registered children with the layout solver and
// re-runs the solver only when its bounds change or a drag marked it dirty.
//
// A Container is driven from a single goroutine: Tick and HandleDrag must not
// be called concurrently.
type Container struct {
	name     string
	pos      geom.Vec2 // top-left corner on screen
	policy   layout.Policy
	children []Child
	frame    Frame

	last        geom.Vec2 // bounds used by the previous pass
	positions   []geom.Vec2
	dirty       bool
	initialized bool
	overflowing bool
	passes      int

	resizable bool
	handle    *ResizeHandle
	drag      DragState
	anchor    geom.Vec2

	log *slog.Logger
	obs Observer
}

type Option func(*Container)

// WithResize toggles the resize handle. Containers are resizable by default.
func WithResize(enabled bool) Option { return func(c *Container) { c.resizable = enabled } }

// WithFrame replaces the default RectFrame; the initial size passed to
// NewContainer is then ignored.
func WithFrame(f Frame) Option { return func(c *Container) { c.frame = f } }

func WithPos(p geom.Vec2) Option       { return func(c *Container) { c.pos = p } }
func WithLogger(l *slog.Logger) Option { return func(c *Container) { c.log = l } }
func WithObserver(o Observer) Option   { return func(c *Container) { c.obs = o } }
func WithChildren(children ...Child) Option {
	return func(c *Container) { c.children = append(c.children, children...) }
}

func NewContainer(name string, size geom.Vec2, p layout.Policy, opts ...Option) *Container {
	c := &Container{
		name:      name,
		policy:    p,
		resizable: true,
		log:       logging.NewNop(),
		obs:       nopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.frame == nil {
		c.frame = NewRectFrame(size)
	}
	if c.resizable {
		c.handle = newResizeHandle(c.frame.Size())
	}
	return c
}

func (c *Container) Name() string          { return c.name }
func (c *Container) Pos() geom.Vec2        { return c.pos }
func (c *Container) SetPos(p geom.Vec2)    { c.pos = p }
func (c *Container) Policy() layout.Policy { return c.policy }
func (c *Container) Bounds() geom.Vec2     { return c.frame.Size() }
func (c *Container) Frame() Frame          { return c.frame }
func (c *Container) Handle() *ResizeHandle { return c.handle }
func (c *Container) Passes() int           { return c.passes }
func (c *Container) Dirty() bool           { return c.dirty }
func (c *Container) Initialized() bool     { return c.initialized }
func (c *Container) Children() []Child     { return c.children }

// Positions returns a copy of the positions written by the last pass.
func (c *Container) Positions() []geom.Vec2 {
	return append([]geom.Vec2(nil), c.positions...)
}

// Register appends children in main-axis order. Children registered after
// Init are positioned on the next pass.
func (c *Container) Register(children ...Child) {
	c.children = append(c.children, children...)
	if c.initialized && len(children) > 0 {
		c.dirty = true
	}
}

// SetPolicy swaps the layout policy; the next tick re-runs layout.
func (c *Container) SetPolicy(p layout.Policy) {
	c.policy = p
	c.dirty = true
}

// Init runs the first layout pass unconditionally so children never show at
// their zero positions.
func (c *Container) Init() {
	c.initialized = true
	c.relayout(c.frame.Size())
}

// NeedsRelayout reports whether the next Tick will run a pass.
func (c *Container) NeedsRelayout() bool {
	return needsRelayout(c.dirty, c.last, c.frame.Size())
}

func needsRelayout(dirty bool, last, bounds geom.Vec2) bool {
	return dirty || !bounds.Eq(last)
}

// Tick runs one update step and reports whether a layout pass ran.
func (c *Container) Tick() bool {
	if !c.initialized {
		c.Init()
		return true
	}
	bounds := c.frame.Size()
	if !needsRelayout(c.dirty, c.last, bounds) {
		c.obs.LayoutSkipped(c.name)
		return false
	}
	c.relayout(bounds)
	return true
}

func (c *Container) relayout(bounds geom.Vec2) {
	start := time.Now()

	sizes := make([]geom.Vec2, len(c.children))
	for i, child := range c.children {
		sizes[i] = child.Size()
	}
	positions := layout.Solve(bounds, sizes, c.policy)
	for i, p := range positions {
		if !p.IsFinite() {
			c.log.Warn("non-finite child position", "container", c.name, "index", i, "pos", p)
		}
		c.children[i].SetPos(p)
	}

	c.positions = positions
	if c.handle != nil && !bounds.Eq(c.last) {
		c.handle.glue(bounds)
	}
	c.last = bounds
	c.dirty = false
	c.passes++

	free := layout.FreeSpace(bounds, sizes, c.policy)
	if free < 0 && !c.overflowing {
		c.log.Warn("children overflow container", "container", c.name, "bounds", bounds, "free", free)
	}
	c.overflowing = free < 0

	took := time.Since(start)
	c.log.Debug("layout pass", "container", c.name, "children", len(sizes), "bounds", bounds, "took", took)
	c.obs.LayoutPass(c.name, len(sizes), bounds, took)
}
