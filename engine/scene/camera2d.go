package scene

// ScreenCamera maps window pixels (origin top-left, Y down) to clip space.
// Container positions are in the same space, so no conversion is needed
// between layout and drawing.
type ScreenCamera struct {
	Width, Height float32
	Near, Far     float32
	X, Y          float32 // scroll offset in pixels
	vp            [16]float32
	dirty         bool
}

func NewScreenCamera(width, height int) *ScreenCamera {
	c := &ScreenCamera{Near: -1, Far: 1}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *ScreenCamera) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *ScreenCamera) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *ScreenCamera) Recalculate() {
	// Top and bottom are swapped so +Y points down the screen.
	proj := ortho(0, c.Width, c.Height, 0, c.Near, c.Far)
	c.vp = mul(proj, translate(-c.X, -c.Y, 0))
	c.dirty = false
}

// Project applies the view-projection to a screen point and returns its
// normalized device coordinates.
func (c *ScreenCamera) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a*b.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[row+4*k] * b[k+4*col]
			}
			out[row+4*col] = s
		}
	}
	return out
}
