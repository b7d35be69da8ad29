package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenCamera_Corners(t *testing.T) {
	c := NewScreenCamera(800, 600)
	for _, tt := range []struct {
		x, y, nx, ny float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
		{800, 0, 1, 1},
	} {
		nx, ny := c.Project(tt.x, tt.y)
		assert.InDelta(t, tt.nx, nx, 1e-5, "x of (%g, %g)", tt.x, tt.y)
		assert.InDelta(t, tt.ny, ny, 1e-5, "y of (%g, %g)", tt.x, tt.y)
	}
}

func TestScreenCamera_ResizeAndScroll(t *testing.T) {
	c := NewScreenCamera(800, 600)
	c.SetViewportPixels(400, 200)
	nx, ny := c.Project(400, 200)
	assert.InDelta(t, 1, nx, 1e-5)
	assert.InDelta(t, -1, ny, 1e-5)

	c.Move(100, 50)
	nx, ny = c.Project(100, 50)
	assert.InDelta(t, -1, nx, 1e-5)
	assert.InDelta(t, 1, ny, 1e-5)
}

func TestMul_Identity(t *testing.T) {
	id := translate(0, 0, 0)
	m := ortho(0, 10, 10, 0, -1, 1)
	assert.Equal(t, m, mul(id, m))
	assert.Equal(t, m, mul(m, id))
}
