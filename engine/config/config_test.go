package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flexbox/engine/colors"
	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/layout"
	"github.com/hubastard/flexbox/engine/ui"
)

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("containers:\n  - width: 100\n    height: 50\n"))
	require.NoError(t, err)
	require.Len(t, s.Containers, 1)

	c := s.Containers[0]
	assert.Equal(t, "container-0", c.Name)
	assert.Equal(t, geom.Horizontal, c.Direction)
	assert.Equal(t, layout.JustifyStart, c.Justify)
	assert.Equal(t, layout.AlignStart, c.Align)
	assert.Equal(t, ResizeEnabled, c.Resize)
	assert.Equal(t, "Flex Sandbox", s.Window.Title)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
}

func TestParse_Enums(t *testing.T) {
	src := `
containers:
  - name: a
    direction: column
    justify: space-evenly
    align: center
    resize: disabled
    gutterX: 4
    gutterY: 8
`
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	c := s.Containers[0]
	assert.Equal(t, geom.Vertical, c.Direction)
	assert.Equal(t, layout.JustifySpaceEvenly, c.Justify)
	assert.Equal(t, layout.AlignCenter, c.Align)
	assert.Equal(t, ResizeDisabled, c.Resize)

	p := c.Policy()
	assert.Equal(t, float32(8), p.GutterMain)
	assert.Equal(t, float32(4), p.GutterCross)
}

func TestParse_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown justify": "containers:\n  - justify: sideways\n",
		"unknown resize":  "containers:\n  - resize: maybe\n",
		"negative size":   "containers:\n  - width: -1\n",
		"negative gap":    "containers:\n  - gap: -3\n",
		"duplicate name":  "containers:\n  - name: x\n  - name: x\n",
		"bad color":       "containers:\n  - children:\n      - {width: 1, height: 1, color: \"#zzz\"}\n",
		"not yaml":        "containers: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			require.Error(t, err)
		})
	}
}

func TestParse_InvalidConfigSentinel(t *testing.T) {
	_, err := Parse([]byte("containers:\n  - width: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: t\ncontainers:\n  - name: one\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "t", s.Window.Title)
	assert.Equal(t, "one", s.Containers[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	c, err := Decode(map[string]any{
		"name":      "hud",
		"direction": "vertical",
		"justify":   "end",
		"align":     "center",
		"gap":       "12",
		"width":     200,
		"height":    100.5,
		"children": []any{
			map[string]any{"width": 10, "height": 20},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hud", c.Name)
	assert.Equal(t, geom.Vertical, c.Direction)
	assert.Equal(t, layout.JustifyEnd, c.Justify)
	assert.Equal(t, layout.AlignCenter, c.Align)
	assert.Equal(t, float32(12), c.Gap)
	assert.Equal(t, float32(100.5), c.Height)
	require.Len(t, c.Children, 1)
	assert.Equal(t, float32(20), c.Children[0].Height)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(map[string]any{"justify": "nowhere"})
	require.Error(t, err)

	_, err = Decode(map[string]any{"bogus": 1})
	require.Error(t, err)

	_, err = Decode(map[string]any{"gap": -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuild(t *testing.T) {
	cfg := Container{
		Name:    "row",
		Justify: layout.JustifySpaceBetween,
		Align:   layout.AlignEnd,
		GutterX: 10,
		GutterY: 25,
		X:       350,
		Y:       375,
		Width:   400,
		Height:  200,
		Resize:  ResizeDisabled,
		Children: []Child{
			{Width: 74, Height: 74, Color: "red"},
			{Width: 74, Height: 74},
			{Width: 74, Height: 74},
		},
	}
	c, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "row", c.Name())
	assert.Equal(t, geom.V(350, 375), c.Pos())
	assert.Nil(t, c.Handle())

	c.Init()
	assert.Equal(t, []geom.Vec2{{X: 10, Y: 101}, {X: 163, Y: 101}, {X: 316, Y: 101}}, c.Positions())

	first, ok := c.Children()[0].(*ui.UIBox)
	require.True(t, ok)
	assert.Equal(t, colors.Red, first.Node().Color())
}

func TestDefault(t *testing.T) {
	s := Default()
	require.Len(t, s.Containers, 2)

	built, err := s.Build()
	require.NoError(t, err)

	column := built[0]
	column.Init()
	assert.Equal(t, []geom.Vec2{{X: 125.5, Y: 24}, {X: 125.5, Y: 113}, {X: 125.5, Y: 202}}, column.Positions())
	assert.NotNil(t, column.Handle())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff000080")
	require.NoError(t, err)
	assert.InDelta(t, 1, c[0], 1e-6)
	assert.InDelta(t, 0, c[1], 1e-6)
	assert.InDelta(t, 128.0/255, c[3], 1e-6)

	c, err = ParseColor(" Blue ")
	require.NoError(t, err)
	assert.Equal(t, colors.Blue, c)

	_, err = ParseColor("chartreuse")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
