package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flexbox/engine/geom"
)

func TestParseJustify(t *testing.T) {
	tests := map[string]Justify{
		"":              JustifyStart,
		"start":         JustifyStart,
		"End":           JustifyEnd,
		"center":        JustifyCenter,
		"space-between": JustifySpaceBetween,
		"space_around":  JustifySpaceAround,
		"SpaceEvenly":   JustifySpaceEvenly,
	}
	for in, want := range tests {
		got, err := ParseJustify(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseJustify("stretch")
	assert.True(t, errors.Is(err, ErrUnknownValue))
}

func TestParseAlign(t *testing.T) {
	got, err := ParseAlign("CENTER")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, got)

	got, err = ParseAlign("end")
	require.NoError(t, err)
	assert.Equal(t, AlignEnd, got)

	_, err = ParseAlign("baseline")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestEnumText(t *testing.T) {
	var j Justify
	require.NoError(t, j.UnmarshalText([]byte("space-evenly")))
	assert.Equal(t, JustifySpaceEvenly, j)

	b, err := JustifySpaceBetween.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "space-between", string(b))

	var a Align
	assert.Error(t, a.UnmarshalText([]byte("sideways")))
	assert.Equal(t, "Justify(99)", Justify(99).String())
	assert.Equal(t, "Align(99)", Align(99).String())
}

func TestNewPolicyMapsGutters(t *testing.T) {
	h := NewPolicy(geom.Horizontal, JustifyStart, AlignStart, 0, 10, 25)
	assert.Equal(t, float32(10), h.GutterMain)
	assert.Equal(t, float32(25), h.GutterCross)
	assert.Equal(t, geom.V(10, 25), h.Gutters())

	v := NewPolicy(geom.Vertical, JustifyStart, AlignStart, 0, 10, 25)
	assert.Equal(t, float32(25), v.GutterMain)
	assert.Equal(t, float32(10), v.GutterCross)
	assert.Equal(t, geom.V(10, 25), v.Gutters())
}

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, Policy{}.Validate())
	assert.NoError(t, NewPolicy(geom.Vertical, JustifySpaceEvenly, AlignEnd, 15, 20, 0).Validate())

	bad := []Policy{
		{Gap: -1},
		{GutterMain: -1},
		{GutterCross: -0.5},
		{Justify: justifyCount},
		{Align: alignCount},
		{Axis: geom.Axis(3)},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy, p.String())
	}
}
