// Package layout places fixed-size children along one axis of a container.
//
// The solver is a pure function of the container size, the child sizes and a
// Policy. It never clamps: when children overflow the container the free
// space turns negative and the offsets overlap or leave the container.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hubastard/flexbox/engine/geom"
)

var (
	ErrInvalidPolicy = errors.New("layout: invalid policy")
	ErrUnknownValue  = errors.New("layout: unknown value")
)

// Justify controls how free space is distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // pack at the leading gutter
	JustifyEnd                         // pack at the trailing gutter
	JustifyCenter                      // center the packed run
	JustifySpaceBetween                // free space between children, none at the edges
	JustifySpaceAround                 // half-size spaces at the edges
	JustifySpaceEvenly                 // equal spaces between children and at the edges

	justifyCount
)

var justifyNames = [justifyCount]string{
	JustifyStart:        "start",
	JustifyEnd:          "end",
	JustifyCenter:       "center",
	JustifySpaceBetween: "space-between",
	JustifySpaceAround:  "space-around",
	JustifySpaceEvenly:  "space-evenly",
}

func (j Justify) String() string {
	if j < justifyCount {
		return justifyNames[j]
	}
	return fmt.Sprintf("Justify(%d)", int(j))
}

// ParseJustify accepts the kebab, snake or camel spelling of a justification,
// e.g. "space-between", "space_between" or "SpaceBetween".
func ParseJustify(s string) (Justify, error) {
	key := normalize(s)
	if key == "" {
		return JustifyStart, nil
	}
	for j, name := range justifyNames {
		if normalize(name) == key {
			return Justify(j), nil
		}
	}
	return JustifyStart, fmt.Errorf("%w: justify %q", ErrUnknownValue, s)
}

func (j Justify) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

func (j *Justify) UnmarshalText(b []byte) error {
	v, err := ParseJustify(string(b))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// Align controls where a child sits on the cross axis.
type Align uint8

const (
	AlignStart  Align = iota // against the leading cross gutter
	AlignEnd                 // against the trailing cross gutter
	AlignCenter              // centered between the cross gutters

	alignCount
)

var alignNames = [alignCount]string{
	AlignStart:  "start",
	AlignEnd:    "end",
	AlignCenter: "center",
}

func (a Align) String() string {
	if a < alignCount {
		return alignNames[a]
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

func ParseAlign(s string) (Align, error) {
	key := normalize(s)
	if key == "" {
		return AlignStart, nil
	}
	for a, name := range alignNames {
		if name == key {
			return Align(a), nil
		}
	}
	return AlignStart, fmt.Errorf("%w: align %q", ErrUnknownValue, s)
}

func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Align) UnmarshalText(b []byte) error {
	v, err := ParseAlign(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// Policy is the immutable layout configuration of a container.
type Policy struct {
	Axis        geom.Axis
	Justify     Justify
	Align       Align
	Gap         float32 // space between consecutive children
	GutterMain  float32 // inset at both ends of the main axis
	GutterCross float32 // inset at both ends of the cross axis
}

// NewPolicy builds a Policy from gutters expressed in screen space, mapping
// them onto the main and cross axes of axis.
func NewPolicy(axis geom.Axis, justify Justify, align Align, gap, gutterX, gutterY float32) Policy {
	g := geom.V(gutterX, gutterY)
	return Policy{
		Axis:        axis,
		Justify:     justify,
		Align:       align,
		Gap:         gap,
		GutterMain:  g.Main(axis),
		GutterCross: g.Cross(axis),
	}
}

// Gutters returns the gutters back in screen space (X, Y).
func (p Policy) Gutters() geom.Vec2 {
	return geom.FromAxes(p.Axis, p.GutterMain, p.GutterCross)
}

// Validate rejects negative spacing and unknown enum values.
func (p Policy) Validate() error {
	switch {
	case p.Axis != geom.Horizontal && p.Axis != geom.Vertical:
		return fmt.Errorf("%w: axis %v", ErrInvalidPolicy, p.Axis)
	case p.Justify >= justifyCount:
		return fmt.Errorf("%w: justify %v", ErrInvalidPolicy, p.Justify)
	case p.Align >= alignCount:
		return fmt.Errorf("%w: align %v", ErrInvalidPolicy, p.Align)
	case p.Gap < 0:
		return fmt.Errorf("%w: gap %g < 0", ErrInvalidPolicy, p.Gap)
	case p.GutterMain < 0 || p.GutterCross < 0:
		return fmt.Errorf("%w: gutters (%g, %g) must be >= 0", ErrInvalidPolicy, p.GutterMain, p.GutterCross)
	}
	return nil
}

func (p Policy) String() string {
	return fmt.Sprintf("%s justify=%s align=%s gap=%g gutter=(%g, %g)",
		p.Axis, p.Justify, p.Align, p.Gap, p.GutterMain, p.GutterCross)
}
