package geom

import (
	"fmt"
	"strings"
)

// Axis selects the main layout direction. The cross axis is the other one.
type Axis uint8

const (
	Horizontal Axis = iota // main axis is X
	Vertical               // main axis is Y
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Main returns the component of v lying on the main axis a.
func (v Vec2) Main(a Axis) float32 {
	if a == Vertical {
		return v.Y
	}
	return v.X
}

// Cross returns the component of v lying on the cross axis of a.
func (v Vec2) Cross(a Axis) float32 {
	if a == Vertical {
		return v.X
	}
	return v.Y
}

// FromAxes builds a Vec2 from main and cross components for axis a.
func FromAxes(a Axis, main, cross float32) Vec2 {
	if a == Vertical {
		return Vec2{X: cross, Y: main}
	}
	return Vec2{X: main, Y: cross}
}

// ParseAxis accepts "horizontal"/"row" and "vertical"/"column", case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("geom: unknown axis %q", s)
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(b []byte) error {
	v, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
