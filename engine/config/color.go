package config

import (
	"fmt"

	"github.com/hubastard/flexbox/engine/colors"
)

// ParseColor accepts a palette name or a "#rrggbb" / "#rrggbbaa" hex string.
func ParseColor(s string) (colors.Color, error) {
	c, err := colors.Parse(s)
	if err != nil {
		return colors.Color{}, fmt.Errorf("config: %w: %w", ErrInvalidConfig, err)
	}
	return c, nil
}
