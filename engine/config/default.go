package config

import _ "embed"

//go:embed default.yaml
var defaultScene []byte

// Default returns the built-in demo scene: a centered column and a
// space-between row.
func Default() Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic(err)
	}
	return s
}
