// Package config loads scene descriptions: the window and the containers it
// shows, each with its layout policy and children.
//
// Scenes come from YAML files (Load, Parse) or from the plain maps a host
// templating layer produces (Decode). Enum fields are spelled as strings,
// e.g. "vertical", "space-between", "end", "disabled".
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/flexbox/engine/geom"
	"github.com/hubastard/flexbox/engine/layout"
	"github.com/hubastard/flexbox/engine/ui"
)

var ErrInvalidConfig = errors.New("invalid config")

// Resize is the configuration toggle of a container's resize handle. The
// zero value is enabled.
type Resize uint8

const (
	ResizeEnabled Resize = iota
	ResizeDisabled
)

func (r Resize) String() string {
	switch r {
	case ResizeEnabled:
		return "enabled"
	case ResizeDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("Resize(%d)", int(r))
	}
}

func (r Resize) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Resize) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "enabled", "on", "true":
		*r = ResizeEnabled
	case "disabled", "off", "false":
		*r = ResizeDisabled
	default:
		return fmt.Errorf("config: unknown resize mode %q", string(b))
	}
	return nil
}

type Child struct {
	Width  float32 `yaml:"width" mapstructure:"width"`
	Height float32 `yaml:"height" mapstructure:"height"`
	Color  string  `yaml:"color,omitempty" mapstructure:"color"`
}

// Container is the configuration surface of one flex container. It is
// immutable once built into a ui.Container.
type Container struct {
	Name      string         `yaml:"name" mapstructure:"name"`
	Direction geom.Axis      `yaml:"direction" mapstructure:"direction"`
	Justify   layout.Justify `yaml:"justify" mapstructure:"justify"`
	Align     layout.Align   `yaml:"align" mapstructure:"align"`
	Resize    Resize         `yaml:"resize" mapstructure:"resize"`
	Gap       float32        `yaml:"gap" mapstructure:"gap"`
	GutterX   float32        `yaml:"gutterX" mapstructure:"gutterX"`
	GutterY   float32        `yaml:"gutterY" mapstructure:"gutterY"`
	X         float32        `yaml:"x" mapstructure:"x"`
	Y         float32        `yaml:"y" mapstructure:"y"`
	Width     float32        `yaml:"width" mapstructure:"width"`
	Height    float32        `yaml:"height" mapstructure:"height"`
	Children  []Child        `yaml:"children" mapstructure:"children"`
}

type Window struct {
	Title  string `yaml:"title" mapstructure:"title"`
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	VSync  bool   `yaml:"vsync" mapstructure:"vsync"`
}

type Scene struct {
	Window     Window      `yaml:"window" mapstructure:"window"`
	Containers []Container `yaml:"containers" mapstructure:"containers"`
}

// Policy returns the layout policy described by c.
func (c Container) Policy() layout.Policy {
	return layout.NewPolicy(c.Direction, c.Justify, c.Align, c.Gap, c.GutterX, c.GutterY)
}

func (c Container) Validate() error {
	name := c.Name
	if name == "" {
		name = "<unnamed>"
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: container %s: size (%g, %g): %w", name, c.Width, c.Height, ErrInvalidConfig)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("config: container %s: %w: %w", name, ErrInvalidConfig, err)
	}
	if c.Resize > ResizeDisabled {
		return fmt.Errorf("config: container %s: resize %v: %w", name, c.Resize, ErrInvalidConfig)
	}
	for i, ch := range c.Children {
		if ch.Width < 0 || ch.Height < 0 {
			return fmt.Errorf("config: container %s: child %d size (%g, %g): %w", name, i, ch.Width, ch.Height, ErrInvalidConfig)
		}
	}
	return nil
}

func (s Scene) Validate() error {
	seen := make(map[string]bool, len(s.Containers))
	for _, c := range s.Containers {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.Name != "" && seen[c.Name] {
			return fmt.Errorf("config: duplicate container name %q: %w", c.Name, ErrInvalidConfig)
		}
		seen[c.Name] = true
	}
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("config: window size (%d, %d): %w", s.Window.Width, s.Window.Height, ErrInvalidConfig)
	}
	return nil
}

// Build creates the ui.Container described by c, with one ui.Box per
// configured child. opts are applied after the configured ones.
func (c Container) Build(opts ...ui.Option) (*ui.Container, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	children := make([]ui.Child, len(c.Children))
	for i, ch := range c.Children {
		box := ui.Box(ch.Width, ch.Height)
		if ch.Color != "" {
			col, err := ParseColor(ch.Color)
			if err != nil {
				return nil, fmt.Errorf("config: container %s: child %d: %w", c.Name, i, err)
			}
			box.Color(col)
		}
		children[i] = box
	}
	all := append([]ui.Option{
		ui.WithPos(geom.V(c.X, c.Y)),
		ui.WithResize(c.Resize == ResizeEnabled),
		ui.WithChildren(children...),
	}, opts...)
	return ui.NewContainer(c.Name, geom.V(c.Width, c.Height), c.Policy(), all...), nil
}

// Build creates every container of the scene in file order.
func (s Scene) Build(opts ...ui.Option) ([]*ui.Container, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]*ui.Container, 0, len(s.Containers))
	for _, c := range s.Containers {
		built, err := c.Build(opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML scene and validates it.
func Parse(b []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Scene{}, fmt.Errorf("config: parse scene: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Decode converts a generic map (e.g. a UI template model) into a
// Container. Numbers may arrive as strings.
func Decode(in map[string]any) (Container, error) {
	var c Container
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return Container{}, err
	}
	if err := dec.Decode(in); err != nil {
		return Container{}, fmt.Errorf("config: decode container: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Container{}, err
	}
	return c, nil
}

const (
	defaultTitle  = "Flex Sandbox"
	defaultWidth  = 800
	defaultHeight = 600
)

func (s *Scene) applyDefaults() {
	if s.Window.Title == "" {
		s.Window.Title = defaultTitle
	}
	if s.Window.Width == 0 {
		s.Window.Width = defaultWidth
	}
	if s.Window.Height == 0 {
		s.Window.Height = defaultHeight
	}
	for i := range s.Containers {
		if s.Containers[i].Name == "" {
			s.Containers[i].Name = fmt.Sprintf("container-%d", i)
		}
	}
}
