// Package config loads the panel layout used by the client front-end.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/chrisuehlinger/decafdrag/drag"
)

// Config is the top-level layout file.
type Config struct {
	Window Window  `yaml:"window"`
	Events string  `yaml:"events"` // "mouse" (default) or "touch"
	Panels []Panel `yaml:"panels"`
}

// Window describes the top-level window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Point is an optional bound corner.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Panel is one draggable panel.
type Panel struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Handle is the id of the title bar element. Empty means the whole
	// panel is the handle.
	Handle string `yaml:"handle"`
	Lower  *Point `yaml:"lower"`
	Upper  *Point `yaml:"upper"`
}

// Default returns the layout used when no file is given.
func Default() *Config {
	return &Config{
		Window: Window{Title: "DecafMUD", Width: 1024, Height: 768},
		Events: "mouse",
		Panels: []Panel{
			{
				ID: "sidebar", Title: "Sidebar",
				X: 10, Y: 10, Width: 220, Height: 320,
				Handle: "sidebar-title",
				Lower:  &Point{X: 0, Y: 0},
				Upper:  &Point{X: 800, Y: 440},
			},
			{
				ID: "font-settings", Title: "Font",
				X: 260, Y: 40, Width: 260, Height: 160,
				Handle: "font-settings-title",
				Lower:  &Point{X: 0, Y: 0},
			},
		},
	}
}

// Load reads and validates a YAML layout file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML layout data. Missing window fields
// take their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Window: Default().Window}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem in the layout.
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Events {
	case "", "mouse", "touch":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown event scheme %q", c.Events))
	}

	seen := make(map[string]bool)
	for i, p := range c.Panels {
		if p.ID == "" {
			err = multierr.Append(err, fmt.Errorf("panel %d: missing id", i))
			continue
		}
		if seen[p.ID] {
			err = multierr.Append(err, fmt.Errorf("panel %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if p.Handle != "" && p.Handle == p.ID {
			err = multierr.Append(err, fmt.Errorf("panel %q: handle id must differ from panel id", p.ID))
		}
		if p.Width < 0 || p.Height < 0 {
			err = multierr.Append(err, fmt.Errorf("panel %q: negative size", p.ID))
		}
	}
	return err
}

// Errors splits a Validate error into its parts.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// ErrNoPanel is returned by Panel when the id is unknown.
var ErrNoPanel = errors.New("no such panel")

// Panel returns the panel with the given id.
func (c *Config) Panel(id string) (*Panel, error) {
	for i := range c.Panels {
		if c.Panels[i].ID == id {
			return &c.Panels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoPanel, id)
}

// EventNames returns the drag event scheme.
func (c *Config) EventNames() drag.EventNames {
	if c.Events == "touch" {
		return drag.TouchEvents
	}
	return drag.MouseEvents
}

// Bounds converts the panel's bounds for drag.Options.
func (p *Panel) Bounds() (lower, upper *drag.Position) {
	if p.Lower != nil {
		lower = &drag.Position{X: p.Lower.X, Y: p.Lower.Y}
	}
	if p.Upper != nil {
		upper = &drag.Position{X: p.Upper.X, Y: p.Upper.Y}
	}
	return lower, upper
}

// DragOptions builds controller options for the panel.
func (c *Config) DragOptions(p *Panel) drag.Options {
	lower, upper := p.Bounds()
	return drag.Options{
		HandleID: p.Handle,
		Lower:    lower,
		Upper:    upper,
		Events:   c.EventNames(),
	}
}
