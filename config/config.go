package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cornice-ui/cornice/logging"
	"github.com/cornice-ui/cornice/view"
)

// Config holds the view-layer settings a host application can tune.
type Config struct {
	// ChildViewEventPrefix is prepended when a child event bubbles one
	// ancestor hop. Empty disables forwarding.
	ChildViewEventPrefix string `toml:"child_view_event_prefix"`

	// Triggers controls the DOM defaults applied to string trigger
	// descriptors.
	Triggers TriggerConfig `toml:"triggers"`

	// LogLevel is the minimum logging level ("debug", "info", "warn",
	// "error").
	LogLevel string `toml:"log_level"`

	// BehaviorPaths lists directories scanned for scripted behaviors.
	BehaviorPaths []string `toml:"behavior_paths"`
}

// TriggerConfig holds trigger descriptor defaults.
type TriggerConfig struct {
	PreventDefault  bool `toml:"prevent_default"`
	StopPropagation bool `toml:"stop_propagation"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ChildViewEventPrefix: view.DefaultChildViewEventPrefix,
		Triggers: TriggerConfig{
			PreventDefault:  true,
			StopPropagation: true,
		},
		LogLevel: "info",
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// NewLogger builds a logger honoring LogLevel.
func (c *Config) NewLogger() *logging.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(c.LogLevel)
	return logging.New(lc)
}

// TriggerSpec returns a trigger spec for eventName using the configured
// DOM defaults.
func (c *Config) TriggerSpec(eventName string) view.TriggerSpec {
	return view.TriggerSpec{
		Event:           eventName,
		PreventDefault:  c.Triggers.PreventDefault,
		StopPropagation: c.Triggers.StopPropagation,
	}
}

// ViewOptions returns the view options implied by the configuration.
func (c *Config) ViewOptions() []view.Option {
	return []view.Option{
		view.WithChildViewEventPrefix(c.ChildViewEventPrefix),
	}
}
