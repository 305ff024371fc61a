package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the settings of the wordid command.
// Command line flags take precedence over a configuration file.
type Config struct {
	// Style is the rendering of encoded phrases, "natural" or "compact".
	Style string `yaml:"style"`

	// Punk selects the punk scheme for 64 bit values.
	Punk bool `yaml:"punk"`

	// Trace is the trace level, one of "error", "info" or "debug".
	Trace string `yaml:"trace"`
}

// DefaultConfig is the configuration used if no configuration file is given.
const DefaultConfig = `
style: natural
punk: false
trace: error
`

// ConfigFromFile parses a Config from the named file. Settings missing from
// the file keep their default value. If name is empty, DefaultConfig is used.
func ConfigFromFile(name string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(DefaultConfig), &cfg); err != nil {
		return nil, err
	}
	if name != "" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Style {
	case "natural", "compact":
	default:
		return fmt.Errorf("style must be natural or compact, is %q", cfg.Style)
	}
	switch cfg.Trace {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("trace must be error, info or debug, is %q", cfg.Trace)
	}
	return nil
}
