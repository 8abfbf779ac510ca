// Package config loads filesift configuration from .filesift.yml with
// FILESIFT_* environment variable overrides.
package config

import "fmt"

// Config is the resolved filesift configuration.
type Config struct {
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// SearchConfig carries the default search settings; command-line flags
// override them per run.
type SearchConfig struct {
	Pattern       string   `yaml:"pattern" mapstructure:"pattern"`               // glob or regex
	Regex         bool     `yaml:"regex" mapstructure:"regex"`                   // interpret pattern as regex
	MaxDepth      int      `yaml:"max_depth" mapstructure:"max_depth"`           // -1 unlimited, 0 root only
	IgnoreCase    bool     `yaml:"ignore_case" mapstructure:"ignore_case"`       // case-insensitive matching
	IncludeHidden bool     `yaml:"include_hidden" mapstructure:"include_hidden"` // include hidden entries
	Exclude       []string `yaml:"exclude" mapstructure:"exclude"`               // root-relative glob excludes
}

// OutputConfig controls diagnostics and CLI chrome.
type OutputConfig struct {
	Quiet    bool   `yaml:"quiet" mapstructure:"quiet"`         // suppress diagnostics and spinner
	LogLevel string `yaml:"log_level" mapstructure:"log_level"` // debug, info, warn, error
}

// Default returns a configuration with sensible defaults: match every
// non-hidden file at any depth, warn-level diagnostics.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Pattern:  "*",
			MaxDepth: -1,
		},
		Output: OutputConfig{
			LogLevel: "warn",
		},
	}
}

// Validate rejects configurations the finder cannot compile.
func Validate(cfg *Config) error {
	if cfg.Search.MaxDepth < -1 {
		return fmt.Errorf("search.max_depth must be -1 or greater, got %d", cfg.Search.MaxDepth)
	}
	switch cfg.Output.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("output.log_level must be one of debug, info, warn, error; got %q", cfg.Output.LogLevel)
	}
	return nil
}
