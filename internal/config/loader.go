package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins).
	Load() (*Config, error)
}

type loader struct {
	dir  string // directory searched first for .filesift.yml
	file string // explicit config file, overrides the search when set
}

// NewLoader creates a loader that searches dir, then the home directory,
// for a .filesift config file.
func NewLoader(dir string) Loader {
	return &loader{dir: dir}
}

// NewFileLoader creates a loader bound to one explicit config file.
func NewFileLoader(file string) Loader {
	return &loader{file: file}
}

func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.file != "" {
		v.SetConfigFile(l.file)
	} else {
		v.SetConfigName(".filesift")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.dir)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("FILESIFT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("search.pattern")
	v.BindEnv("search.regex")
	v.BindEnv("search.max_depth")
	v.BindEnv("search.ignore_case")
	v.BindEnv("search.include_hidden")
	v.BindEnv("search.exclude")
	v.BindEnv("output.quiet")
	v.BindEnv("output.log_level")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// No config file on the search path is fine: defaults plus env
		// vars apply. An explicit file that cannot be read is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("search.pattern", defaults.Search.Pattern)
	v.SetDefault("search.regex", defaults.Search.Regex)
	v.SetDefault("search.max_depth", defaults.Search.MaxDepth)
	v.SetDefault("search.ignore_case", defaults.Search.IgnoreCase)
	v.SetDefault("search.include_hidden", defaults.Search.IncludeHidden)
	v.SetDefault("search.exclude", defaults.Search.Exclude)

	v.SetDefault("output.quiet", defaults.Output.Quiet)
	v.SetDefault("output.log_level", defaults.Output.LogLevel)
}
