// Package config provides reading and writing of codefind configuration.
// Supports both global (~/.codefind/config.yaml) and local (.codefind/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jpl-au/codefind/internal/duration"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/variant"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the directory name used for both scopes.
const Dir = ".codefind"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.codefind/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .codefind/config.yaml
	ScopeLocal
)

// Source says where a catalog comes from.
type Source struct {
	Base     string `yaml:"base,omitempty"`
	Variant  string `yaml:"variant,omitempty"`
	Manifest string `yaml:"manifest,omitempty"`
}

// Fetch holds content loading options.
type Fetch struct {
	Concurrent *bool  `yaml:"concurrent,omitempty"`
	Workers    *int   `yaml:"workers,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultWorkers = 8
	DefaultTimeout = 30 * time.Second
)

// Validation bounds for configuration values.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// Config contains configuration for codefind.
type Config struct {
	Source   Source `yaml:"source,omitempty"`
	Fetch    Fetch  `yaml:"fetch,omitempty"`
	Language string `yaml:"language,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
// An unsupported language is not an error here; Lang ignores it.
func (c *Config) Validate() error {
	if c.Source.Variant != "" {
		if _, err := variant.Get(c.Source.Variant); err != nil {
			return fmt.Errorf("%w: source.variant: %v", ErrInvalidValue, err)
		}
	}
	if c.Fetch.Workers != nil {
		v := *c.Fetch.Workers
		if v < MinWorkers || v > MaxWorkers {
			return fmt.Errorf("%w: fetch.workers must be between %d and %d, got %d",
				ErrInvalidValue, MinWorkers, MaxWorkers, v)
		}
	}
	if c.Fetch.Timeout != "" {
		if _, err := duration.Parse(c.Fetch.Timeout); err != nil {
			return fmt.Errorf("%w: fetch.timeout: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// Concurrent returns whether content is fetched by a worker pool (defaults to false).
func (c *Config) Concurrent() bool {
	if c.Fetch.Concurrent == nil {
		return false
	}
	return *c.Fetch.Concurrent
}

// Workers returns the worker pool size (defaults to 8).
func (c *Config) Workers() int {
	if c.Fetch.Workers == nil {
		return DefaultWorkers
	}
	return *c.Fetch.Workers
}

// Timeout returns the per-request timeout (defaults to 30s).
func (c *Config) Timeout() time.Duration {
	if c.Fetch.Timeout == "" {
		return DefaultTimeout
	}
	d, err := duration.Parse(c.Fetch.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Lang returns the saved language, or "" when it is unset or unsupported.
func (c *Config) Lang() string {
	if i18n.IsSupported(c.Language) {
		return c.Language
	}
	return ""
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.codefind/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
