// config_keys.go maps dotted key names ("fetch.workers") onto Config fields
// for the config command and the MCP server.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/codefind/internal/duration"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/variant"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"source.base", "source.variant", "source.manifest",
		"fetch.concurrent", "fetch.workers", "fetch.timeout",
		"language",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "source.base":
		return c.Source.Base, nil
	case "source.variant":
		if c.Source.Variant == "" {
			return variant.Default, nil
		}
		return c.Source.Variant, nil
	case "source.manifest":
		return c.Source.Manifest, nil
	case "fetch.concurrent":
		return strconv.FormatBool(c.Concurrent()), nil
	case "fetch.workers":
		return strconv.Itoa(c.Workers()), nil
	case "fetch.timeout":
		return c.Timeout().String(), nil
	case "language":
		return c.Language, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "source.base":
		c.Source.Base = value
	case "source.variant":
		if _, err := variant.Get(value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Source.Variant = value
	case "source.manifest":
		c.Source.Manifest = value
	case "fetch.concurrent":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: fetch.concurrent must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Fetch.Concurrent = &b
	case "fetch.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinWorkers || n > MaxWorkers {
			return fmt.Errorf("%w: fetch.workers must be between %d and %d", ErrInvalidValue, MinWorkers, MaxWorkers)
		}
		c.Fetch.Workers = &n
	case "fetch.timeout":
		if _, err := duration.Parse(value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Fetch.Timeout = value
	case "language":
		if err := i18n.Validate(value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		c.Language = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		out[k], _ = c.Get(k)
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "source.base":
		return c.Source.Base != ""
	case "source.variant":
		return c.Source.Variant != ""
	case "source.manifest":
		return c.Source.Manifest != ""
	case "fetch.concurrent":
		return c.Fetch.Concurrent != nil
	case "fetch.workers":
		return c.Fetch.Workers != nil
	case "fetch.timeout":
		return c.Fetch.Timeout != ""
	case "language":
		return c.Language != ""
	default:
		return false
	}
}
