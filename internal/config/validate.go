package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		return errors.New("paths.source_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	for ext, name := range c.Categories {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("categories.%s must not map to an empty name", ext)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("categories.%s: category name %q must not contain path separators", ext, name)
		}
	}
	return nil
}
