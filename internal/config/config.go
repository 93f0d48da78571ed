// Package config loads runtime settings for the todo CLI.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	DefaultTheme     = "classic"
	DefaultLogLevel  = "warn"
	DefaultExportDir = "."
	DefaultView      = ViewPlain

	// DefaultConfigFile is looked up in the working directory when no
	// path is given by flag or TADA_CONFIG.
	DefaultConfigFile = "tada.toml"
)

// View modes for the "View all todos" action.
const (
	ViewPlain  = "plain"
	ViewBrowse = "browse"
)

// Config holds every tunable setting.
type Config struct {
	Theme     string `toml:"theme"`      // classic | neon | mono
	LogLevel  string `toml:"log_level"`  // debug | info | warn | error
	ExportDir string `toml:"export_dir"` // directory receiving todos.{json,txt,yaml}
	View      string `toml:"view"`       // plain | browse
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		ExportDir: DefaultExportDir,
		View:      DefaultView,
	}
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown value %q (classic|neon|mono)", c.Theme)
	}
	switch c.View {
	case ViewPlain, ViewBrowse:
	default:
		return fmt.Errorf("view: unknown value %q (plain|browse)", c.View)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir: must not be empty")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
