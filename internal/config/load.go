package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration in priority order:
// 1. Defaults
// 2. TOML file (path, else $TADA_CONFIG, else ./tada.toml when present)
// 3. Environment variables
// Flags are applied on top by the caller, followed by Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, explicit := configFile(path)
	if file != "" {
		if err := loadConfigFile(cfg, file); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				return applyEnv(cfg), nil
			}
			return nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
	}

	return applyEnv(cfg), nil
}

// configFile resolves which file to read. explicit reports whether the
// user named it, in which case a missing file is an error.
func configFile(path string) (file string, explicit bool) {
	if path != "" {
		return path, true
	}
	if v := os.Getenv("TADA_CONFIG"); v != "" {
		return v, true
	}
	return DefaultConfigFile, false
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TADA_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("TADA_VIEW"); v != "" {
		cfg.View = v
	}
	return cfg
}
