// Package config defines the CLI configuration structure.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/kappa-go/internal/infra/confloader"
	"github.com/yndnr/kappa-go/internal/telemetry/logger"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".kappa", "cli.yaml")
}

// Load builds the configuration from defaults, the config file, KAPPA_*
// environment variables and overrides, in increasing priority.
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path must exist.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{confloader.WithOverrides(overrides)}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg := Default()
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes cfg as YAML, readable only by the owner since it carries the
// credential.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Redacted returns a copy of cfg safe to print.
func Redacted(cfg *CLIConfig) *CLIConfig {
	out := *cfg
	out.Credential.Value = logger.Mask(cfg.Credential.Value)
	return &out
}
