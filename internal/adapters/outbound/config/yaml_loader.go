package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/truestock/truestock/internal/domain"
)

// FileName is the config file looked up in the config directory.
const FileName = ".truestock.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .truestock.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .truestock.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	cfg = mergeConfig(domain.DefaultConfig(), cfg)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// mergeConfig overlays explicit values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	if override.Currency != "" {
		result.Currency = override.Currency
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		result.Log.Format = override.Log.Format
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Log.MaxSizeMB != 0 {
		result.Log.MaxSizeMB = override.Log.MaxSizeMB
	}
	if override.Log.MaxBackups != 0 {
		result.Log.MaxBackups = override.Log.MaxBackups
	}
	if override.HTTP.Addr != "" {
		result.HTTP.Addr = override.HTTP.Addr
	}

	// An explicit seed replaces the sample catalog entirely.
	if len(override.Seed) > 0 {
		result.Seed = override.Seed
	}

	return result
}
