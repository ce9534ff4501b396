package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	Color ColorMode `yaml:"color,omitempty"`
}

// ColorMode returns the configured mode, defaulting to auto.
func (c *Config) ColorMode() ColorMode {
	if c.Color == "" {
		return ColorAuto
	}
	return c.Color
}

// Decorate decides whether output gets ANSI styling.
func (c *Config) Decorate(stdoutIsTerminal bool) bool {
	switch c.ColorMode() {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTerminal
	}
}

func ValidateColor(m ColorMode) error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q: must be one of auto, always, never", m)
}

func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

func Load(dataDir string) (*Config, error) {
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Color != "" {
		if err := ValidateColor(cfg.Color); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}
