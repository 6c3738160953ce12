// Package config loads the optional audit configuration. Without a
// config file every value falls back to a fixed default, so the tool
// works out of the box when invoked with no arguments.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls probe selection, timeouts and report placement.
type Config struct {
	Probes    map[string]bool `yaml:"probes"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
	OutputDir string          `yaml:"outputDir"`
}

// TimeoutConfig defines configurable timeout durations in seconds.
type TimeoutConfig struct {
	Command         int `yaml:"command"`         // per external command (default: 10)
	MetadataConnect int `yaml:"metadataConnect"` // cloud metadata connect timeout (default: 1)
}

// Default returns the built-in configuration: all probes enabled,
// 10 second command bound, reports in the current working directory.
func Default() *Config {
	return &Config{
		Probes: map[string]bool{},
		Timeouts: TimeoutConfig{
			Command:         10,
			MetadataConnect: 1,
		},
		OutputDir: ".",
	}
}

// Load reads the first readable config file, falling back to Default
// on any read or parse problem.
func Load() *Config {
	paths := []string{
		filepath.Join(os.Getenv("HOME"), ".linux-recon", "config.yaml"),
		"/etc/linux-recon/config.yaml",
	}

	for _, path := range paths {
		if cfg, err := loadFrom(path); err == nil {
			return cfg
		}
	}

	return Default()
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Timeouts.Command <= 0 {
		c.Timeouts.Command = 10
	}
	if c.Timeouts.MetadataConnect <= 0 {
		c.Timeouts.MetadataConnect = 1
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Probes == nil {
		c.Probes = map[string]bool{}
	}
}

// CommandTimeout returns the wall-clock bound for one external command.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Timeouts.Command) * time.Second
}

// ProbeEnabled reports whether a probe should run. Probes missing from
// the config map are enabled.
func (c *Config) ProbeEnabled(name string) bool {
	enabled, ok := c.Probes[name]
	if !ok {
		return true
	}
	return enabled
}
