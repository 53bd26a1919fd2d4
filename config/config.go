// Package config loads optional YAML configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-wide settings. Every field has a usable default, so a
// config file is optional.
type Config struct {
	// LogLevel is one of debug, info, warn, error. The LOG_LEVEL
	// environment variable overrides it.
	LogLevel string `yaml:"log_level"`

	// Workers bounds how many input files the directory command parses
	// concurrently.
	Workers int `yaml:"workers"`

	// Pretty indents JSON output where the format supports it.
	Pretty bool `yaml:"pretty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Workers:  4,
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = Default().Workers
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	return cfg, nil
}
