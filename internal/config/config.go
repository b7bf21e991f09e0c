// Package config loads xdfdump's YAML configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds xdfdump's complete configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Parse ParseConfig `yaml:"parse"`
}

// LogConfig controls the CLI's structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", or "error"
}

// ParseConfig controls how xdfdump invokes the xdf package.
type ParseConfig struct {
	Workers int `yaml:"workers,omitempty"` // 0 or 1 means xdf.Parse; >1 means xdf.ParseConcurrent
}

// Load reads and strictly decodes a YAML config file, rejecting unknown
// fields, then applies defaults to anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Parse.Workers == 0 {
		c.Parse.Workers = 1
	}
}
