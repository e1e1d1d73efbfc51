// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles mpgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the default name of the project configuration file.
const FileName = "mpgen.yaml"

// Default values applied to fields left empty.
const (
	DefaultInput      = "typing/lib.wx.api.d.ts"
	DefaultOutput     = "lib/universal_miniprogram_api_interface.dart"
	DefaultFormat     = "dart"
	DefaultPartOf     = "universal_miniprogram_api.dart"
	DefaultLookupKeys = "legacy"
)

// ErrInvalidConfig indicates a config file that failed to decode or validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the mpgen.yaml project configuration file.
type Config struct {
	Version    int    `yaml:"version"`
	Input      string `yaml:"input,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Policy     string `yaml:"policy,omitempty"`
	PartOf     string `yaml:"part_of,omitempty"`
	LookupKeys string `yaml:"lookup_keys,omitempty"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.PartOf == "" {
		c.PartOf = DefaultPartOf
	}
	if c.LookupKeys == "" {
		c.LookupKeys = DefaultLookupKeys
	}
}

// Load reads a Config from a file path and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.LookupKeys {
	case "", "legacy", "raw":
	default:
		return fmt.Errorf("lookup_keys must be legacy or raw, got %q", c.LookupKeys)
	}
	return nil
}
