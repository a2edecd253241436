// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for fieldline.
//
// Configuration is loaded from a single YAML file specified by:
//   - the --config flag, or
//   - the FIELDLINE_CONFIG environment variable.
//
// There is no search path and no automatic discovery — an explicit
// path or nothing. When neither is set, built-in defaults apply, so a
// config file is never required.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fieldline-io/fieldline/lib/sessionstore"
)

// Config is the root fieldline configuration.
type Config struct {
	// Store configures the session store.
	Store StoreConfig `yaml:"store"`

	// Log configures command logging.
	Log LogConfig `yaml:"log"`
}

// StoreConfig configures the session store.
type StoreConfig struct {
	// Root is the store directory. Empty means the default
	// ($FIELDLINE_HOME or ~/.fieldline).
	Root string `yaml:"root"`

	// Compression is the envelope compression for saved sessions:
	// "none", "lz4", or "zstd".
	Compression string `yaml:"compression"`

	// SealRecipients are age public keys (age1...). When set, new
	// sessions are sealed to these recipients by default.
	SealRecipients []string `yaml:"seal_recipients"`
}

// LogConfig configures command logging.
type LogConfig struct {
	// Level is the minimum slog level: "debug", "info", "warn",
	// "error".
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Compression: "zstd"},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads configuration from path, or from FIELDLINE_CONFIG when
// path is empty, or returns defaults when neither names a file. An
// explicitly named file that is missing or malformed is an error —
// a configuration the operator pointed at must not be half-applied.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("FIELDLINE_CONFIG")
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem.
func (c *Config) Validate() error {
	if _, err := sessionstore.ParseCompressionTag(c.Store.Compression); err != nil {
		return fmt.Errorf("store.compression: %w", err)
	}
	for _, key := range c.Store.SealRecipients {
		if err := sessionstore.ParseRecipientKey(key); err != nil {
			return fmt.Errorf("store.seal_recipients: %w", err)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(`log.level must be one of "debug", "info", "warn", "error"`)
	}
	return nil
}

// Compression returns the parsed compression tag. Call after
// Validate (Load validates).
func (c *Config) Compression() sessionstore.CompressionTag {
	tag, err := sessionstore.ParseCompressionTag(c.Store.Compression)
	if err != nil {
		// Validate accepted it; reaching here is a programming error.
		panic("config: invalid compression after validation: " + err.Error())
	}
	return tag
}
