// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldline-io/fieldline/lib/sessionstore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIELDLINE_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Compression != "zstd" || cfg.Log.Level != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Compression() != sessionstore.CompressionZstd {
		t.Errorf("Compression() = %s", cfg.Compression())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldline.yaml")
	content := `
store:
  root: /tmp/fl-test
  compression: lz4
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Root != "/tmp/fl-test" || cfg.Store.Compression != "lz4" || cfg.Log.Level != "debug" {
		t.Errorf("loaded = %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldline.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("FIELDLINE_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level = %s, want warn", cfg.Log.Level)
	}
	// Fields the file omits keep their defaults.
	if cfg.Store.Compression != "zstd" {
		t.Errorf("compression = %s, want zstd default", cfg.Store.Compression)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a named missing file succeeded")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Store.Compression = "brotli"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted unknown compression")
	}

	cfg = Default()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted unknown log level")
	}

	cfg = Default()
	cfg.Store.SealRecipients = []string{"age1notakey"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted invalid recipient key")
	}
}
