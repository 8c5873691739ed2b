package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig tests the DefaultConfig function
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.Encoding != "hex" {
		t.Errorf("Encoding = %q, want hex", config.Encoding)
	}

	if config.Workers <= 0 {
		t.Error("Workers should be positive")
	}

	if config.ConstantSeed != "" {
		t.Error("ConstantSeed should default to the standard seed")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

// TestConfigValidate tests the Validate method
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name:      "valid default config",
			config:    DefaultConfig(),
			expectErr: false,
		},
		{
			name:      "base64 encoding",
			config:    DefaultConfig().WithEncoding("base64"),
			expectErr: false,
		},
		{
			name:      "raw encoding",
			config:    DefaultConfig().WithEncoding("raw"),
			expectErr: false,
		},
		{
			name:      "unknown encoding",
			config:    DefaultConfig().WithEncoding("utf8"),
			expectErr: true,
		},
		{
			name:      "unknown log level",
			config:    DefaultConfig().WithLogLevel("loud"),
			expectErr: true,
		},
		{
			name:      "json log format",
			config:    DefaultConfig().WithLogFormat("json"),
			expectErr: false,
		},
		{
			name:      "unknown log format",
			config:    DefaultConfig().WithLogFormat("xml"),
			expectErr: true,
		},
		{
			name:      "zero workers",
			config:    DefaultConfig().WithWorkers(0),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

// TestConfigClone tests that Clone returns an independent copy
func TestConfigClone(t *testing.T) {
	original := DefaultConfig().WithConstantSeed("seed")
	clone := original.Clone()

	workers := original.Workers
	clone.WithEncoding("base64").WithWorkers(workers + 1)

	if original.Encoding != "hex" || original.Workers != workers {
		t.Error("modifying the clone changed the original")
	}
	if clone.ConstantSeed != "seed" {
		t.Errorf("ConstantSeed = %q, want seed", clone.ConstantSeed)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(dir, "ok.yaml")
		body := "encoding: base64\nlog_format: json\nworkers: 3\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if config.Encoding != "base64" || config.LogFormat != "json" || config.Workers != 3 {
			t.Errorf("unexpected config %+v", config)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want default info", config.LogLevel)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("workers: -1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("expected read error")
		}
	})
}
