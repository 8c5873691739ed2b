package utils

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/codec"
)

// Config represents the configuration of the hash adapter
type Config struct {
	// Text encoding for byte-input digests ("hex", "base64" or "raw")
	Encoding string `yaml:"encoding"`

	// Log level name understood by zerolog ("debug", "info", ...)
	LogLevel string `yaml:"log_level"`

	// Log output format, "console" or "json"
	LogFormat string `yaml:"log_format"`

	// Maximum concurrent hashes in batch mode
	Workers int `yaml:"workers"`

	// Seed for the permutation round constants; empty selects the standard seed
	ConstantSeed string `yaml:"constant_seed"`
}

// DefaultConfig returns the default adapter configuration
func DefaultConfig() *Config {
	return &Config{
		Encoding:  string(codec.Hex),
		LogLevel:  "info",
		LogFormat: "console",
		Workers:   runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := codec.ParseEncoding(c.Encoding); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", c.LogLevel, err)
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got '%s'", c.LogFormat)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	return nil
}

// WithEncoding sets the digest text encoding
func (c *Config) WithEncoding(enc string) *Config {
	c.Encoding = enc
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// WithLogFormat sets the log format
func (c *Config) WithLogFormat(format string) *Config {
	c.LogFormat = format
	return c
}

// WithWorkers sets the batch concurrency
func (c *Config) WithWorkers(n int) *Config {
	c.Workers = n
	return c
}

// WithConstantSeed sets the round constant seed
func (c *Config) WithConstantSeed(seed string) *Config {
	c.ConstantSeed = seed
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
