// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the vecmat command.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Byte order names accepted in the config file and on the command line.
const (
	OrderNative = "native"
	OrderLittle = "little"
	OrderBig    = "big"
)

// EnvByteOrder overrides byte_order when set.
const EnvByteOrder = "VECMAT_BYTE_ORDER"

// ErrUnknownByteOrder is returned for a byte_order outside native|little|big.
var ErrUnknownByteOrder = errors.New("config: unknown byte order")

// Config is the on-disk configuration.
type Config struct {
	Verbose   bool   `yaml:"verbose"`
	ByteOrder string `yaml:"byte_order"` // native, little, big
	Mmap      bool   `yaml:"mmap"`       // read matrices through LoadMapped
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{ByteOrder: OrderNative}
}

// Load reads configuration from a YAML file.
// An empty path or a missing file yields the defaults; environment
// overrides apply in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if _, err := cfg.Order(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvByteOrder); v != "" {
		c.ByteOrder = v
	}
}

// Order resolves ByteOrder to a binary.ByteOrder. An empty name means native.
func (c *Config) Order() (binary.ByteOrder, error) {
	return ParseByteOrder(c.ByteOrder)
}

// ParseByteOrder maps a byte order name (case-insensitive) to its binary.ByteOrder.
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", OrderNative:
		return binary.NativeEndian, nil
	case OrderLittle:
		return binary.LittleEndian, nil
	case OrderBig:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, name)
	}
}
