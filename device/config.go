// SPDX-License-Identifier: MIT
// Package device: configuration and its YAML loader.

package device

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultMemoryMB is the device memory budget when none is configured.
	DefaultMemoryMB = 1024

	// bytesPerMB converts the configured budget into accounted bytes.
	bytesPerMB = 1 << 20
)

// Config tunes the emulated device. The zero value is valid: Workers
// defaults to the host's logical core count and MemoryMB to DefaultMemoryMB.
type Config struct {
	// Workers is the data-parallel width kernels shard across.
	// 0 means "use every logical core".
	Workers int `yaml:"workers"`

	// MemoryMB is the device memory budget in mebibytes.
	// 0 means DefaultMemoryMB.
	MemoryMB int64 `yaml:"memory_mb"`
}

// LoadConfig reads a YAML device configuration from path. Unknown fields are
// rejected so a typo in a tuning file fails loudly instead of being ignored.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("device: read config %q: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("device: parse config %q: %w", path, err)
	}

	return cfg, nil
}
