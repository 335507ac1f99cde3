package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config describes the shape of an emulator core.
type Config struct {
	// XLEN is the register width in bits: 16, 32, 64 or 128.
	// Default: 32.
	XLEN uint `json:"xlen"`

	// MemoryBytes is the memory capacity in bytes.
	// Default: 64 KiB.
	MemoryBytes uint64 `json:"memory_bytes"`
}

// DefaultConfig returns an RV32 configuration with 64 KiB of memory.
func DefaultConfig() *Config {
	return &Config{
		XLEN:        32,
		MemoryBytes: 64 * 1024,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read core config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse core config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize core config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write core config file: %w", err)
	}

	return nil
}

// Validate checks that the width is supported and the memory is non-empty.
func (c *Config) Validate() error {
	switch c.XLEN {
	case 16, 32, 64, 128:
	default:
		return fmt.Errorf("xlen must be one of 16, 32, 64, 128; got %d", c.XLEN)
	}
	if c.MemoryBytes == 0 {
		return fmt.Errorf("memory_bytes must be > 0")
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	return &Config{
		XLEN:        c.XLEN,
		MemoryBytes: c.MemoryBytes,
	}
}
