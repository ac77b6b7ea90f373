// Package config loads a disassembly session profile from a TOML
// document.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/riscv-disasm/riscv"
)

// Config is a named disassembly profile plus display preferences, as
// read from a TOML document.
type Config struct {
	Profile struct {
		Name       string   `toml:"name"`
		XLEN       int      `toml:"xlen"`
		Extensions []string `toml:"extensions"`
	} `toml:"profile"`

	Display struct {
		BytesPerLine int    `toml:"bytes_per_line"`
		NumberFormat string `toml:"number_format"` // hex, decimal
		ShowBytes    bool   `toml:"show_bytes"`
	} `toml:"display"`
}

// Default returns the RV64GC-equivalent configuration: xlen 64, the
// full {I, M, A, F, D, C, Zicsr, Zicntr} extension set, and the display
// defaults the CLI listing uses when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Profile.Name = "rv64gc"
	cfg.Profile.XLEN = 64
	cfg.Profile.Extensions = []string{"i", "m", "a", "f", "d", "c", "zicsr", "zicntr"}
	cfg.Display.BytesPerLine = 16
	cfg.Display.NumberFormat = "hex"
	cfg.Display.ShowBytes = true
	return cfg
}

// Load reads and unmarshals a Config from path. A malformed document, an
// unknown extension name, or an xlen outside {32, 64} is a config-layer
// error — distinct from, and never surfaced as, a riscv.DecodeError.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Profile.XLEN != 32 && c.Profile.XLEN != 64 {
		return fmt.Errorf("config: unsupported xlen %d (must be 32 or 64)", c.Profile.XLEN)
	}
	if len(c.Profile.Extensions) == 0 {
		return fmt.Errorf("config: profile must list at least one extension")
	}
	for _, name := range c.Profile.Extensions {
		if _, err := riscv.ParseExtension(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	switch c.Display.NumberFormat {
	case "", "hex", "decimal":
	default:
		return fmt.Errorf("config: unknown number_format %q (want hex or decimal)", c.Display.NumberFormat)
	}
	return nil
}

// Profile resolves the loaded document into a riscv.Profile, the one
// place outside CLI flag parsing where a profile is built from
// free-form strings.
func (c *Config) Profile() (*riscv.Profile, error) {
	var ext riscv.Extensions
	for _, name := range c.Profile.Extensions {
		bit, err := riscv.ParseExtension(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		ext |= bit
	}
	return riscv.NewProfile(c.Profile.XLEN, ext)
}

// Save writes c to path as TOML, creating or truncating the file.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) // #nosec G304 -- caller-supplied config path
	if err != nil {
		return fmt.Errorf("config: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: failed to encode %s: %w", path, err)
	}
	return nil
}
