// Package calcconfig loads bigcalc's configuration file, a small TOML
// document that sets the default working precision and rounding mode.
// Adapted from lookbusy1344-arm_emulator's config package: same
// DefaultConfig/Load/LoadFrom/GetConfigPath shape, pared down to the two
// settings bigcalc actually needs.
package calcconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

// Config holds bigcalc's default precision and rounding mode.
type Config struct {
	Calc struct {
		Precision int64  `toml:"precision"`
		Rounding  string `toml:"rounding"`
	} `toml:"calc"`
}

// DefaultConfig returns a Config with bigcalc's built-in defaults: 34
// significant digits (decimal128's conventional working precision) and
// banker's rounding.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Calc.Precision = 34
	cfg.Calc.Rounding = "half_even"
	return cfg
}

// GetConfigPath returns the default config file location,
// ~/.config/bigcalc/config.toml, falling back to the current directory
// if the home directory cannot be determined.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "bigcalc.toml"
	}
	return filepath.Join(homeDir, ".config", "bigcalc", "config.toml")
}

// Load loads configuration from the default config file, returning
// DefaultConfig() unmodified if no file exists there.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("calcconfig: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// roundingModes maps calcconfig's TOML names to bigdecimal.RoundingMode,
// grounded on SPEC_FULL.md's 9-mode rounding vocabulary.
var roundingModes = map[string]bigdecimal.RoundingMode{
	"half_even": bigdecimal.HalfEven,
	"half_up":   bigdecimal.HalfUp,
	"half_down": bigdecimal.HalfDown,
	"down":      bigdecimal.Down,
	"up":        bigdecimal.Up,
	"floor":     bigdecimal.Floor,
	"ceiling":   bigdecimal.Ceiling,
	"round05up": bigdecimal.Round05Up,
	"half_odd":  bigdecimal.HalfOdd,
}

// RoundingMode resolves the configured rounding name, defaulting to
// HalfEven for an empty or unrecognized value.
func (c *Config) RoundingMode() bigdecimal.RoundingMode {
	if mode, ok := roundingModes[c.Calc.Rounding]; ok {
		return mode
	}
	return bigdecimal.HalfEven
}

// Precision returns the configured working precision, defaulting to 34
// if unset or non-positive.
func (c *Config) Precision() int64 {
	if c.Calc.Precision <= 0 {
		return 34
	}
	return c.Calc.Precision
}
