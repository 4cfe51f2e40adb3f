// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML
// Author:      idmagic
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/idmagic/comnum/foundation/core/errors"
	mdwlog "github.com/idmagic/comnum/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "COMNUM_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Demo    DemoConfig    `toml:"demo" yaml:"demo"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DisplayConfig controls how results are printed
type DisplayConfig struct {
	Styled bool `toml:"styled" yaml:"styled"`
	// Precision rounds printed results; -1 prints the shortest form
	Precision int `toml:"precision" yaml:"precision"`
}

// Operand is a complex operand given as separate parts
type Operand struct {
	Real float64 `toml:"real" yaml:"real"`
	Imag float64 `toml:"imag" yaml:"imag"`
}

// DemoConfig holds the operands of the demonstration scenario
type DemoConfig struct {
	A               Operand `toml:"a" yaml:"a"`
	B               Operand `toml:"b" yaml:"b"`
	Exponents       []int   `toml:"exponents" yaml:"exponents"`
	InvalidExponent float64 `toml:"invalid_exponent" yaml:"invalid_exponent"`
	RoundDigits     int     `toml:"round_digits" yaml:"round_digits"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Display: DisplayConfig{
			Styled:    true,
			Precision: -1,
		},
		Demo: DemoConfig{
			A:               Operand{Real: 1, Imag: 2},
			B:               Operand{Real: 3, Imag: -4},
			Exponents:       []int{4, -3},
			InvalidExponent: 1.5465787,
			RoundDigits:     5,
		},
	}
}

// Load reads the configuration file at path. The format follows the file
// extension: .yaml and .yml are YAML, everything else is TOML. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.Path = path

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by COMNUM_CONFIG, or the first existing
// default location. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Resolve loads an explicitly given path, falling back to LoadFromEnv
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	return LoadFromEnv()
}

// DefaultPaths lists the locations searched when no path is configured
func DefaultPaths() []string {
	paths := []string{
		"./configs/comnum.toml",
		"./comnum.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "comnum", "config.toml"))
	}
	return paths
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.InvalidInput(errors.ModuleConfig, "decode", undecoded[0].String(), "known configuration key")
		}
		return nil
	}
}

// applyDefaults fills values the file set to their zero value where zero is
// not meaningful
func (c *Config) applyDefaults() {
	def := Default()

	if c.General.LogLevel == "" {
		c.General.LogLevel = def.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = def.General.LogFormat
	}
	if len(c.Demo.Exponents) == 0 {
		c.Demo.Exponents = def.Demo.Exponents
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return errors.ConfigInvalid("general.log_level", c.General.LogLevel, "expected trace, debug, info, warn or error")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return errors.ConfigInvalid("general.log_format", c.General.LogFormat, "expected json, text, logfmt or console")
	}
	if c.Display.Precision < -1 {
		return errors.ConfigInvalid("display.precision", c.Display.Precision, "must be -1 or greater")
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() mdwlog.Level {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() mdwlog.Format {
	format, _ := mdwlog.ParseFormat(c.General.LogFormat)
	return format
}
