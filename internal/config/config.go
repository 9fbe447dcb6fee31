// Package config provides configuration types and defaults for the measure
// command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/xraph/measure/internal/eval"
	"github.com/xraph/measure/si"
)

// EnvPrefix is prepended to environment variable names, e.g.
// MEASURE_OUTPUT=json.
const EnvPrefix = "MEASURE"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds all configuration options for measure.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	Output    string `mapstructure:"output"`
	Precision int    `mapstructure:"precision"` // decimals in text output; negative = shortest

	// PreferredUnits maps a dimension name to the unit abbreviation results
	// of that dimension are converted to, e.g. {"velocity": "km/h"}.
	PreferredUnits map[string]string `mapstructure:"preferred_units"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LogLevel:  "warn",
		Output:    OutputText,
		Precision: -1,
	}
}

// SetDefaults registers Defaults with v so that env and flag overrides
// resolve against them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output", d.Output)
	v.SetDefault("precision", d.Precision)
}

// Load reads configuration from path (if non-empty), the environment and
// whatever flags are already bound to v.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration for errors.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output: unknown format %q (want text, json or yaml)", c.Output))
	}

	for dim, abbr := range c.PreferredUnits {
		owner, ok := eval.UnitDimension(abbr)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("preferred_units.%s: %w %q", dim, si.ErrUnknownUnit, abbr))
		case string(owner) != dim:
			errs = append(errs, fmt.Errorf("preferred_units.%s: %q is a %s unit: %w", dim, abbr, owner, si.ErrDimensionMismatch))
		}
	}

	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// PreferredUnit returns the configured unit for dim.
func (c Config) PreferredUnit(dim si.Dimension) (string, bool) {
	abbr, ok := c.PreferredUnits[string(dim)]
	return abbr, ok && abbr != ""
}
