// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads fxstats settings from defaults, an optional
// YAML file, FXSTATS_ environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/biogo/fxstats/metrics"
)

const (
	configName = ".fxstats"
	configType = "yaml"
	envPrefix  = "FXSTATS"
)

// Output modes.
const (
	ModeTable    = "table"
	ModeCSV      = "csv"
	ModeParsable = "parsable"
)

// Defaults.
const (
	DefaultQualityOffset = 33
	DefaultMode          = ModeTable
)

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid configuration")
)

// Config holds the settings of one run.
type Config struct {
	MinSize       int    `mapstructure:"min_size"`
	GenomeSize    int64  `mapstructure:"genome_size"`
	QualityOffset int    `mapstructure:"quality_offset"`
	PerSeq        string `mapstructure:"per_seq"`
	Plot          string `mapstructure:"plot"`

	Output Output `mapstructure:"output"`
	Log    Log    `mapstructure:"log"`
}

// Output selects how results are rendered.
type Output struct {
	Mode     string `mapstructure:"mode"`
	Fields   string `mapstructure:"fields"`
	NoHeader bool   `mapstructure:"no_header"`
}

// Log configures the logger.
type Log struct {
	Debug bool `mapstructure:"debug"`
	Human bool `mapstructure:"human"`
}

// New returns a viper instance with defaults and environment
// binding set up.
func New() *viper.Viper {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("min_size", 0)
	v.SetDefault("genome_size", 0)
	v.SetDefault("quality_offset", DefaultQualityOffset)
	v.SetDefault("per_seq", "")
	v.SetDefault("plot", "")
	v.SetDefault("output.mode", DefaultMode)
	v.SetDefault("output.fields", "")
	v.SetDefault("output.no_header", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.human", false)
}

// Load reads the config file into a validated Config. If path is
// empty, .fxstats.yaml is searched for in the working directory and
// then the home directory, and a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.MinSize < 0 {
		return fmt.Errorf("%w: negative minimum size %d", ErrInvalid, c.MinSize)
	}
	if c.QualityOffset < 0 || c.QualityOffset > '~' {
		return fmt.Errorf("%w: quality offset %d out of range", ErrInvalid, c.QualityOffset)
	}
	switch c.Output.Mode {
	case ModeTable, ModeCSV, ModeParsable:
	default:
		return fmt.Errorf("%w: unknown output mode %q", ErrInvalid, c.Output.Mode)
	}
	if c.Output.Mode != ModeParsable {
		if c.Output.Fields != "" {
			return fmt.Errorf("%w: output fields require parsable mode", ErrInvalid)
		}
		if c.Output.NoHeader {
			return fmt.Errorf("%w: no_header requires parsable mode", ErrInvalid)
		}
	}
	if c.Output.NoHeader && c.Output.Fields == "" {
		return fmt.Errorf("%w: no_header requires output fields", ErrInvalid)
	}
	if c.Output.Fields != "" {
		if _, err := c.Fields(); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns the parsable output fields, the whole catalog when
// none were configured.
func (c *Config) Fields() ([]metrics.Field, error) {
	if c.Output.Fields == "" {
		return metrics.Fields(), nil
	}
	return metrics.ParseFields(c.Output.Fields)
}
