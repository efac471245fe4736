// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the optional configuration file: locating it,
// decoding YAML or TOML content, and validating the settings it carries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"string-sorter/internal/logger"
	"string-sorter/internal/sortkey"
)

// Config represents the top-level application configuration
type Config struct {
	// Key names the ordering policy (see sortkey.Names)
	Key string `yaml:"key,omitempty" toml:"key"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level"`

	// LogFormat is json or text
	LogFormat string `yaml:"log_format,omitempty" toml:"log_format"`

	// LogToFile enables the XDG state log file
	LogToFile bool `yaml:"log_to_file,omitempty" toml:"log_to_file"`

	// LogFile overrides the log file location (may start with "~/")
	LogFile string `yaml:"log_file,omitempty" toml:"log_file"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	return Config{
		Key:       sortkey.Default,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "string-sorter", "config.yaml"), nil
}

// LoadConfig reads the file at path, or the default location when path is
// empty. A missing default file yields Default(); a missing explicit file is
// an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes path on top of Default(). Files ending in .toml are read
// as TOML, everything else as YAML.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a fixed set of values.
func (c Config) Validate() error {
	if _, err := sortkey.Lookup(c.Key); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format %q (valid: json, text)", c.LogFormat)
	}
	return nil
}

// LoggerOptions maps the logging fields onto logger.Options.
func (c Config) LoggerOptions() (logger.Options, error) {
	file, err := ResolvePath(c.LogFile)
	if err != nil {
		return logger.Options{}, err
	}
	return logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		File:   file,
		ToFile: c.LogToFile,
	}, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
