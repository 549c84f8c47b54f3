// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the user settings of the solution viewer,
// saved as TOML or YAML.
package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/solview/base/errors"
	"cogentcore.org/solview/base/iox/tomlx"
	"cogentcore.org/solview/base/iox/yamlx"
	"cogentcore.org/solview/base/logx"
	"cogentcore.org/solview/soltab"
	"github.com/mitchellh/go-homedir"
)

// DefaultFile is the settings file read when none is given.
const DefaultFile = "~/.config/solview/settings.toml"

// Settings are the user settings of the viewer.
type Settings struct {

	// the solution set opened at startup; empty opens the first one
	Solset string `toml:"solset" yaml:"solset"`

	// the table selected at startup; empty selects the first one
	Table string `toml:"table" yaml:"table"`

	// the name of the reference antenna for phases; empty uses the first antenna
	RefAntenna string `toml:"refant" yaml:"refant"`

	// whether to wrap phases into [-π, π)
	WrapPhase bool `toml:"wrap_phase" yaml:"wrap_phase"`

	// the plot axis: time, freq or waterfall
	Abscissa string `toml:"abscissa" yaml:"abscissa"`

	// what to plot: values or weights
	Mode string `toml:"mode" yaml:"mode"`

	// the log level: debug, info, warn or error
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		WrapPhase: true,
		Abscissa:  "time",
		Mode:      "values",
		LogLevel:  "info",
	}
}

// Open returns the settings in the given TOML or YAML file, with
// defaults for anything the file does not set. A leading ~ in the
// filename is expanded to the home directory.
func Open(filename string) (*Settings, error) {
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	s := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = tomlx.Open(s, path)
	case ".yaml", ".yml":
		err = yamlx.Open(s, path)
	default:
		return nil, fmt.Errorf("config: unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return s, s.Validate()
}

// OpenDefault returns the settings in [DefaultFile],
// or the defaults if that file does not exist.
func OpenDefault() (*Settings, error) {
	s, err := Open(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config: no settings file, using defaults", "file", DefaultFile)
		return Defaults(), nil
	}
	return s, err
}

// Save writes the settings to the given TOML or YAML file.
func (s *Settings) Save(filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return tomlx.Save(s, path)
	case ".yaml", ".yml":
		return yamlx.Save(s, path)
	default:
		return fmt.Errorf("config: unsupported settings file extension %q", ext)
	}
}

// Validate returns an error for settings that cannot be applied.
func (s *Settings) Validate() error {
	_, err := s.Selection()
	if err != nil {
		return err
	}
	_, err = s.Level()
	return err
}

// Level returns the log level.
func (s *Settings) Level() (slog.Level, error) {
	return logx.LevelFromString(s.LogLevel)
}

// Selection returns the initial selection described by the settings.
// The reference antenna is given by name and is resolved by the viewer.
func (s *Settings) Selection() (soltab.Selection, error) {
	sel := soltab.DefaultSelection()
	sel.WrapPhase = s.WrapPhase
	if s.Abscissa != "" {
		if err := sel.Abscissa.SetString(s.Abscissa); err != nil {
			return sel, err
		}
	}
	if s.Mode != "" {
		if err := sel.Mode.SetString(s.Mode); err != nil {
			return sel, err
		}
	}
	return sel, nil
}
