// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the settings of a marker host, saved as TOML.
package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the user settings for displaying markers.
type Settings struct {

	// Visible is the initial state of the master switch of a host.
	Visible bool `toml:"visible"`

	// HiddenNamespaces are namespaces whose toggle starts switched off
	// when a host first sees them. All other namespaces start visible.
	HiddenNamespaces []string `toml:"hidden_namespaces"`

	// FixedFrame is the fixed frame of the renderer; empty means the
	// common frame of the scene.
	FixedFrame string `toml:"fixed_frame"`

	// LogLevel is the minimum level of log messages: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Defaults returns the default settings.
func Defaults() *Settings {
	return &Settings{Visible: true, LogLevel: "info"}
}

// NamespaceVisible returns the initial visibility of the toggle for ns.
func (s *Settings) NamespaceVisible(ns string) bool {
	return !slices.Contains(s.HiddenNamespaces, ns)
}

// SlogLevel returns the [slog.Level] named by LogLevel,
// logging an error and returning [slog.LevelInfo] if it is invalid.
func (s *Settings) SlogLevel() slog.Level {
	var lv slog.Level
	if s.LogLevel == "" {
		return slog.LevelInfo
	}
	if err := lv.UnmarshalText([]byte(strings.ToUpper(s.LogLevel))); err != nil {
		errors.Log(fmt.Errorf("config: invalid log level %q: %w", s.LogLevel, err))
		return slog.LevelInfo
	}
	return lv
}

// Open reads settings from the given TOML file into s. Fields that are
// not in the file keep their current values. A file that does not exist
// is not an error.
func (s *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
