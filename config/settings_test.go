// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.True(t, s.Visible)
	assert.True(t, s.NamespaceVisible("anything"))
	assert.Equal(t, slog.LevelInfo, s.SlogLevel())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "markers.toml")
	data := `visible = false
hidden_namespaces = ["debug", "collision"]
log_level = "warn"
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))

	s := Defaults()
	require.NoError(t, s.Open(fn))
	assert.False(t, s.Visible)
	assert.False(t, s.NamespaceVisible("debug"))
	assert.True(t, s.NamespaceVisible("goals"))
	assert.Equal(t, slog.LevelWarn, s.SlogLevel())
	assert.Equal(t, "", s.FixedFrame)
}

func TestOpenMissing(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Open(filepath.Join(t.TempDir(), "none.toml")))
	assert.Equal(t, Defaults(), s)
}

func TestOpenInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("visible = = 1"), 0666))
	assert.Error(t, Defaults().Open(fn))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "markers.toml")
	s := Defaults()
	s.HiddenNamespaces = []string{"a"}
	s.FixedFrame = "odom"
	require.NoError(t, s.Save(fn))

	o := &Settings{}
	require.NoError(t, o.Open(fn))
	assert.Equal(t, s, o)
}

func TestInvalidLevel(t *testing.T) {
	s := &Settings{LogLevel: "loud"}
	assert.Equal(t, slog.LevelInfo, s.SlogLevel())
}
