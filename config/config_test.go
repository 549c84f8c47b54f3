// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/solview/soltab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	s := Defaults()
	s.Solset = "sol001"
	s.RefAntenna = "CS002HBA0"
	s.WrapPhase = false
	s.Abscissa = "waterfall"
	for _, fn := range []string{"settings.toml", "settings.yaml", "settings.yml"} {
		path := filepath.Join(dir, fn)
		require.NoError(t, s.Save(path))
		got, err := Open(path)
		require.NoError(t, err, fn)
		assert.Equal(t, s, got, fn)
	}
}

func TestOpenPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("refant = \"RS106HBA\"\nmode = \"weights\"\n"), 0666))
	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "RS106HBA", s.RefAntenna)
	assert.Equal(t, "weights", s.Mode)
	assert.True(t, s.WrapPhase)
	assert.Equal(t, "time", s.Abscissa)

	path = filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0666))
	s, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Open(filepath.Join(dir, "settings.json"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("abscissa = \"sideways\"\n"), 0666))
	_, err = Open(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "badlevel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0666))
	_, err = Open(path)
	assert.Error(t, err)
}

func TestSelection(t *testing.T) {
	s := Defaults()
	sel, err := s.Selection()
	require.NoError(t, err)
	assert.Equal(t, soltab.DefaultSelection(), sel)

	s.Abscissa = "FREQ"
	s.Mode = "weights"
	s.WrapPhase = false
	sel, err = s.Selection()
	require.NoError(t, err)
	assert.Equal(t, soltab.AbscissaFreq, sel.Abscissa)
	assert.Equal(t, soltab.ModeWeights, sel.Mode)
	assert.False(t, sel.WrapPhase)

	s.Mode = "phases"
	_, err = s.Selection()
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	s := Defaults()
	lv, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lv)
	s.LogLevel = "debug"
	lv, err = s.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)
}
