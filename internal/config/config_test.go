package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Statement.Year = 2026
	cfg.OCR.Language = "msa"
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "tngwallet.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2026, got.Statement.Year)
	assert.True(t, got.OCR.Enabled)
	assert.Equal(t, "msa", got.OCR.Language)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, "console", got.Log.Format)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2025, cfg.Statement.Year)
	assert.True(t, cfg.OCR.Enabled)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tngwallet.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "year: 2025")
	assert.Contains(t, contents, "enabled: true")
	assert.Contains(t, contents, "language: eng")
	assert.Contains(t, contents, "level: info")
}
