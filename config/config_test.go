package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdex/config"
)

// TestLoad_Default verifies the empty path yields the defaults.
func TestLoad_Default(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestLoad_File decodes a full configuration file.
func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "lvdex.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "../catalog/testdata/kanto.yaml", cfg.Data)
}

// TestLoad_Errors covers missing files and unknown keys.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join("testdata", "typo.yaml"))
	assert.Error(t, err)
}
