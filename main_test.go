package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cof/config"
)

func TestWriteConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cof.json")
	cfg := config.DefaultConfig()
	cfg.Keyboard.PortFilter = "keystep"
	require.NoError(t, writeConfig(cfg, path))

	loaded, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteConfigDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.DefaultConfig()
	cfg.UI.WheelRadius = 12
	require.NoError(t, writeConfig(cfg, ""))

	loaded, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.UI.WheelRadius)
}
