package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, MaterialShader, cfg.Material.Mode)
	assert.Equal(t, "embed:shader/vertex.expr", cfg.Material.VertexURL)
	assert.Equal(t, []float64{2, 1, 5}, cfg.Camera.Position)
	assert.Equal(t, 35.0, cfg.Camera.FOV)
	assert.Zero(t, cfg.Loader.Retries)
	assert.Zero(t, cfg.Loader.Timeout)
	assert.True(t, cfg.Scene.Helpers)
	assert.False(t, cfg.HUD)
}

func TestLoadFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cubeview.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
window:
  width: 1024
material:
  mode: standard
loader:
  timeout: 3s
`), 0o644))
	t.Setenv("CUBEVIEW_WINDOW_HEIGHT", "768")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, MaterialStandard, cfg.Material.Mode)
	assert.Equal(t, "3s", cfg.Loader.Timeout.String())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":    func(c *Config) { c.Window.Width = 0 },
		"bad mode":      func(c *Config) { c.Material.Mode = "toon" },
		"near past far": func(c *Config) { c.Camera.Near = 10; c.Camera.Far = 1 },
		"short pos":     func(c *Config) { c.Camera.Position = []float64{1, 2} },
		"no urls":       func(c *Config) { c.Material.VertexURL = "" },
		"neg retries":   func(c *Config) { c.Loader.Retries = -1 },
	}
	for name, mutate := range cases {
		cfg, err := Load(viper.New(), "")
		require.NoError(t, err)
		mutate(cfg)
		err = cfg.Validate()
		assert.True(t, errors.Is(err, ErrInvalid), "%s: err = %v", name, err)
	}
}
