package main

import (
	"bytes"
	"errors"
	"testing"

	"cubeview/bootstrap"
	"cubeview/internal/config"
	"cubeview/loader"
	"cubeview/quarkgl"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	return cfg
}

func TestSceneOptionsDefaults(t *testing.T) {
	l := loader.New()
	opts, err := sceneOptions(defaultConfig(t), l)
	require.NoError(t, err)

	src, ok := opts.Material.(bootstrap.ShaderSource)
	require.True(t, ok, "material = %T", opts.Material)
	assert.Equal(t, "embed:shader/vertex.expr", src.VertexURL)
	assert.Equal(t, "embed:shader/fragment.expr", src.FragmentURL)
	assert.Same(t, l, src.Loader)

	assert.Equal(t, quarkgl.Hex(0x87ceeb), opts.Background)
	assert.True(t, opts.Helpers)
	assert.Equal(t, quarkgl.Scalar(35), opts.FOVYDeg)
	assert.InDelta(t, 0.1, float64(opts.Near), 1e-6)
	assert.Equal(t, quarkgl.Scalar(1000), opts.Far)
	assert.Equal(t, quarkgl.V3(2, 1, 5), opts.CameraPosition)
	assert.InDelta(t, 2.2, float64(opts.GammaFactor), 1e-6)
	assert.True(t, opts.GammaOutput)
	assert.True(t, opts.PhysicallyCorrectLights)
}

func TestSceneOptionsWireframe(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Material.Mode = config.MaterialWireframe

	opts, err := sceneOptions(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.StandardSource{Color: quarkgl.Hex(0xff0000), Wireframe: true}, opts.Material)
}

func TestSceneOptionsBadColor(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Scene.Background = "not-a-color"

	_, err := sceneOptions(cfg, nil)
	var ce *bootstrap.ConfigurationError
	assert.True(t, errors.As(err, &ce), "err = %v", err)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cubeview ")
}
