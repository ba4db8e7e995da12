package main

import (
	"fmt"

	"cubeview/bootstrap"
	"cubeview/internal/config"
	"cubeview/quarkgl"
)

// sceneOptions maps the configuration onto bootstrap options.
func sceneOptions(cfg *config.Config, l bootstrap.TextLoader) (bootstrap.Options, error) {
	var src bootstrap.MaterialSource
	switch cfg.Material.Mode {
	case config.MaterialStandard, config.MaterialWireframe:
		c, err := quarkgl.ParseColor(cfg.Material.Color)
		if err != nil {
			return bootstrap.Options{}, &bootstrap.ConfigurationError{Reason: fmt.Sprintf("material.color: %v", err)}
		}
		src = bootstrap.StandardSource{Color: c, Wireframe: cfg.Material.Mode == config.MaterialWireframe}
	default:
		src = bootstrap.ShaderSource{
			Loader:      l,
			VertexURL:   cfg.Material.VertexURL,
			FragmentURL: cfg.Material.FragmentURL,
		}
	}

	bg, err := quarkgl.ParseColor(cfg.Scene.Background)
	if err != nil {
		return bootstrap.Options{}, &bootstrap.ConfigurationError{Reason: fmt.Sprintf("scene.background: %v", err)}
	}

	opts := bootstrap.DefaultOptions(src)
	opts.Background = bg
	opts.Helpers = cfg.Scene.Helpers
	opts.FOVYDeg = quarkgl.Scalar(cfg.Camera.FOV)
	opts.Near = quarkgl.Scalar(cfg.Camera.Near)
	opts.Far = quarkgl.Scalar(cfg.Camera.Far)
	if p := cfg.Camera.Position; len(p) == 3 {
		opts.CameraPosition = quarkgl.V3(quarkgl.Scalar(p[0]), quarkgl.Scalar(p[1]), quarkgl.Scalar(p[2]))
	}
	opts.GammaOutput = cfg.Renderer.GammaOutput
	opts.GammaFactor = quarkgl.Scalar(cfg.Renderer.GammaFactor)
	opts.PhysicallyCorrectLights = cfg.Renderer.PhysicallyCorrectLights
	return opts, nil
}
