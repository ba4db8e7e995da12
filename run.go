package main

import (
	"context"
	"fmt"

	"cubeview/assets"
	"cubeview/bootstrap"
	"cubeview/internal/buildinfo"
	"cubeview/internal/config"
	"cubeview/internal/headless"
	"cubeview/internal/hud"
	"cubeview/internal/logging"
	"cubeview/internal/window"
	"cubeview/loader"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func run(ctx context.Context, v *viper.Viper, configFile string) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Version: buildinfo.Short(),
	})
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	l := loader.New(
		loader.WithRoot(cfg.Loader.Root),
		loader.WithEmbedded(assets.FS),
		loader.WithRetries(cfg.Loader.Retries),
		loader.WithTimeout(cfg.Loader.Timeout),
		loader.WithLogger(log.Named("loader")),
	)

	opts, err := sceneOptions(cfg, l)
	if err != nil {
		return err
	}
	opts.Log = log.Named("scene")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sc, err := bootstrap.Initialize(ctx, bootstrap.Extent{Width: cfg.Window.Width, Height: cfg.Window.Height}, opts)
	if err != nil {
		return err
	}

	if cfg.Material.Watch {
		if err := startWatch(ctx, sc, l, cfg, log); err != nil {
			return err
		}
	}

	var overlay func(*bootstrap.SceneContext)
	if cfg.HUD {
		overlay = hud.New().Draw
	}

	if cfg.Headless.Enabled {
		return headless.Run(ctx, sc, headless.Config{
			Hz:        cfg.Headless.Hz,
			Frames:    cfg.Headless.Frames,
			Snapshot:  cfg.Headless.Snapshot,
			WaitReady: cfg.Headless.Snapshot != "",
			Overlay:   overlay,
		}, log.Named("headless"))
	}
	return window.Run(ctx, sc, window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		Overlay:   overlay,
	}, log.Named("window"))
}

// startWatch reloads the shader material when its local source files change.
func startWatch(ctx context.Context, sc *bootstrap.SceneContext, l *loader.Loader, cfg *config.Config, log *zap.Logger) error {
	if cfg.Material.Mode != config.MaterialShader {
		log.Warn("material.watch ignored outside shader mode", zap.String("mode", cfg.Material.Mode))
		return nil
	}
	vp, vok := l.LocalPath(cfg.Material.VertexURL)
	fp, fok := l.LocalPath(cfg.Material.FragmentURL)
	if !vok || !fok {
		log.Warn("material.watch needs local shader files",
			zap.String("vertex_url", cfg.Material.VertexURL),
			zap.String("fragment_url", cfg.Material.FragmentURL))
		return nil
	}
	w, err := loader.NewWatcher(log.Named("watch"), vp, fp)
	if err != nil {
		return fmt.Errorf("failed to watch shaders: %w", err)
	}
	go func() {
		if err := sc.WatchMaterial(ctx, w); err != nil && ctx.Err() == nil {
			log.Error("shader watcher stopped", zap.Error(err))
		}
	}()
	return nil
}
