// Package headless drives a bootstrap scene on a ticker without a window.
package headless

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"cubeview/bootstrap"

	"go.uber.org/zap"
)

// Config controls the no-window runner.
type Config struct {
	Hz int
	// Frames stops the loop after that many frames; 0 runs until ctx is done.
	Frames uint64
	// Snapshot, if set, is the PNG file the last frame is written to.
	Snapshot string
	// WaitReady delays the first frame until the cube material has resolved
	// or failed.
	WaitReady bool

	// Overlay draws on top of each rendered frame. Optional.
	Overlay func(sc *bootstrap.SceneContext)
}

// Run renders frames at cfg.Hz until cfg.Frames is reached or ctx is done.
func Run(ctx context.Context, sc *bootstrap.SceneContext, cfg Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	if cfg.WaitReady && sc.Pending != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sc.Pending.Done():
		}
		sc.WaitLoads()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	log.Info("headless loop started", zap.Int("hz", cfg.Hz), zap.Uint64("frames", cfg.Frames))
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			if err := snapshot(sc, cfg.Snapshot, frame, log); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			sc.Frame()
			if cfg.Overlay != nil {
				cfg.Overlay(sc)
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				log.Info("headless loop finished", zap.Uint64("frames", frame))
				return snapshot(sc, cfg.Snapshot, frame, log)
			}
		}
	}
}

func snapshot(sc *bootstrap.SceneContext, path string, frames uint64, log *zap.Logger) error {
	if path == "" || frames == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, sc.Surface.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	log.Info("snapshot written", zap.String("path", path))
	return nil
}
