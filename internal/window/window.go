// Package window shows a bootstrap scene in a desktop window.
package window

import (
	"context"

	"cubeview/bootstrap"
	"cubeview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Config controls the window.
type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// Overlay draws on top of each rendered frame. Optional.
	Overlay func(sc *bootstrap.SceneContext)
}

// Run opens the window and drives sc until the window closes or ctx is done.
// It must be called from the main goroutine.
func Run(ctx context.Context, sc *bootstrap.SceneContext, cfg Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	title := cfg.Title
	if title == "" {
		title = "cubeview"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := newGame(ctx, sc, cfg.Overlay, log)

	log.Info("window opened", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		err = nil
	}
	log.Info("window closed", zap.Error(err))
	return err
}

type game struct {
	ctx     context.Context
	sc      *bootstrap.SceneContext
	overlay func(*bootstrap.SceneContext)
	log     *zap.Logger

	// resize is called from Layout when the window size changes.
	resize func(w, h int)

	input orbitInput
	w, h  int
	img   *ebiten.Image
}

func newGame(ctx context.Context, sc *bootstrap.SceneContext, overlay func(*bootstrap.SceneContext), log *zap.Logger) *game {
	g := &game{ctx: ctx, sc: sc, overlay: overlay, log: log, resize: sc.Resize}
	g.w, g.h = sc.Surface.Size()
	return g
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.sc.RunPending()

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	p := Pointer{
		X:     x,
		Y:     y,
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Wheel: wheel,
	}
	if g.input.apply(p, g.h, g.sc.Controls, g.sc.Camera) {
		g.sc.Controls.Apply(g.sc.Camera)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sc.Frame()
	if g.overlay != nil {
		g.overlay(g.sc)
	}

	w, h := g.sc.Surface.Size()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(g.sc.Surface.Pix())
	screen.DrawImage(g.img, nil)
}

// Layout follows the window size one to one and resizes the scene when it
// changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		if outsideWidth > 0 && outsideHeight > 0 {
			g.log.Debug("window resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
			g.resize(outsideWidth, outsideHeight)
			g.w, g.h = outsideWidth, outsideHeight
		}
	}
	return g.w, g.h
}
