package window

import (
	"context"
	"testing"

	"cubeview/bootstrap"
	"cubeview/quarkgl"

	"go.uber.org/zap"
)

type size struct{ w, h int }

func newTestGame(t *testing.T) (*game, *bootstrap.SceneContext, *[]size) {
	t.Helper()
	opts := bootstrap.DefaultOptions(bootstrap.StandardSource{Color: quarkgl.Hex(0xff0000)})
	sc, err := bootstrap.Initialize(context.Background(), bootstrap.Extent{Width: 800, Height: 600}, opts)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	g := newGame(context.Background(), sc, nil, zap.NewNop())
	var calls []size
	g.resize = func(w, h int) {
		calls = append(calls, size{w, h})
		sc.Resize(w, h)
	}
	return g, sc, &calls
}

func TestLayoutResizesOncePerChange(t *testing.T) {
	g, sc, calls := newTestGame(t)

	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Fatalf("Layout(800, 600) = %d, %d, want 800, 600", w, h)
	}
	if len(*calls) != 0 {
		t.Fatalf("resize calls = %v, want none for an unchanged size", *calls)
	}

	g.Layout(1024, 512)
	g.Layout(1024, 512)
	if len(*calls) != 1 || (*calls)[0] != (size{1024, 512}) {
		t.Fatalf("resize calls = %v, want [{1024 512}]", *calls)
	}
	if sc.Camera.Aspect != 2 {
		t.Fatalf("Aspect = %v, want 2", sc.Camera.Aspect)
	}
	if w, h := sc.Surface.Size(); w != 1024 || h != 512 {
		t.Fatalf("Surface.Size() = %d, %d, want 1024, 512", w, h)
	}
}

func TestLayoutIgnoresZeroSize(t *testing.T) {
	g, sc, calls := newTestGame(t)

	for _, s := range []size{{0, 0}, {0, 600}, {800, 0}} {
		if w, h := g.Layout(s.w, s.h); w != 800 || h != 600 {
			t.Fatalf("Layout(%d, %d) = %d, %d, want 800, 600", s.w, s.h, w, h)
		}
	}
	if len(*calls) != 0 {
		t.Fatalf("resize calls = %v, want none", *calls)
	}
	if w, h := sc.Surface.Size(); w != 800 || h != 600 {
		t.Fatalf("Surface.Size() = %d, %d, want 800, 600", w, h)
	}
}
