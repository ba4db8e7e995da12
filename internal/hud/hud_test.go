package hud

import (
	"context"
	"image/color"
	"strings"
	"testing"

	"cubeview/bootstrap"
	"cubeview/quarkgl"
)

func TestDrawLinesWritesText(t *testing.T) {
	tgt := quarkgl.NewRGBATarget(120, 40)
	bg := quarkgl.RGB(0x87, 0xce, 0xeb)
	tgt.Clear(bg)

	h := New()
	h.DrawLines(tgt, []string{"ready"})

	white := 0
	w, hh := tgt.Size()
	for y := 0; y < hh; y++ {
		for x := 0; x < w; x++ {
			if tgt.At(x, y) == quarkgl.RGB(0xff, 0xff, 0xff) {
				white++
			}
		}
	}
	if white == 0 {
		t.Fatalf("DrawLines() wrote no text pixels")
	}
	if got := tgt.At(w-1, hh-1); got != bg {
		t.Fatalf("At(%d, %d) = %v, want untouched %v", w-1, hh-1, got, bg)
	}
	if got := tgt.At(1, 1); got == bg {
		t.Fatalf("At(1, 1) = %v, want darkened panel", got)
	}
}

func TestSetPixelBlends(t *testing.T) {
	tgt := quarkgl.NewRGBATarget(1, 1)
	tgt.Clear(quarkgl.RGB(200, 100, 0))
	d := &targetDisplayer{t: tgt}

	d.SetPixel(0, 0, color.RGBA{})
	if got := tgt.At(0, 0); got != quarkgl.RGB(200, 100, 0) {
		t.Fatalf("At() = %v, want unchanged", got)
	}

	d.SetPixel(0, 0, color.RGBA{A: 0x80})
	if got := tgt.At(0, 0); got != quarkgl.RGB(99, 49, 0) {
		t.Fatalf("At() = %v, want %v", got, quarkgl.RGB(99, 49, 0))
	}
}

func TestLines(t *testing.T) {
	opts := bootstrap.DefaultOptions(bootstrap.StandardSource{Color: quarkgl.Hex(0xff0000)})
	sc, err := bootstrap.Initialize(context.Background(), bootstrap.Extent{Width: 8, Height: 8}, opts)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	sc.WaitLoads()
	sc.Frame()

	lines := Lines(sc)
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	if lines[0] != "material: ready" {
		t.Fatalf("Lines()[0] = %q, want %q", lines[0], "material: ready")
	}
	if !strings.HasPrefix(lines[1], "frame 1 ") {
		t.Fatalf("Lines()[1] = %q, want frame 1", lines[1])
	}
}
