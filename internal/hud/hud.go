// Package hud draws a small status overlay onto a rendered frame.
package hud

import (
	"fmt"
	"image/color"

	"cubeview/bootstrap"
	"cubeview/quarkgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	margin  = 4
	lineGap = 2
)

// HUD renders the material status and frame counter in the top-left corner.
type HUD struct {
	font       tinyfont.Fonter
	lineHeight int16
	ascent     int16

	Foreground color.RGBA
	Background color.RGBA
}

// New returns a HUD with white text on a translucent black panel.
func New() *HUD {
	f := &proggy.TinySZ8pt7b
	lh := int16(f.YAdvance)
	if lh <= 0 {
		lh = 10
	}
	return &HUD{
		font:       f,
		lineHeight: lh,
		ascent:     lh - 3,
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{A: 0xa0},
	}
}

// Lines returns the text the HUD shows for sc.
func Lines(sc *bootstrap.SceneContext) []string {
	return []string{
		"material: " + sc.Status(),
		fmt.Sprintf("frame %d  tris %d", sc.Renderer.Info.Frame, sc.Renderer.Info.Triangles),
	}
}

// Draw writes the overlay for sc into its surface. It matches the
// Overlay hook of the window and headless runners.
func (h *HUD) Draw(sc *bootstrap.SceneContext) {
	h.DrawLines(sc.Surface, Lines(sc))
}

// DrawLines writes lines into t.
func (h *HUD) DrawLines(t *quarkgl.RGBATarget, lines []string) {
	d := &targetDisplayer{t: t}

	var width uint32
	for _, s := range lines {
		if _, w := tinyfont.LineWidth(h.font, s); w > width {
			width = w
		}
	}
	panelH := int16(len(lines))*(h.lineHeight+lineGap) + 2*margin
	d.FillRectangle(0, 0, int16(width)+2*margin, panelH, h.Background)

	y := int16(margin) + h.ascent
	for _, s := range lines {
		tinyfont.WriteLine(d, h.font, margin, y, s, h.Foreground)
		y += h.lineHeight + lineGap
	}
}

// targetDisplayer adapts an RGBATarget to the tinyfont drawing interface.
// Colors with alpha below 0xff are blended over the existing pixel.
type targetDisplayer struct {
	t *quarkgl.RGBATarget
}

var _ drivers.Displayer = (*targetDisplayer)(nil)

func (d *targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0xff {
		d.t.SetPixel(int(x), int(y), quarkgl.Color(c))
		return
	}
	dst := d.t.At(int(x), int(y))
	a := uint16(c.A)
	blend := func(s, b uint8) uint8 {
		return uint8((uint16(s)*a + uint16(b)*(0xff-a)) / 0xff)
	}
	d.t.SetPixel(int(x), int(y), quarkgl.RGB(blend(c.R, dst.R), blend(c.G, dst.G), blend(c.B, dst.B)))
}

func (d *targetDisplayer) Display() error { return nil }

func (d *targetDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			d.SetPixel(i, j, c)
		}
	}
	return nil
}
