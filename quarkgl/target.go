package quarkgl

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGBATarget renders into an *image.RGBA.
type RGBATarget struct {
	img *image.RGBA
}

// NewRGBATarget allocates a w×h target.
func NewRGBATarget(w, h int) *RGBATarget {
	t := &RGBATarget{}
	t.Resize(w, h)
	return t
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image when the size changes. Contents are
// not preserved.
func (t *RGBATarget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if cw, ch := t.Size(); t.img != nil && cw == w && ch == h {
		return
	}
	t.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the backing image. It is replaced on Resize.
func (t *RGBATarget) Image() *image.RGBA { return t.img }

// Pix returns the raw RGBA bytes.
func (t *RGBATarget) Pix() []byte {
	if t == nil || t.img == nil {
		return nil
	}
	return t.img.Pix
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.img == nil {
		return
	}
	pix := t.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.img == nil {
		return
	}
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := t.img.PixOffset(x, y)
	t.img.Pix[off+0] = c.R
	t.img.Pix[off+1] = c.G
	t.img.Pix[off+2] = c.B
	t.img.Pix[off+3] = c.A
}

// At reads back a pixel; out-of-bounds reads return the zero Color.
func (t *RGBATarget) At(x, y int) Color {
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Color{}
	}
	off := t.img.PixOffset(x, y)
	p := t.img.Pix[off : off+4 : off+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}
