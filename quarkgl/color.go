package quarkgl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an sRGB color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

var namedColors = map[string]uint32{
	"black":     0x000000,
	"white":     0xffffff,
	"red":       0xff0000,
	"green":     0x008000,
	"blue":      0x0000ff,
	"gray":      0x808080,
	"skyblue":   0x87ceeb,
	"steelblue": 0x4682b4,
	"orange":    0xffa500,
}

// ParseColor accepts a CSS-style color name, "#rrggbb" or "0xrrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := namedColors[s]; ok {
		return Hex(v), nil
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("quarkgl: invalid color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("quarkgl: invalid color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// Linear converts the color to linear RGB in [0,1] using the sRGB transfer curve.
func (c Color) Linear() Vec3 {
	return Vec3{X: srgbToLinear(c.R), Y: srgbToLinear(c.G), Z: srgbToLinear(c.B)}
}

// Raw returns the channels scaled to [0,1] without any transfer curve.
func (c Color) Raw() Vec3 {
	return Vec3{X: Scalar(c.R) / 255, Y: Scalar(c.G) / 255, Z: Scalar(c.B) / 255}
}

func srgbToLinear(ch uint8) Scalar {
	v := float64(ch) / 255
	if v < 0.04045 {
		return Scalar(v * 0.0773993808)
	}
	return Scalar(math.Pow(v*0.9478672986+0.0521327014, 2.4))
}

// EncodeGamma converts linear RGB to an opaque 8-bit color. A gamma of 0 or 1
// writes the values unchanged.
func EncodeGamma(v Vec3, gamma Scalar) Color {
	enc := func(x Scalar) uint8 {
		x = Clamp01(x)
		if gamma > 0 && gamma != 1 {
			x = Scalar(math.Pow(float64(x), 1/float64(gamma)))
		}
		return uint8(x*255 + 0.5)
	}
	return RGB(enc(v.X), enc(v.Y), enc(v.Z))
}
