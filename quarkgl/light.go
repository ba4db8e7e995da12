package quarkgl

import "math"

// DirectionalLight shines from Position towards Target, like sunlight.
type DirectionalLight struct {
	Node

	Color     Color
	Intensity Scalar
	Position  Vec3
	Target    Vec3
}

func NewDirectionalLight(c Color, intensity Scalar) *DirectionalLight {
	return &DirectionalLight{
		Node:      newNode("directional-light"),
		Color:     c,
		Intensity: intensity,
		Position:  V3(0, 1, 0),
	}
}

// Direction returns the normalized direction the light travels.
func (l *DirectionalLight) Direction() Vec3 {
	return Normalize(l.Target.Sub(l.Position))
}

// HemisphereLight blends a sky color above and a ground color below.
type HemisphereLight struct {
	Node

	SkyColor    Color
	GroundColor Color
	Intensity   Scalar
	Position    Vec3
}

func NewHemisphereLight(sky, ground Color, intensity Scalar) *HemisphereLight {
	return &HemisphereLight{
		Node:        newNode("hemisphere-light"),
		SkyColor:    sky,
		GroundColor: ground,
		Intensity:   intensity,
		Position:    V3(0, 1, 0),
	}
}

// lightSet is the per-frame, linear-space view of the scene lights.
type lightSet struct {
	directional []*DirectionalLight
	hemisphere  []*HemisphereLight

	dirs     []preparedDirectional
	hemis    []preparedHemisphere
	physical bool
}

type preparedDirectional struct {
	toLight Vec3
	color   Vec3
}

type preparedHemisphere struct {
	up     Vec3
	sky    Vec3
	ground Vec3
}

func (ls *lightSet) reset() {
	ls.directional = ls.directional[:0]
	ls.hemisphere = ls.hemisphere[:0]
	ls.dirs = ls.dirs[:0]
	ls.hemis = ls.hemis[:0]
}

// prepare converts light colors to linear space once per frame. In physical
// mode intensities are divided by π, matching a Lambertian BRDF.
func (ls *lightSet) prepare(physical bool) {
	ls.physical = physical
	scale := Scalar(1)
	if physical {
		scale = 1 / math.Pi
	}
	for _, l := range ls.directional {
		ls.dirs = append(ls.dirs, preparedDirectional{
			toLight: l.Direction().Mul(-1),
			color:   l.Color.Linear().Mul(l.Intensity * scale),
		})
	}
	for _, l := range ls.hemisphere {
		ls.hemis = append(ls.hemis, preparedHemisphere{
			up:     Normalize(l.Position),
			sky:    l.SkyColor.Linear().Mul(l.Intensity * scale),
			ground: l.GroundColor.Linear().Mul(l.Intensity * scale),
		})
	}
}

// irradiance returns the light arriving at a surface with normal n.
func (ls *lightSet) irradiance(n Vec3) Vec3 {
	var out Vec3
	for _, d := range ls.dirs {
		cos := Dot(n, d.toLight)
		if cos > 0 {
			out = out.Add(d.color.Mul(cos))
		}
	}
	for _, h := range ls.hemis {
		w := Dot(n, h.up)*0.5 + 0.5
		out = out.Add(Lerp3(h.ground, h.sky, w))
	}
	return out
}
