package quarkgl

// Segment is a colored world-space line.
type Segment struct {
	A, B  Vec3
	Color Color
}

// Helper is a scene object drawn as lines, used to visualize lights.
type Helper interface {
	Object
	AppendSegments(dst []Segment) []Segment
}

// DirectionalLightHelper draws a square facing the light target and a line
// from the light to its target.
type DirectionalLightHelper struct {
	Node

	Light *DirectionalLight
	Size  Scalar
}

func NewDirectionalLightHelper(l *DirectionalLight, size Scalar) *DirectionalLightHelper {
	return &DirectionalLightHelper{Node: newNode("directional-light-helper"), Light: l, Size: size}
}

func (h *DirectionalLightHelper) AppendSegments(dst []Segment) []Segment {
	if h.Light == nil {
		return dst
	}
	dir := h.Light.Direction()
	if dir == (Vec3{}) {
		return dst
	}
	up := V3(0, 1, 0)
	if d := Dot(dir, up); d > 0.999 || d < -0.999 {
		up = V3(1, 0, 0)
	}
	right := Normalize(Cross(dir, up)).Mul(h.Size)
	up = Normalize(Cross(right, dir)).Mul(h.Size)

	p := h.Light.Position
	c := h.Light.Color
	a := p.Sub(right).Add(up)
	b := p.Add(right).Add(up)
	d := p.Add(right).Sub(up)
	e := p.Sub(right).Sub(up)
	return append(dst,
		Segment{A: a, B: b, Color: c},
		Segment{A: b, B: d, Color: c},
		Segment{A: d, B: e, Color: c},
		Segment{A: e, B: a, Color: c},
		Segment{A: p, B: h.Light.Target, Color: c},
	)
}

// HemisphereLightHelper draws an octahedron at the light position, sky colored
// on top and ground colored below.
type HemisphereLightHelper struct {
	Node

	Light *HemisphereLight
	Size  Scalar
}

func NewHemisphereLightHelper(l *HemisphereLight, size Scalar) *HemisphereLightHelper {
	return &HemisphereLightHelper{Node: newNode("hemisphere-light-helper"), Light: l, Size: size}
}

func (h *HemisphereLightHelper) AppendSegments(dst []Segment) []Segment {
	if h.Light == nil {
		return dst
	}
	p := h.Light.Position
	s := h.Size
	top := p.Add(V3(0, s, 0))
	bottom := p.Add(V3(0, -s, 0))
	ring := [4]Vec3{
		p.Add(V3(s, 0, 0)),
		p.Add(V3(0, 0, s)),
		p.Add(V3(-s, 0, 0)),
		p.Add(V3(0, 0, -s)),
	}
	sky := h.Light.SkyColor
	ground := h.Light.GroundColor
	for i, r := range ring {
		next := ring[(i+1)%len(ring)]
		dst = append(dst,
			Segment{A: top, B: r, Color: sky},
			Segment{A: bottom, B: r, Color: ground},
			Segment{A: r, B: next, Color: sky},
		)
	}
	return dst
}
