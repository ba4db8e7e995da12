package quarkgl

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderSolid RenderMode = iota
	RenderWireframe
)

// Info describes the last rendered frame.
type Info struct {
	Frame     uint64
	Calls     int
	Triangles int
	Meshes    []NodeID
	Camera    *PerspectiveCamera
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode  RenderMode
	Depth bool

	// GammaOutput encodes linear colors with 1/GammaFactor before writing.
	GammaOutput bool
	GammaFactor Scalar

	// PhysicallyCorrectLights divides light intensities by π.
	PhysicallyCorrectLights bool

	// Time is passed to shader programs. The renderer never advances it.
	Time Scalar

	Info Info

	depthBuf []float32
	lights   lightSet
	verts    []shadedVertex
	segs     []Segment
}

type shadedVertex struct {
	clip   Vec4
	world  Vec3
	normal Vec3
	uv     Vec2
	failed bool
}

// NewRenderer creates a renderer with a depth buffer and linear output.
func NewRenderer() *Renderer {
	return &Renderer{
		Mode:        RenderSolid,
		Depth:       true,
		GammaFactor: 2.0,
	}
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) prepareDepth(w, h int) {
	if !r.Depth || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render draws the scene as seen by cam into the target.
func (r *Renderer) Render(t Target, s *Scene, cam *PerspectiveCamera) {
	if r == nil || t == nil || s == nil || cam == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}

	r.Info.Frame++
	r.Info.Calls = 0
	r.Info.Triangles = 0
	r.Info.Meshes = r.Info.Meshes[:0]
	r.Info.Camera = cam

	t.Clear(s.Background)
	r.prepareDepth(w, h)

	s.collectLights(&r.lights)
	r.lights.prepare(r.PhysicallyCorrectLights)

	vp := Mat4Mul(cam.Projection(), cam.View())

	s.eachMesh(func(m *Mesh) {
		r.renderMesh(t, w, h, vp, m)
	})

	r.segs = r.segs[:0]
	for _, c := range s.children {
		if hp, ok := c.(Helper); ok && c.node().Visible {
			r.segs = hp.AppendSegments(r.segs)
		}
	}
	for _, sg := range r.segs {
		r.drawSegment(t, w, h, vp, sg)
	}
}

func (r *Renderer) renderMesh(t Target, w, h int, vp Mat4, m *Mesh) {
	g := m.Geometry
	if g == nil || len(g.Vertices) == 0 || len(g.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(vp, model)

	var prog Program
	base := V3(0.8, 0.8, 0.8)
	wire := r.Mode == RenderWireframe
	switch mat := m.Material.(type) {
	case *ShaderMaterial:
		prog = mat.Program
	case *StandardMaterial:
		base = mat.Color
		wire = wire || mat.Wireframe
	}

	r.Info.Calls++
	r.Info.Meshes = append(r.Info.Meshes, m.ID())

	if cap(r.verts) < len(g.Vertices) {
		r.verts = make([]shadedVertex, len(g.Vertices))
	}
	r.verts = r.verts[:len(g.Vertices)]
	for i, v := range g.Vertices {
		sv := &r.verts[i]
		pos := v.Pos
		sv.failed = false
		if prog != nil {
			p, ok := prog.Vertex(VertexIn{Position: v.Pos, Normal: v.Normal, UV: v.UV, Time: r.Time})
			if ok {
				pos = p
			} else {
				sv.failed = true
			}
		}
		sv.clip = Mat4MulV4(mvp, Vec4{X: pos.X, Y: pos.Y, Z: pos.Z, W: 1})
		sv.world = Mat4MulPoint(model, pos)
		sv.normal = Normalize(Mat4MulDir(model, v.Normal))
		sv.uv = v.UV
	}

	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0 := int(g.Indices[i+0])
		i1 := int(g.Indices[i+1])
		i2 := int(g.Indices[i+2])
		if i0 >= len(r.verts) || i1 >= len(r.verts) || i2 >= len(r.verts) {
			continue
		}
		v0, v1, v2 := &r.verts[i0], &r.verts[i1], &r.verts[i2]

		// Trivial clip: if any vertex is at or behind the eye, drop.
		if v0.clip.W <= 1e-6 || v1.clip.W <= 1e-6 || v2.clip.W <= 1e-6 {
			continue
		}
		ndc0 := clipToNDC(v0.clip)
		ndc1 := clipToNDC(v1.clip)
		ndc2 := clipToNDC(v2.clip)

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		// Counter-clockwise in NDC is positive area once y is flipped.
		if edgeFn(x0, y0, x1, y1, x2, y2) <= 0 {
			continue
		}
		r.Info.Triangles++

		failed := v0.failed || v1.failed || v2.failed
		if wire {
			c := r.encode(ErrorColor)
			if !failed {
				c = r.encode(r.fragment(prog, base, v0, 1.0/3, v1, 1.0/3, v2, 1.0/3))
			}
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
			continue
		}

		r.fillTriangle(t, w, h, prog, base, failed,
			x0, y0, ndc0.Z, v0,
			x1, y1, ndc1.Z, v1,
			x2, y2, ndc2.Z, v2)
	}
}

// fragment interpolates vertex attributes with the given weights and shades.
func (r *Renderer) fragment(prog Program, base Vec3, v0 *shadedVertex, b0 Scalar, v1 *shadedVertex, b1 Scalar, v2 *shadedVertex, b2 Scalar) Vec3 {
	n := Normalize(v0.normal.Mul(b0).Add(v1.normal.Mul(b1)).Add(v2.normal.Mul(b2)))
	light := r.lights.irradiance(n)
	if prog == nil {
		return base.Scale(light)
	}
	in := FragmentIn{
		UV:       v0.uv.Mul(b0).Add(v1.uv.Mul(b1)).Add(v2.uv.Mul(b2)),
		Normal:   n,
		Position: v0.world.Mul(b0).Add(v1.world.Mul(b1)).Add(v2.world.Mul(b2)),
		Light:    light,
		Time:     r.Time,
	}
	rgb, ok := prog.Fragment(in)
	if !ok {
		return ErrorColor
	}
	return rgb
}

func (r *Renderer) encode(v Vec3) Color {
	if r.GammaOutput {
		return EncodeGamma(v, r.GammaFactor)
	}
	return EncodeGamma(v, 1)
}

func (r *Renderer) fillTriangle(t Target, w, h int, prog Program, base Vec3, failed bool,
	x0, y0 int, z0 float32, v0 *shadedVertex,
	x1, y1 int, z1 float32, v1 *shadedVertex,
	x2, y2 int, z2 float32, v2 *shadedVertex,
) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	// Perspective-correct weights use 1/w per vertex.
	iw0 := 1 / v0.clip.W
	iw1 := 1 / v1.clip.W
	iw2 := 1 / v2.clip.W

	errColor := r.encode(ErrorColor)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			if failed {
				t.SetPixel(x, y, errColor)
				continue
			}
			p0, p1, p2 := a0*iw0, a1*iw1, a2*iw2
			sum := p0 + p1 + p2
			if sum == 0 {
				continue
			}
			inv := 1 / sum
			t.SetPixel(x, y, r.encode(r.fragment(prog, base, v0, p0*inv, v1, p1*inv, v2, p2*inv)))
		}
	}
}

func (r *Renderer) drawSegment(t Target, w, h int, vp Mat4, sg Segment) {
	a := Mat4MulV4(vp, Vec4{X: sg.A.X, Y: sg.A.Y, Z: sg.A.Z, W: 1})
	b := Mat4MulV4(vp, Vec4{X: sg.B.X, Y: sg.B.Y, Z: sg.B.Z, W: 1})
	a, b, ok := clipNear(a, b)
	if !ok {
		return
	}
	na, nb := clipToNDC(a), clipToNDC(b)
	na, nb, ok = clipNDC(na, nb)
	if !ok {
		return
	}
	x0, y0 := ndcToScreen(na, w, h)
	x1, y1 := ndcToScreen(nb, w, h)
	r.drawLine(t, x0, y0, x1, y1, sg.Color)
}

const nearW = 1e-3

// clipNear clips a clip-space segment to w >= nearW.
func clipNear(a, b Vec4) (Vec4, Vec4, bool) {
	if a.W < nearW && b.W < nearW {
		return a, b, false
	}
	lerp := func(p, q Vec4) Vec4 {
		t := (nearW - p.W) / (q.W - p.W)
		return Vec4{
			X: p.X + (q.X-p.X)*t,
			Y: p.Y + (q.Y-p.Y)*t,
			Z: p.Z + (q.Z-p.Z)*t,
			W: nearW,
		}
	}
	if a.W < nearW {
		a = lerp(a, b)
	} else if b.W < nearW {
		b = lerp(b, a)
	}
	return a, b, true
}

// clipNDC clips a segment to the [-1,1] square (Liang-Barsky).
func clipNDC(a, b ndcPoint) (ndcPoint, ndcPoint, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-dx, a.X + 1},
		{dx, 1 - a.X},
		{-dy, a.Y + 1},
		{dy, 1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	na := ndcPoint{X: a.X + dx*t0, Y: a.Y + dy*t0, Z: a.Z + (b.Z-a.Z)*t0}
	nb := ndcPoint{X: a.X + dx*t1, Y: a.Y + dy*t1, Z: a.Z + (b.Z-a.Z)*t1}
	return na, nb, true
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) ndcPoint {
	invW := 1.0 / p.W
	return ndcPoint{
		X: p.X * invW,
		Y: p.Y * invW,
		Z: p.Z * invW,
	}
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is typically in [-1,1]. Map to [0,1].
	d := (z*0.5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
