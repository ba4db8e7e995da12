package quarkgl

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	UV     Vec2
}

// Geometry is an indexed triangle list. Front faces wind counter-clockwise.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of complete triangles.
func (g *Geometry) Triangles() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// NewBoxGeometry builds an axis-aligned box centered at the origin with four
// vertices per face so each face gets its own normal and a full [0,1] UV square.
func NewBoxGeometry(width, height, depth Scalar) *Geometry {
	half := V3(width/2, height/2, depth/2)
	g := &Geometry{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}

	// Each face is given by its normal and a (u, v) basis with u×v = n.
	faces := [6][3]Vec3{
		{V3(1, 0, 0), V3(0, 0, -1), V3(0, 1, 0)},
		{V3(-1, 0, 0), V3(0, 0, 1), V3(0, 1, 0)},
		{V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{V3(0, -1, 0), V3(1, 0, 0), V3(0, 0, 1)},
		{V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{V3(0, 0, -1), V3(-1, 0, 0), V3(0, 1, 0)},
	}
	corners := [4]Vec2{V2(0, 0), V2(1, 0), V2(1, 1), V2(0, 1)}

	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		center := n.Scale(half)
		du := u.Scale(half)
		dv := v.Scale(half)
		base := uint16(len(g.Vertices))
		for _, uv := range corners {
			pos := center.Add(du.Mul(uv.X*2 - 1)).Add(dv.Mul(uv.Y*2 - 1))
			g.Vertices = append(g.Vertices, Vertex{Pos: pos, Normal: n, UV: uv})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}
