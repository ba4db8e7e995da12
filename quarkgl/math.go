package quarkgl

import "math"

// Scalar is the float type of the engine. float32 keeps vertex and depth
// buffers small.
type Scalar = float32

type Vec2 struct {
	X, Y Scalar
}

type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous point or a clip-space position.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 stores a 4x4 matrix column by column: element (row, col) is at
// m[col*4+row].
type Mat4 [16]Scalar

func V2(x, y Scalar) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2   { return V2(v.X+o.X, v.Y+o.Y) }
func (v Vec2) Mul(s Scalar) Vec2 { return V2(v.X*s, v.Y*s) }

func (v Vec3) Add(o Vec3) Vec3   { return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z) }
func (v Vec3) Sub(o Vec3) Vec3   { return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z) }
func (v Vec3) Mul(s Scalar) Vec3 { return V3(v.X*s, v.Y*s, v.Z*s) }

// Scale is the component-wise product, used to tint light by albedo.
func (v Vec3) Scale(o Vec3) Vec3 { return V3(v.X*o.X, v.Y*o.Y, v.Z*o.Z) }

func (v Vec3) point() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }
func (v Vec3) dir() Vec4   { return Vec4{X: v.X, Y: v.Y, Z: v.Z} }
func (v Vec4) xyz() Vec3   { return V3(v.X, v.Y, v.Z) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return V3(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Len is the Euclidean length.
func Len(v Vec3) Scalar { return sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length; the zero vector stays zero.
func Normalize(v Vec3) Vec3 {
	if l := Len(v); l != 0 {
		return v.Mul(1 / l)
	}
	return Vec3{}
}

// Lerp3 blends from a (t=0) to b (t=1).
func Lerp3(a, b Vec3, t Scalar) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func Clamp01(v Scalar) Scalar {
	return Scalar(math.Max(0, math.Min(1, float64(v))))
}

func sqrt(v Scalar) Scalar { return Scalar(math.Sqrt(float64(v))) }

func sincos(rad Scalar) (s, c Scalar) {
	fs, fc := math.Sincos(float64(rad))
	return Scalar(fs), Scalar(fc)
}

// columns builds a matrix from its four columns.
func columns(c0, c1, c2, c3 Vec4) Mat4 {
	var m Mat4
	for i, c := range [4]Vec4{c0, c1, c2, c3} {
		m[i*4+0], m[i*4+1], m[i*4+2], m[i*4+3] = c.X, c.Y, c.Z, c.W
	}
	return m
}

func (m Mat4) column(i int) Vec4 {
	return Vec4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

func Mat4Identity() Mat4 {
	return columns(
		Vec4{X: 1},
		Vec4{Y: 1},
		Vec4{Z: 1},
		Vec4{W: 1},
	)
}

// Mat4Mul returns a*b, so (a*b)*v applies b first.
func Mat4Mul(a, b Mat4) Mat4 {
	return columns(
		Mat4MulV4(a, b.column(0)),
		Mat4MulV4(a, b.column(1)),
		Mat4MulV4(a, b.column(2)),
		Mat4MulV4(a, b.column(3)),
	)
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	var out Vec4
	for i, s := range [4]Scalar{v.X, v.Y, v.Z, v.W} {
		c := m.column(i)
		out.X += c.X * s
		out.Y += c.Y * s
		out.Z += c.Z * s
		out.W += c.W * s
	}
	return out
}

// Mat4MulPoint transforms a position; translation applies.
func Mat4MulPoint(m Mat4, p Vec3) Vec3 { return Mat4MulV4(m, p.point()).xyz() }

// Mat4MulDir transforms a direction; translation is ignored and the result
// is not renormalized.
func Mat4MulDir(m Mat4, d Vec3) Vec3 { return Mat4MulV4(m, d.dir()).xyz() }

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Mat4RotateX rotates counter-clockwise about +X when looking down the axis.
func Mat4RotateX(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return columns(
		Vec4{X: 1},
		Vec4{Y: c, Z: s},
		Vec4{Y: -s, Z: c},
		Vec4{W: 1},
	)
}

// Mat4RotateY rotates counter-clockwise about +Y when looking down the axis.
func Mat4RotateY(rad Scalar) Mat4 {
	s, c := sincos(rad)
	return columns(
		Vec4{X: c, Z: -s},
		Vec4{Y: 1},
		Vec4{X: s, Z: c},
		Vec4{W: 1},
	)
}

// Mat4LookAt is the view matrix of an eye at eye facing target. The camera
// looks down its local -Z.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	fwd := Normalize(target.Sub(eye))
	right := Normalize(Cross(fwd, up))
	camUp := Cross(right, fwd)
	return columns(
		Vec4{X: right.X, Y: camUp.X, Z: -fwd.X},
		Vec4{X: right.Y, Y: camUp.Y, Z: -fwd.Y},
		Vec4{X: right.Z, Y: camUp.Z, Z: -fwd.Z},
		Vec4{X: -Dot(right, eye), Y: -Dot(camUp, eye), Z: Dot(fwd, eye), W: 1},
	)
}

// Mat4Perspective maps the view frustum to clip space with NDC z in [-1, 1].
// A zero aspect is treated as 1.
func Mat4Perspective(fovYRad, aspect, near, far Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / Scalar(math.Tan(float64(fovYRad)/2))
	depth := 1 / (near - far)
	return columns(
		Vec4{X: f / aspect},
		Vec4{Y: f},
		Vec4{Z: (far + near) * depth, W: -1},
		Vec4{Z: 2 * far * near * depth},
	)
}

func DegToRad(deg Scalar) Scalar { return deg * math.Pi / 180 }
