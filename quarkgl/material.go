package quarkgl

// Material decides how a mesh surface is shaded.
type Material interface {
	isMaterial()
}

// StandardMaterial is a diffuse surface lit by the scene lights.
type StandardMaterial struct {
	// Color is the linear base color.
	Color     Vec3
	Wireframe bool
}

// NewStandardMaterial converts an sRGB color to linear space.
func NewStandardMaterial(c Color) *StandardMaterial {
	return &StandardMaterial{Color: c.Linear()}
}

func (*StandardMaterial) isMaterial() {}

// VertexIn is the input of the vertex stage, in object space.
type VertexIn struct {
	Position Vec3
	Normal   Vec3
	UV       Vec2
	Time     Scalar
}

// FragmentIn is the input of the fragment stage. Normal and Position are in
// world space; Light is the linear irradiance at the pixel.
type FragmentIn struct {
	UV       Vec2
	Normal   Vec3
	Position Vec3
	Light    Vec3
	Time     Scalar
}

// Program is a compiled vertex/fragment pair. A stage that reports !ok makes
// the renderer fall back to ErrorColor for the affected primitive or pixel.
type Program interface {
	Vertex(in VertexIn) (pos Vec3, ok bool)
	Fragment(in FragmentIn) (rgb Vec3, ok bool)
}

// ErrorColor is drawn where a Program fails at run time.
var ErrorColor = V3(1, 0, 1)

// ShaderMaterial delegates shading to a Program.
type ShaderMaterial struct {
	Program Program
}

func NewShaderMaterial(p Program) *ShaderMaterial {
	return &ShaderMaterial{Program: p}
}

func (*ShaderMaterial) isMaterial() {}
