package shader

import "cubeview/quarkgl"

// Vec2 is the program-side 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is the program-side 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func fromVec2(v quarkgl.Vec2) Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

func fromVec3(v quarkgl.Vec3) Vec3 {
	return Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func (v Vec3) quark() quarkgl.Vec3 {
	return quarkgl.V3(quarkgl.Scalar(v.X), quarkgl.Scalar(v.Y), quarkgl.Scalar(v.Z))
}
