package quarkgl

// PerspectiveCamera describes the viewing transform.
//
// The projection matrix is cached; call UpdateProjectionMatrix after changing
// FOV, Aspect, Near or Far.
type PerspectiveCamera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYDeg Scalar
	Aspect  Scalar
	Near    Scalar
	Far     Scalar

	proj Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fovYDeg, aspect, near, far Scalar) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Position: V3(0, 0, 0),
		Target:   V3(0, 0, -1),
		Up:       V3(0, 1, 0),
		FOVYDeg:  fovYDeg,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the cached projection.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	fov := c.FOVYDeg
	if fov == 0 {
		fov = 50
	}
	c.proj = Mat4Perspective(DegToRad(fov), c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *PerspectiveCamera) Projection() Mat4 { return c.proj }

// View returns the camera view matrix.
func (c *PerspectiveCamera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// LookAt points the camera at t.
func (c *PerspectiveCamera) LookAt(t Vec3) { c.Target = t }
