package quarkgl

import "math"

// OrbitController provides basic orbit/zoom/pan interactions for a camera.
//
// It does not depend on any input system; callers feed it deltas.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	// RotateSpeed scales Rotate deltas (radians per unit).
	RotateSpeed Scalar
	// ZoomSpeed is the fractional radius change per unit of Zoom.
	ZoomSpeed Scalar
}

// maxPitch keeps the camera off the poles where LookAt degenerates.
const maxPitch = math.Pi/2 - 0.01

// NewOrbitController derives yaw, pitch and radius from the camera's current
// position relative to its target, so Apply leaves the camera where it is.
func NewOrbitController(cam *PerspectiveCamera) *OrbitController {
	c := &OrbitController{
		RotateSpeed: 1,
		ZoomSpeed:   0.1,
	}
	if cam == nil {
		c.Radius = 3
		return c
	}
	c.Target = cam.Target
	off := cam.Position.Sub(cam.Target)
	c.Radius = Len(off)
	if c.Radius == 0 {
		c.Radius = 3
		return c
	}
	c.Yaw = Scalar(math.Atan2(float64(off.X), float64(off.Z)))
	c.Pitch = Scalar(-math.Asin(float64(off.Y / c.Radius)))
	return c
}

func (c *OrbitController) Apply(cam *PerspectiveCamera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	speed := c.RotateSpeed
	if speed == 0 {
		speed = 1
	}
	c.Yaw += deltaYaw * speed
	c.Pitch += deltaPitch * speed
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom scales the radius; positive deltas move the camera closer.
func (c *OrbitController) Zoom(delta Scalar) {
	speed := c.ZoomSpeed
	if speed == 0 {
		speed = 0.1
	}
	f := 1 - delta*speed
	if f < 0.1 {
		f = 0.1
	}
	c.Radius *= f
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// Pan moves the target in the camera's screen plane. dx and dy are fractions
// of the orbit radius.
func (c *OrbitController) Pan(cam *PerspectiveCamera, dx, dy Scalar) {
	if cam == nil {
		return
	}
	fwd := Normalize(cam.Target.Sub(cam.Position))
	up := cam.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	right := Normalize(Cross(fwd, up))
	camUp := Cross(right, fwd)
	c.Target = c.Target.Add(right.Mul(-dx * c.Radius)).Add(camUp.Mul(dy * c.Radius))
}
