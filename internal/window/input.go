package window

import (
	"math"

	"cubeview/quarkgl"
)

// Pointer is one frame of mouse state.
type Pointer struct {
	X, Y  int
	Left  bool
	Right bool
	// Wheel is the vertical scroll since the last frame; positive is away
	// from the user.
	Wheel float64
}

// orbitInput turns pointer drags into orbit controller moves: left drag
// rotates, right drag pans, the wheel zooms.
type orbitInput struct {
	lastX, lastY int
	dragging     bool
}

// apply feeds p to c and reports whether the camera needs updating. h is the
// viewport height; a drag across the full height turns the view by 2π.
func (in *orbitInput) apply(p Pointer, h int, c *quarkgl.OrbitController, cam *quarkgl.PerspectiveCamera) bool {
	if h <= 0 {
		h = 1
	}
	moved := false

	if p.Left || p.Right {
		if in.dragging {
			dx := quarkgl.Scalar(p.X-in.lastX) / quarkgl.Scalar(h)
			dy := quarkgl.Scalar(p.Y-in.lastY) / quarkgl.Scalar(h)
			if dx != 0 || dy != 0 {
				if p.Left {
					c.Rotate(-2*math.Pi*dx, -2*math.Pi*dy)
				} else {
					c.Pan(cam, dx, dy)
				}
				moved = true
			}
		}
		in.dragging = true
		in.lastX, in.lastY = p.X, p.Y
	} else {
		in.dragging = false
	}

	if p.Wheel != 0 {
		c.Zoom(quarkgl.Scalar(p.Wheel))
		moved = true
	}
	return moved
}
