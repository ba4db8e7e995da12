package window

import (
	"testing"

	"cubeview/quarkgl"
)

func newOrbit() (*quarkgl.OrbitController, *quarkgl.PerspectiveCamera) {
	cam := quarkgl.NewPerspectiveCamera(35, 4.0/3, 0.1, 1000)
	cam.Position = quarkgl.V3(2, 1, 5)
	cam.LookAt(quarkgl.V3(0, 0, 0))
	return quarkgl.NewOrbitController(cam), cam
}

func TestOrbitInputNeedsTwoSamplesToDrag(t *testing.T) {
	c, cam := newOrbit()
	yaw := c.Yaw
	var in orbitInput

	if in.apply(Pointer{X: 10, Y: 10, Left: true}, 600, c, cam) {
		t.Fatalf("apply() on press = true, want false")
	}
	if !in.apply(Pointer{X: 70, Y: 10, Left: true}, 600, c, cam) {
		t.Fatalf("apply() on drag = false, want true")
	}
	if c.Yaw >= yaw {
		t.Fatalf("Yaw = %v, want less than %v after dragging right", c.Yaw, yaw)
	}
}

func TestOrbitInputReleaseEndsDrag(t *testing.T) {
	c, cam := newOrbit()
	var in orbitInput

	in.apply(Pointer{X: 0, Y: 0, Left: true}, 600, c, cam)
	in.apply(Pointer{X: 0, Y: 0}, 600, c, cam)
	yaw := c.Yaw
	if in.apply(Pointer{X: 300, Y: 0, Left: true}, 600, c, cam) {
		t.Fatalf("apply() on new press = true, want false")
	}
	if c.Yaw != yaw {
		t.Fatalf("Yaw = %v, want %v", c.Yaw, yaw)
	}
}

func TestOrbitInputWheelZooms(t *testing.T) {
	c, cam := newOrbit()
	r := c.Radius
	var in orbitInput

	if !in.apply(Pointer{Wheel: 1}, 600, c, cam) {
		t.Fatalf("apply() with wheel = false, want true")
	}
	if c.Radius >= r {
		t.Fatalf("Radius = %v, want less than %v", c.Radius, r)
	}
}

func TestOrbitInputRightDragPans(t *testing.T) {
	c, cam := newOrbit()
	var in orbitInput

	in.apply(Pointer{X: 100, Y: 100, Right: true}, 600, c, cam)
	in.apply(Pointer{X: 160, Y: 100, Right: true}, 600, c, cam)
	if c.Target == (quarkgl.Vec3{}) {
		t.Fatalf("Target = %v, want moved", c.Target)
	}
	if c.Target.Y != 0 {
		t.Fatalf("Target.Y = %v, want 0 for a horizontal drag", c.Target.Y)
	}
}
