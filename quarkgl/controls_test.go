package quarkgl

import "testing"

func TestOrbitControllerKeepsInitialPose(t *testing.T) {
	cam := NewPerspectiveCamera(35, 1, 0.1, 1000)
	cam.Position = V3(2, 1, 5)
	cam.LookAt(V3(0, 0, 0))

	c := NewOrbitController(cam)
	c.Apply(cam)

	if !near(cam.Position.X, 2) || !near(cam.Position.Y, 1) || !near(cam.Position.Z, 5) {
		t.Fatalf("Position = %+v, want (2,1,5)", cam.Position)
	}
}

func TestOrbitControllerRotatePreservesRadius(t *testing.T) {
	cam := NewPerspectiveCamera(35, 1, 0.1, 1000)
	cam.Position = V3(0, 0, 4)
	cam.LookAt(V3(0, 0, 0))
	c := NewOrbitController(cam)

	c.Rotate(0.7, 0.3)
	c.Apply(cam)
	if got := Len(cam.Position.Sub(cam.Target)); !near(got, 4) {
		t.Fatalf("radius = %v, want 4", got)
	}
}

func TestOrbitControllerClampsPitchAndRadius(t *testing.T) {
	c := &OrbitController{Radius: 5, MinRadius: 2, MaxRadius: 10}
	c.Rotate(0, 100)
	if c.Pitch > maxPitch {
		t.Fatalf("Pitch = %v, want <= %v", c.Pitch, maxPitch)
	}
	for i := 0; i < 50; i++ {
		c.Zoom(1)
	}
	if c.Radius != 2 {
		t.Fatalf("Radius = %v, want clamped to 2", c.Radius)
	}
	for i := 0; i < 50; i++ {
		c.Zoom(-1)
	}
	if c.Radius != 10 {
		t.Fatalf("Radius = %v, want clamped to 10", c.Radius)
	}
}

func TestOrbitControllerPanMovesTarget(t *testing.T) {
	cam := NewPerspectiveCamera(35, 1, 0.1, 1000)
	cam.Position = V3(0, 0, 5)
	cam.LookAt(V3(0, 0, 0))
	c := NewOrbitController(cam)

	c.Pan(cam, 0, 0.1)
	if !near(c.Target.Y, 0.5) {
		t.Fatalf("Target.Y = %v, want 0.5", c.Target.Y)
	}
}
