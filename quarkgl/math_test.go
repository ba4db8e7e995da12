package quarkgl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestLookAtMovesTargetOntoAxis(t *testing.T) {
	eye := V3(2, 1, 5)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulPoint(m, V3(0, 0, 0))
	if !near(p.X, 0) || !near(p.Y, 0) {
		t.Fatalf("target in view space = %+v, want on -Z axis", p)
	}
	if !near(p.Z, -Len(eye)) {
		t.Fatalf("target depth = %v, want %v", p.Z, -Len(eye))
	}
}

func TestMat4MulDirIgnoresTranslation(t *testing.T) {
	m := Mat4Translate(V3(5, 5, 5))
	if got := Mat4MulDir(m, V3(0, 1, 0)); got != V3(0, 1, 0) {
		t.Fatalf("Mat4MulDir() = %+v, want (0,1,0)", got)
	}
}

func TestPerspectiveAspect(t *testing.T) {
	m := Mat4Perspective(DegToRad(90), 2, 0.1, 100)
	if !near(m[5], 1) {
		t.Fatalf("m[5] = %v, want 1", m[5])
	}
	if !near(m[0], 0.5) {
		t.Fatalf("m[0] = %v, want 0.5", m[0])
	}
}

func near(a, b Scalar) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestRotateYQuarterTurn(t *testing.T) {
	got := Mat4MulPoint(Mat4RotateY(DegToRad(90)), V3(0, 0, 1))
	if !near(got.X, 1) || !near(got.Y, 0) || !near(got.Z, 0) {
		t.Fatalf("RotateY(90)*(0,0,1) = %+v, want (1,0,0)", got)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	got := Mat4MulPoint(Mat4RotateX(DegToRad(90)), V3(0, 1, 0))
	if !near(got.X, 0) || !near(got.Y, 0) || !near(got.Z, 1) {
		t.Fatalf("RotateX(90)*(0,1,0) = %+v, want (0,0,1)", got)
	}
}

func TestMat4MulAppliesRightFirst(t *testing.T) {
	m := Mat4Mul(Mat4Translate(V3(1, 0, 0)), Mat4RotateY(DegToRad(90)))
	got := Mat4MulPoint(m, V3(0, 0, 1))
	if !near(got.X, 2) || !near(got.Z, 0) {
		t.Fatalf("(T*R)*(0,0,1) = %+v, want (2,0,0)", got)
	}
}

func TestLerp3AndClamp(t *testing.T) {
	if got := Lerp3(V3(0, 0, 0), V3(2, 4, 6), 0.5); got != V3(1, 2, 3) {
		t.Fatalf("Lerp3() = %+v, want (1,2,3)", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Fatalf("Clamp01(1.5) = %v, want 1", got)
	}
	if got := Clamp01(-0.5); got != 0 {
		t.Fatalf("Clamp01(-0.5) = %v, want 0", got)
	}
}
