package quarkgl

import "testing"

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"skyblue":  RGB(0x87, 0xce, 0xeb),
		"#ff0000":  RGB(0xff, 0, 0),
		"0xddeeff": RGB(0xdd, 0xee, 0xff),
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", in, got, want)
		}
	}
	if _, err := ParseColor("chartreuse-ish"); err == nil {
		t.Fatalf("ParseColor(bad) error = nil, want error")
	}
}

func TestLinearEndpoints(t *testing.T) {
	if got := Hex(0xffffff).Linear(); !near(got.X, 1) || !near(got.Y, 1) || !near(got.Z, 1) {
		t.Fatalf("white Linear() = %+v, want (1,1,1)", got)
	}
	if got := Hex(0).Linear(); got != (Vec3{}) {
		t.Fatalf("black Linear() = %+v, want zero", got)
	}
}

func TestEncodeGamma(t *testing.T) {
	if got := EncodeGamma(V3(1, 0, 2), 2.2); got != RGB(255, 0, 255) {
		t.Fatalf("EncodeGamma() = %+v, want clamped (255,0,255)", got)
	}
	mid := EncodeGamma(V3(0.25, 0.25, 0.25), 2)
	if mid.R != 128 {
		t.Fatalf("EncodeGamma(0.25, 2).R = %d, want 128", mid.R)
	}
}
