package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got, want := a.Dot(b), float32(12); got != want {
		t.Errorf("Vec3.Dot() = %v, want %v", got, want)
	}
}

func TestMat4IdentityMul(t *testing.T) {
	m := Perspective(1.0, 1.6, 0.1, 1000)
	got := Identity().Mul(m)
	if got != m {
		t.Errorf("Identity().Mul(m) = %v, want %v", got, m)
	}
}

func TestMat4LookAtOrigin(t *testing.T) {
	// Camera at +Z looking at the origin maps the origin in front of the
	// camera (negative view-space Z).
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})

	// Transform the origin: column-major, w = 1.
	z := view[2]*0 + view[6]*0 + view[10]*0 + view[14]
	if z >= 0 {
		t.Errorf("origin view-space z = %v, want negative (in front of camera)", z)
	}
}
