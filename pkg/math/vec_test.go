package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	l := n.Length()
	if math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Midpoint(t *testing.T) {
	got := Vec3{0, 0, 0}.Midpoint(Vec3{1, 2, -4})
	want := Vec3{0.5, 1, -2}
	if got != want {
		t.Errorf("Vec3.Midpoint() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{3, 5, -1}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !got.ApproxEqual(a.Midpoint(b), 1e-12) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, a.Midpoint(b))
	}
}

func TestVec3Float32(t *testing.T) {
	got := Vec3{0.5, -1.25, 2}.Float32()
	want := [3]float32{0.5, -1.25, 2}
	if got != want {
		t.Errorf("Float32() = %v, want %v", got, want)
	}
}
