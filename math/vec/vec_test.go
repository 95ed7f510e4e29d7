// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Add(NULL, v); v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got := Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Sub(v, v); got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got := Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Scale(2, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Scale(2,%v) = %v want %v", v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := NULL.Normalize(); got != NULL {
		t.Errorf("Normalize(%v) = %v want %v", NULL, got, NULL)
	}
	v := Vec3{0, 0, 5}
	if got, want := v.Normalize(), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Normalize(%v) = %v want %v", v, got, want)
	}
}

func TestDotCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := Dot(x, y); got != 0 {
		t.Errorf("Dot(%v,%v) = %v want 0", x, y, got)
	}
	if got, want := Cross(x, y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, want)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 8}
	if got, want := Lerp(a, b, 0.5), (Vec3{1, 2, 4}); got != want {
		t.Errorf("Lerp(%v,%v,0.5) = %v want %v", a, b, got, want)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{4, 2, 3}
	mi, ma := MinMax(a, b)
	if mi != (Vec3{1, 2, 3}) || ma != (Vec3{4, 5, 3}) {
		t.Errorf("MinMax(%v,%v) = %v,%v", a, b, mi, ma)
	}
}

func TestVec2(t *testing.T) {
	got := Add2(Vec2{1, 2}, Scale2(2, Vec2{1, 1}))
	if want := (Vec2{3, 4}); got != want {
		t.Errorf("Add2 = %v want %v", got, want)
	}
}
