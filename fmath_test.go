package fmath

import (
	"testing"

	"github.com/pfcm/fmath/f32"
)

// The acceptance checks from the original example programs, through the
// short-name layer.

func TestHypotenuse(t *testing.T) {
	if got := Hypot(3, 4); !IsNear(got, 5, 5e-3) {
		t.Errorf("Hypot(3, 4) = %v, want: ~5", got)
	}
	if got := InvSqrt(25); !IsNear(got, 0.2, 1e-2) {
		t.Errorf("InvSqrt(25) = %v, want: ~0.2", got)
	}
}

func TestProjectile(t *testing.T) {
	theta := Deg2Rad(45)
	flightTime := 2 * 50 * Sin(theta) / 9.81
	if !IsNear(flightTime, 7.207, 1e-2) {
		t.Errorf("flight time = %v, want: ~7.207", flightTime)
	}
	maxHeight := Pow(50, 2) * Pow(Sin(theta), 2) / (2 * 9.81)
	if !IsNear(maxHeight, 63.71, 0.5) {
		t.Errorf("max height = %v, want: ~63.71", maxHeight)
	}
}

func TestGameMath(t *testing.T) {
	pos := Vec2{X: 10, Y: 5}.Add(Vec2{X: 1, Y: 0})
	if pos != (Vec2{X: 11, Y: 5}) {
		t.Errorf("moved position = %v, want: (11, 5)", pos)
	}

	if got := Remap(0, 100, 0, 1, 50); got != 0.5 {
		t.Errorf("Remap(0, 100, 0, 1, 50) = %v, want: 0.5", got)
	}

	right := Vec3{X: 1}
	up := Vec3{Y: 1}
	cr := right.Cross(up)
	if !IsNear(cr.X, 0, 1e-6) || !IsNear(cr.Y, 0, 1e-6) || !IsNear(cr.Z, 1, 1e-6) {
		t.Errorf("cross(right, up) = %v, want: (0, 0, 1)", cr)
	}
	if got := (Vec3{X: 3, Y: 4, Z: 0}).Norm().Len(); !IsNear(got, 1, 1e-3) {
		t.Errorf("normalized length = %v, want: ~1", got)
	}
}

func TestShortNamesAgree(t *testing.T) {
	// The alias layer delegates, it never reimplements.
	for _, x := range []float32{0, 0.5, 1, Pi, -2.75} {
		if Sin(x) != f32.Sin(x) || Sqrt(x+3) != f32.Sqrt(x+3) {
			t.Errorf("short names disagree with f32 at %v", x)
		}
	}
	if got := Lerp(0, 100, 0.5); got != 50 {
		t.Errorf("Lerp(0, 100, 0.5) = %v, want: 50", got)
	}
	if got := InvLerp(0, 100, 25); got != 0.25 {
		t.Errorf("InvLerp(0, 100, 25) = %v, want: 0.25", got)
	}
}
