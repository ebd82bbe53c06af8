package f32

import "testing"

func TestAbs(t *testing.T) {
	for _, c := range []struct {
		in, out float32
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{-0.25, 0.25},
		{-3.4e38, 3.4e38},
	} {
		if got := Abs(c.in); got != c.out {
			t.Errorf("Abs(%v) = %v, want: %v", c.in, got, c.out)
		}
	}
	// Abs(-x) == Abs(x) and both non-negative.
	for _, x := range []float32{0, 0.1, 1, 2.5, 1e20} {
		if Abs(x) < 0 || Abs(-x) != Abs(x) {
			t.Errorf("Abs(%v) = %v, Abs(%v) = %v", x, Abs(x), -x, Abs(-x))
		}
	}
}

func TestSign(t *testing.T) {
	for _, c := range []struct {
		in, out float32
	}{
		{2.5, 1},
		{-0.001, -1},
		{0, 0},
		{FromBits(0x80000000), 0}, // -0
	} {
		if got := Sign(c.in); got != c.out {
			t.Errorf("Sign(%v) = %v, want: %v", c.in, got, c.out)
		}
	}
}

func TestCopysign(t *testing.T) {
	for _, c := range []struct {
		x, y, out float32
	}{
		{1, -2, -1},
		{-1, 2, 1},
		{3.5, -0.0001, -3.5},
		{0, -1, FromBits(0x80000000)},
	} {
		got := Copysign(c.x, c.y)
		if Bits(got) != Bits(c.out) {
			t.Errorf("Copysign(%v, %v) = %v, want: %v", c.x, c.y, got, c.out)
		}
	}
}

func TestClassify(t *testing.T) {
	for _, c := range []struct {
		in       float32
		nan, inf bool
	}{
		{0, false, false},
		{1, false, false},
		{Inf(), false, true},
		{NegInf(), false, true},
		{NaN(), true, false},
		{FromBits(0x7F800001), true, false},
		{3.4e38, false, false},
	} {
		if got := IsNaN(c.in); got != c.nan {
			t.Errorf("IsNaN(%v) = %v, want: %v", c.in, got, c.nan)
		}
		if got := IsInf(c.in); got != c.inf {
			t.Errorf("IsInf(%v) = %v, want: %v", c.in, got, c.inf)
		}
	}
}

func TestIsNear(t *testing.T) {
	for _, c := range []struct {
		a, b, tol float32
		out       bool
	}{
		{1, 1.0005, 0.001, true},
		{1, 1.002, 0.001, false},
		{-1, 1, 2, true},
		{0, 0, 0, true},
	} {
		if got := IsNear(c.a, c.b, c.tol); got != c.out {
			t.Errorf("IsNear(%v, %v, %v) = %v, want: %v", c.a, c.b, c.tol, got, c.out)
		}
	}
}

func TestClamp(t *testing.T) {
	for _, c := range []struct {
		x, lo, hi, out float32
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	} {
		got := Clamp(c.x, c.lo, c.hi)
		if got != c.out {
			t.Errorf("Clamp(%v, %v, %v) = %v, want: %v", c.x, c.lo, c.hi, got, c.out)
		}
		// Clamping is idempotent.
		if again := Clamp(got, c.lo, c.hi); again != got {
			t.Errorf("Clamp(Clamp) = %v, want: %v", again, got)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(float32(2), 3); got != 2 {
		t.Errorf("Min(2, 3) = %v, want: 2", got)
	}
	if got := Max(float32(2), 3); got != 3 {
		t.Errorf("Max(2, 3) = %v, want: 3", got)
	}
	if got := Min(-1, 1); got != -1 {
		t.Errorf("Min(-1, 1) = %v, want: -1", got)
	}
}
