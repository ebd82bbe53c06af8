package f32

import "golang.org/x/exp/constraints"

// Abs returns x with its sign bit cleared. No branching.
func Abs(x float32) float32 {
	return FromBits(Bits(x) &^ signMask)
}

// Sign returns 1 for positive x, -1 for negative x and 0 for zero. Negative
// zero counts as zero.
func Sign(x float32) float32 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Copysign combines the magnitude of x with the sign bit of y.
func Copysign(x, y float32) float32 {
	return FromBits(Bits(x)&^signMask | Bits(y)&signMask)
}

// IsNear reports whether a and b are within tol of each other.
func IsNear(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}

// IsNaN reports whether x is a not-a-number: exponent field all ones and a
// nonzero mantissa.
func IsNaN(x float32) bool {
	u := Bits(x)
	return u&expMask == expMask && u&fracMask != 0
}

// IsInf reports whether x is infinite, of either sign.
func IsInf(x float32) bool {
	return Bits(x)&^signMask == infBits
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
