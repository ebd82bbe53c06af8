package f32

// maxExactInt is the smallest float32 magnitude at which not every integer is
// exactly representable (2^23). At or beyond it a float32 has no fractional
// part, so the rounding functions return their input unchanged. It also keeps
// the int32 conversions below in range.
const maxExactInt = 1 << mantBits

// Floor returns the largest integer value not greater than x.
func Floor(x float32) float32 {
	if Abs(x) >= maxExactInt {
		return x
	}
	i := float32(int32(x))
	if x < 0 && x != i {
		return i - 1
	}
	return i
}

// Ceil returns the smallest integer value not less than x.
func Ceil(x float32) float32 {
	if Abs(x) >= maxExactInt {
		return x
	}
	i := float32(int32(x))
	if x > 0 && x != i {
		return i + 1
	}
	return i
}

// Round rounds half away from zero.
func Round(x float32) float32 {
	if x >= 0 {
		return Floor(x + 0.5)
	}
	return Ceil(x - 0.5)
}

// Fract returns the fractional part x - Floor(x), always in [0, 1).
func Fract(x float32) float32 {
	return x - Floor(x)
}

// Fmod is the truncating remainder of x/y; the result has the sign of x.
// Divisors smaller than Epsilon in magnitude yield 0 rather than a blow-up.
func Fmod(x, y float32) float32 {
	if Abs(y) < Epsilon {
		return 0
	}
	q := x / y
	// A quotient past 2^23 has no fractional part left to recover a
	// remainder from, and would take the int32 conversion out of range.
	if Abs(q) >= maxExactInt {
		return 0
	}
	return x - y*float32(int32(q))
}

// Mod is the Euclidean remainder of x/y; the result has the sign of y. Same
// divisor guard as Fmod.
func Mod(x, y float32) float32 {
	if Abs(y) < Epsilon {
		return 0
	}
	return x - y*Floor(x/y)
}
