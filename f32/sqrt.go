package f32

// InvSqrt computes 1/sqrt(x): halve the biased exponent with the classic
// magic subtraction, then refine with one Newton-Raphson step. Inputs <= 0
// return 0, matching Sqrt rather than feeding garbage bits to the estimate.
func InvSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	half := 0.5 * x
	y := FromBits(0x5f3759df - Bits(x)>>1)
	y = y * (1.5 - half*y*y)
	return y
}

// Sqrt computes the square root from the inverse estimate, refined with one
// more Newton-Raphson step on the direct quotient form. Inputs <= 0 return 0.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x * InvSqrt(x)
	return 0.5 * (guess + x/guess)
}

// Hypot returns sqrt(x*x + y*y) without overflowing intermediate squares:
// factor out the larger magnitude and work on the ratio. Hypot(0, 0) is 0.
func Hypot(x, y float32) float32 {
	x = Abs(x)
	y = Abs(y)
	lo := Min(x, y)
	hi := Max(x, y)
	if hi == 0 {
		return 0
	}
	r := lo / hi
	return hi * Sqrt(1+r*r)
}
