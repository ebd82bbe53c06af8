package f32

// Minimax coefficients for sin on [-π/2, π/2], odd terms through x⁹.
const (
	sinC0 = -0.1666666664
	sinC1 = 0.0083333315
	sinC2 = -0.0001984090
	sinC3 = 0.0000027526
)

// Sin computes the sine. The input is first reduced to one period by
// subtracting the nearest multiple of τ, then folded into [-π/2, π/2] by
// reflecting across ±π; the polynomial is only valid on that interval, so the
// two-stage reduction is what bounds the error.
func Sin(x float32) float32 {
	q := Round(x * (1 / Tau))
	x -= q * Tau

	if x > HalfPi {
		x = Pi - x
	} else if x < -HalfPi {
		x = -Pi - x
	}

	x2 := x * x
	return x * (1 + x2*(sinC0+x2*(sinC1+x2*(sinC2+x2*sinC3))))
}

// Cos is the phase-shifted sine, sharing a single polynomial.
func Cos(x float32) float32 {
	return Sin(x + HalfPi)
}

// Tan computes sin/cos. Near the asymptotes, where the cosine magnitude drops
// below 1e-5, it returns 0 rather than an enormous ratio.
func Tan(x float32) float32 {
	c := Cos(x)
	if Abs(c) < 1e-5 {
		return 0
	}
	return Sin(x) / c
}

// Atan computes the arctangent. The sign is normalized out first, then inputs
// above 1 are folded through atan(x) = π/2 - atan(1/x) so the minimax
// polynomial only ever sees [0, 1].
func Atan(x float32) float32 {
	sign := float32(1)
	if x < 0 {
		x = -x
		sign = -1
	}
	complement := x > 1
	if complement {
		x = 1 / x
	}
	x2 := x * x
	y := x * (0.99997726 + x2*(-0.33262347+x2*(0.19354346+
		x2*(-0.11643287+x2*(0.05265332-x2*0.01172120)))))
	if complement {
		y = HalfPi - y
	}
	return sign * y
}

// Atan2 computes the angle of the point (x, y) in (-π, π]. A zero x maps to
// ±π/2 (or 0 at the origin); otherwise the atan of the ratio is corrected by
// ±π in the left half-plane, signed by y.
func Atan2(y, x float32) float32 {
	if x == 0 {
		if y > 0 {
			return HalfPi
		}
		if y < 0 {
			return -HalfPi
		}
		return 0
	}
	res := Atan(y / x)
	if x < 0 {
		if y >= 0 {
			res += Pi
		} else {
			res -= Pi
		}
	}
	return res
}

// Asin clamps the input to [-1, 1] and goes through the arctangent identity
// asin(x) = atan(x / sqrt(1-x²)).
func Asin(x float32) float32 {
	x = Clamp(x, float32(-1), float32(1))
	return Atan(x / Sqrt(1-x*x))
}

// Acos is the complement of Asin.
func Acos(x float32) float32 {
	return HalfPi - Asin(x)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float32) float32 {
	return deg * (Pi / 180)
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float32) float32 {
	return rad * (180 / Pi)
}
