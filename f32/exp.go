package f32

const invLn2 = 1.44269504088

// Float32 e^x overflows above and flushes to zero below these. Exp saturates
// explicitly instead of letting the exponent field wrap.
const (
	expOverflow  = 88.722839
	expUnderflow = -87.336544
)

// Log computes the natural logarithm. Inputs <= 0 return negative infinity.
//
// The exponent comes straight out of the bit pattern; forcing the stored
// exponent back to the bias leaves the mantissa m in [1, 2). With
// z = (m-1)/(m+1) the series log(m) = 2z + 2z³/3 + 2z⁵/5 + ... converges
// quickly on that interval; terms through z⁹ are enough at single precision.
func Log(x float32) float32 {
	if x <= 0 {
		return NegInf()
	}
	u := Bits(x)
	exponent := int32(u>>mantBits&0xFF) - expBias
	m := FromBits(u&fracMask | expBias<<mantBits)
	z := (m - 1) / (m + 1)
	z2 := z * z
	y := z * (2 + z2*(0.66666666+z2*(0.4+z2*(0.28571428+z2*0.22222222))))
	return float32(exponent)*Ln2 + y
}

// Log2 returns the base-2 logarithm, with the same domain guard as Log.
func Log2(x float32) float32 {
	return Log(x) * invLn2
}

// Exp computes e^x. The input is split as x = (n + r)·ln2 with n the nearest
// integer and |r| <= 1/2 in ln2 units; a cubic approximates e^(r·ln2) and n
// is added directly into the result's exponent field, which multiplies by 2^n
// without a multiply.
func Exp(x float32) float32 {
	if x >= expOverflow {
		return Inf()
	}
	if x <= expUnderflow {
		return 0
	}
	px := x * invLn2
	n := Round(px)
	r := (px - n) * Ln2
	r2 := r * r
	f := 1 + r + 0.5*r2 + 0.16666666*r*r2
	return FromBits(uint32(int32(Bits(f)) + int32(n)<<mantBits))
}

// Pow computes x^y as exp(y*log(x)). Non-positive bases return 0 (no complex
// or negative-base results); a zero exponent returns 1 for any base.
func Pow(x, y float32) float32 {
	if x <= 0 {
		return 0
	}
	if y == 0 {
		return 1
	}
	return Exp(y * Log(x))
}
