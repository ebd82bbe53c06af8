package f32

import "testing"

func TestBitsRoundTrip(t *testing.T) {
	// Finite values round-trip exactly, bit for bit.
	for _, f := range []float32{
		0, 1, -1, 0.5, -0.5, 1e-38, -1e-38, 3.4e38, -3.4e38,
		Pi, -Tau, Epsilon, maxExactInt, -maxExactInt,
	} {
		got := FromBits(Bits(f))
		if got != f {
			t.Errorf("FromBits(Bits(%v)) = %v, want: %v", f, got, f)
		}
	}
}

func TestBitsRoundTripPatterns(t *testing.T) {
	// Every pattern survives the trip, including NaN payloads and both
	// infinities, which don't compare equal as floats.
	for _, u := range []uint32{
		0, 0x80000000, // +0, -0
		infBits, negInfBits,
		nanBits, 0x7F800001, 0xFFC00000, // NaNs
		0x00000001, 0x007FFFFF, // subnormals
		0x3F800000, 0xBF800000, // +1, -1
	} {
		got := Bits(FromBits(u))
		if got != u {
			t.Errorf("Bits(FromBits(%#x)) = %#x, want: %#x", u, got, u)
		}
	}
}

func TestBitField(t *testing.T) {
	for _, c := range []struct {
		f    float32
		bits uint32
	}{
		{1.0, 0x3F800000},
		{-1.0, 0xBF800000},
		{2.0, 0x40000000},
		{0.5, 0x3F000000},
		{0, 0x00000000},
	} {
		if got := Bits(c.f); got != c.bits {
			t.Errorf("Bits(%v) = %#x, want: %#x", c.f, got, c.bits)
		}
	}
}
