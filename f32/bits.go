// package f32 is a self-contained float32 math kernel. Every elementary
// function here is built from bit manipulation, polynomial approximation and
// Newton-Raphson refinement rather than the platform math library, so results
// are deterministic across architectures. All functions are pure; there is no
// state anywhere.
package f32

import "math"

// Useful constants, single precision flavoured.
const (
	Pi      = 3.14159265358979323846
	Tau     = 6.28318530717958647692
	HalfPi  = 1.57079632679489661923
	E       = 2.71828182845904523536
	Ln2     = 0.69314718056
	Epsilon = 1.19209290e-7
	Sqrt2   = 1.41421356237
)

// IEEE-754 single precision layout: 1 sign bit, 8 exponent bits, 23 mantissa
// bits, exponent bias 127.
const (
	signMask = 1 << 31
	expMask  = 0xFF << mantBits
	fracMask = 1<<mantBits - 1
	mantBits = 23
	expBias  = 127

	infBits    = 0x7F800000
	negInfBits = 0xFF800000
	nanBits    = 0x7FC00000
)

// Bits returns the IEEE-754 bit pattern of f. It is a reinterpretation, not a
// numeric conversion: defined for every input including NaNs and infinities,
// and exactly inverted by FromBits.
func Bits(f float32) uint32 { return math.Float32bits(f) }

// FromBits returns the float32 whose IEEE-754 bit pattern is u.
func FromBits(u uint32) float32 { return math.Float32frombits(u) }

// Inf returns positive infinity.
func Inf() float32 { return FromBits(infBits) }

// NegInf returns negative infinity.
func NegInf() float32 { return FromBits(negInfBits) }

// NaN returns a quiet not-a-number.
func NaN() float32 { return FromBits(nanBits) }
