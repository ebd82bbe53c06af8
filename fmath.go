// package fmath re-exports the f32 kernel and the vector types under short
// unqualified names, for callers who want maximum terseness. It is a pure
// alias layer: nothing is implemented here, and the kernel never imports it.
// The kernel packages themselves always use fully qualified f32 names.
package fmath

import (
	"github.com/pfcm/fmath/f32"
	"github.com/pfcm/fmath/vec"
)

const (
	Pi      = f32.Pi
	Tau     = f32.Tau
	HalfPi  = f32.HalfPi
	E       = f32.E
	Ln2     = f32.Ln2
	Epsilon = f32.Epsilon
	Sqrt2   = f32.Sqrt2
)

// Vec2 and Vec3 are the vector layer's types.
type (
	Vec2 = vec.V2
	Vec3 = vec.V3
)

// Bit view and classification.
var (
	Bits     = f32.Bits
	FromBits = f32.FromBits
	Inf      = f32.Inf
	NegInf   = f32.NegInf
	NaN      = f32.NaN
	IsNaN    = f32.IsNaN
	IsInf    = f32.IsInf
	IsNear   = f32.IsNear
)

// Arithmetic, rounding and roots.
var (
	Abs      = f32.Abs
	Sign     = f32.Sign
	Copysign = f32.Copysign
	Min      = f32.Min[float32]
	Max      = f32.Max[float32]
	Clamp    = f32.Clamp[float32]
	Floor    = f32.Floor
	Ceil     = f32.Ceil
	Round    = f32.Round
	Fract    = f32.Fract
	Fmod     = f32.Fmod
	Mod      = f32.Mod
	Sqrt     = f32.Sqrt
	InvSqrt  = f32.InvSqrt
	Hypot    = f32.Hypot
	Log      = f32.Log
	Log2     = f32.Log2
	Exp      = f32.Exp
	Pow      = f32.Pow
)

// Trigonometry.
var (
	Sin     = f32.Sin
	Cos     = f32.Cos
	Tan     = f32.Tan
	Asin    = f32.Asin
	Acos    = f32.Acos
	Atan    = f32.Atan
	Atan2   = f32.Atan2
	Deg2Rad = f32.Deg2Rad
	Rad2Deg = f32.Rad2Deg
)

// Interpolation.
var (
	Lerp         = f32.Lerp[float32]
	InvLerp      = f32.InvLerp[float32]
	Remap        = f32.Remap[float32]
	Step         = f32.Step[float32]
	Smoothstep   = f32.Smoothstep[float32]
	Smootherstep = f32.Smootherstep[float32]
)
