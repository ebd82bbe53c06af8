package f32

import "golang.org/x/exp/constraints"

// Interpolation helpers. These are pure algebra with no bit tricks, so they
// are generic over float width; the kernel itself only ever instantiates them
// at float32.

// Lerp interpolates linearly between a and b:
//
//	Lerp(a, b, t) = (1-t)*a + t*b
//
// The a + t*(b-a) form saves a multiply but loses the guarantee that t=1
// lands exactly on b, so the two-product form is used here.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// InvLerp returns where v sits between a and b, the inverse of Lerp. The
// result is unguarded when a == b; callers keep the endpoints apart.
func InvLerp[T constraints.Float](a, b, v T) T {
	return (v - a) / (b - a)
}

// Remap takes v from the range [inMin, inMax] into [outMin, outMax].
func Remap[T constraints.Float](inMin, inMax, outMin, outMax, v T) T {
	return Lerp(outMin, outMax, InvLerp(inMin, inMax, v))
}

// Step is the threshold indicator: 0 below edge, 1 at or above it.
func Step[T constraints.Float](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// Smoothstep applies the cubic Hermite 3t²-2t³ to the clamped normalized
// input, easing in and out of the [edge0, edge1] transition.
func Smoothstep[T constraints.Float](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Smootherstep is the quintic variant 6t⁵-15t⁴+10t³, with zero second
// derivatives at both edges.
func Smootherstep[T constraints.Float](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}
