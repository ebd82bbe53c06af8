// package buffer provides an interpolating wavetable ring.
package buffer

import "github.com/pfcm/fmath/f32"

// Ring is a fixed table of samples read at fractional positions. Reads wrap,
// so positions only need to be non-negative and below Len.
type Ring struct {
	buf []float32
}

// NewRing wraps the provided samples. The slice is retained, not copied.
func NewRing(samples []float32) *Ring {
	return &Ring{buf: samples}
}

// Len returns the table size.
func (r *Ring) Len() int { return len(r.buf) }

// At reads the table at a fractional position, linearly interpolating between
// the two neighbouring samples.
func (r *Ring) At(pos float32) float32 {
	i := int(f32.Floor(pos))
	j := (i + 1) % len(r.buf)
	return f32.Lerp(r.buf[i], r.buf[j], f32.Fract(pos))
}

// NearestAt reads the table at a fractional position without interpolating,
// for tables where blending adjacent samples is wrong (hard-edged waves).
func (r *Ring) NearestAt(pos float32) float32 {
	return r.buf[int(f32.Floor(pos))]
}
