// package osc provides wavetable oscillators built on the f32 kernel. The
// tables themselves are generated with the kernel's own trigonometry, so a
// rendered wave is bit-identical everywhere.
package osc

import (
	"github.com/pfcm/fmath/f32"
	"github.com/pfcm/fmath/internal/buffer"
)

// Table is a wavetable oscillator: a ring of samples swept at a rate derived
// from the requested frequency. Not safe for concurrent use; the phase is the
// only state.
type Table struct {
	ring       *buffer.Ring
	phase      float32
	step       float32
	samplerate float32
	nearest    bool
}

// Sine returns a Table holding one cycle of a sine wave at the given
// frequency.
func Sine(samplerate, freq float32) *Table {
	const n = 128
	tab := make([]float32, n)
	for i := range tab {
		tab[i] = f32.Sin(f32.Tau * float32(i) / n)
	}
	t := &Table{
		ring:       buffer.NewRing(tab),
		samplerate: samplerate,
	}
	t.SetFreq(freq)
	return t
}

// Saw returns a Table holding one cycle of a rising sawtooth.
func Saw(samplerate, freq float32) *Table {
	const n = 256
	tab := make([]float32, n)
	for i := range tab {
		tab[i] = f32.Lerp(float32(-1), 1, float32(i)/n)
	}
	t := &Table{
		ring:       buffer.NewRing(tab),
		samplerate: samplerate,
		nearest:    true,
	}
	t.SetFreq(freq)
	return t
}

// SetFreq retunes the oscillator, keeping the current phase.
func (t *Table) SetFreq(freq float32) {
	// freq cycles per second, each cycle is one full table sweep.
	t.step = float32(t.ring.Len()) * freq / t.samplerate
}

// Fill renders the next len(out) samples into out.
func (t *Table) Fill(out []float32) {
	n := float32(t.ring.Len())
	for i := range out {
		if t.nearest {
			out[i] = t.ring.NearestAt(t.phase)
		} else {
			out[i] = t.ring.At(t.phase)
		}
		t.phase += t.step
		for t.phase >= n {
			t.phase -= n
		}
	}
}

// Note converts a MIDI note number into a frequency in Hz: equal temperament
// around A4 = 440 Hz at note 69.
func Note(nn float32) float32 {
	return 440 * f32.Pow(2, (nn-69)/12)
}
