// package dft implements a discrete Fourier transform over the f32 kernel's
// trigonometry. It exists for the signal analysis demo; the basis vectors are
// generated with f32.Sin/f32.Cos so the spectrum is deterministic wherever
// the kernel is.
package dft

import "github.com/pfcm/fmath/f32"

// Bin is one frequency bin of an analyzed signal.
type Bin struct {
	Freq  float32 // bin centre in Hz
	Mag   float32 // normalized magnitude
	Phase float32 // radians in (-π, π]
}

// Analyze transforms a real signal into its len(signal)/2+1 frequency bins.
// Magnitudes are normalized so a unit sine contributes 1 to its bin; the DC
// and Nyquist bins, which have no mirror image, are halved accordingly.
// TODO: use an algorithm that isn't O(N²).
func Analyze(signal []float32, samplerate float32) []Bin {
	n := len(signal)
	bins := make([]Bin, n/2+1)
	for k := range bins {
		var re, im float32
		for i, s := range signal {
			// e^(-iθ) = cos θ - i sin θ
			angle := -f32.Tau * float32(k) * float32(i) / float32(n)
			re += s * f32.Cos(angle)
			im += s * f32.Sin(angle)
		}
		mag := f32.Hypot(re, im)
		if k == 0 || k == n/2 {
			mag /= float32(n)
		} else {
			mag /= float32(n) / 2
		}
		bins[k] = Bin{
			Freq:  float32(k) * samplerate / float32(n),
			Mag:   mag,
			Phase: f32.Atan2(im, re),
		}
	}
	return bins
}

const ln10 = 2.302585093

// DB converts a magnitude to decibels: 20·log10(mag). Magnitudes at or below
// zero hit the logarithm's sentinel and come back as negative infinity.
func DB(mag float32) float32 {
	return 20 * f32.Log(mag) * (1 / ln10)
}
