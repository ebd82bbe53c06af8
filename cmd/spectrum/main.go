// Command spectrum runs the DFT demo: synthesize a small test signal with the
// f32 kernel, transform it, and print the frequency table.
package main

import (
	"flag"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/fmath/dft"
	"github.com/pfcm/fmath/f32"
)

var (
	samplesFlag = flag.Int("samples", 16, "number of samples (the DFT is O(N²), keep it small)")
	rateFlag    = flag.Float64("rate", 16, "sample rate in Hz")
)

func main() {
	flag.Parse()

	n := *samplesFlag
	rate := float32(*rateFlag)
	p := message.NewPrinter(language.English)

	// A 1 Hz sine plus a 4 Hz cosine plus a DC offset.
	signal := make([]float32, n)
	p.Printf("Input signal (time domain):\n")
	for i := range signal {
		t := float32(i) / rate
		signal[i] = 2*f32.Sin(f32.Tau*1*t) + 1*f32.Cos(f32.Tau*4*t) + 0.5
		p.Printf("  t=%.2fs: %.2f\n", t, signal[i])
	}

	bins := dft.Analyze(signal, rate)

	p.Printf("\nOutput (frequency domain):\n")
	p.Printf("Freq(Hz) | Mag   | Phase(rad) | dB\n")
	p.Printf("---------|-------|------------|------\n")
	for _, b := range bins {
		db := dft.DB(b.Mag)
		if f32.IsInf(db) {
			p.Printf("%8.2f | %.3f | %10.4f |   -inf\n", b.Freq, b.Mag, b.Phase)
			continue
		}
		p.Printf("%8.2f | %.3f | %10.4f | %6.1f\n", b.Freq, b.Mag, b.Phase, db)
	}
}
