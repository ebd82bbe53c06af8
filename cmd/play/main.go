// Command play synthesizes a detuned chord with the f32 kernel and plays it
// through the default output device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfcm/fmath/f32"
	"github.com/pfcm/fmath/io"
	"github.com/pfcm/fmath/osc"
)

var (
	noteFlag    = flag.Float64("note", 57, "root MIDI note of the chord")
	profileFlag = flag.Bool("profile", false, "whether to write pprof profiles to the current working directory")
	writeFlag   = flag.Bool("write", false, "if true, writes the output to a wav file in the current directory")
)

// chord mixes a handful of oscillators into one channel and keeps a smoothed
// RMS estimate for the meter goroutine.
type chord struct {
	oscs    []*osc.Table
	scratch []float32

	mu  sync.Mutex
	rms float32
}

func newChord(root float32) *chord {
	// Root, fifth and octave, with slightly detuned pairs to thicken it.
	var oscs []*osc.Table
	for _, nn := range []float32{0, 0.05, 7, 7.05, 12} {
		oscs = append(oscs, osc.Sine(io.SampleRate, osc.Note(root+nn)))
	}
	return &chord{
		oscs:    oscs,
		scratch: make([]float32, 4096),
	}
}

func (c *chord) Channels() int { return 1 }

func (c *chord) Fill(out []float32) {
	for i := range out {
		out[i] = 0
	}
	gain := 1 / float32(len(c.oscs))
	for _, o := range c.oscs {
		s := c.scratch[:len(out)]
		o.Fill(s)
		for i, v := range s {
			out[i] += v * gain
		}
	}

	var acc float32
	for _, v := range out {
		acc += v * v
	}
	acc /= float32(len(out))
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rms = f32.Lerp(f32.Sqrt(acc), c.rms, 0.99)
}

func (c *chord) getRMS() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rms
}

func main() {
	flag.Parse()

	if *profileFlag {
		finish, err := startProfiles()
		if err != nil {
			log.Fatalf("Starting profiling: %v", err)
		}
		defer func() {
			if err := finish(); err != nil {
				log.Fatalf("Finishing profiles: %v", err)
			}
		}()
	}
	var filename string
	if *writeFlag {
		filename = fmt.Sprintf("out-%d.wav", time.Now().Unix())
		fmt.Fprintf(os.Stderr, "Writing output to %q\n", filename)
	}

	g, ctx := errgroup.WithContext(interruptContext())

	c := newChord(float32(*noteFlag))

	g.Go(func() error {
		return io.Play(ctx, c, filename)
	})
	g.Go(func() error {
		t0 := time.Now()
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				fmt.Printf("\r%.4f: %.2f", time.Since(t0).Seconds(), c.getRMS())
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}

func startProfiles() (func() error, error) {
	cpu, err := os.Create("cpu.pprof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpu); err != nil {
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}

	mem, err := os.Create("mem.pprof")
	if err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := cpu.Close(); err != nil {
			return err
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(mem); err != nil {
			return err
		}
		return mem.Close()
	}, nil
}
