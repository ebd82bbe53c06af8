// package io does audio out.
package io

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gen2brain/malgo"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pfcm/fmath/f32"
)

// SampleRate is the fixed output rate.
const SampleRate = 44100

// Source generates audio. Fill writes the next len(out)/Channels() frames
// into out, interleaved.
type Source interface {
	// Channels returns the number of interleaved output channels.
	Channels() int
	// Fill renders the next chunk of samples into out.
	Fill(out []float32)
}

// Play renders src to the default output device until the context is
// cancelled. If filename is not "", the output is also written there as a
// 16 bit wav file.
func Play(ctx context.Context, src Source, filename string) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = uint32(src.Channels())
	cfg.SampleRate = SampleRate

	var enc *wav.Encoder
	var file *os.File
	if filename != "" {
		file, err = os.Create(filename)
		if err != nil {
			return err
		}
		enc = wav.NewEncoder(file, SampleRate, 16, src.Channels(), 1)
	}

	samples := make([]float32, 4096*src.Channels())
	ints := make([]int, len(samples))

	recv := func(out, _ []byte, framecount uint32) {
		if framecount == 0 {
			return
		}
		n := int(framecount) * src.Channels()
		chunk := samples[:n]
		src.Fill(chunk)

		// Reformat to the device's little-endian float32 layout.
		o := out[:0]
		for _, f := range chunk {
			o = binary.LittleEndian.AppendUint32(o, f32.Bits(f))
		}

		if enc != nil {
			buf := ints[:n]
			for i, f := range chunk {
				buf[i] = int(f32.Clamp(f, -1, 1) * 32767)
			}
			if err := enc.Write(&audio.IntBuffer{
				Format: &audio.Format{
					NumChannels: src.Channels(),
					SampleRate:  SampleRate,
				},
				Data:           buf,
				SourceBitDepth: 16,
			}); err != nil {
				panic(err)
			}
		}
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: recv,
	})
	if err != nil {
		return err
	}
	if err := device.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	device.Uninit()

	if enc != nil {
		if err := enc.Close(); err != nil {
			return err
		}
		return file.Close()
	}
	return nil
}
