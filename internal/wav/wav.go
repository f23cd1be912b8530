// Package wav writes sample buffers as 16-bit PCM WAV files.
package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	gowav "github.com/youpy/go-wav"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

const bitsPerSample = 16

// Encode returns a mono WAV image of samples.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	return EncodeChannels(samples, sampleRate, 1)
}

// EncodeChannels returns a WAV image with every sample copied to each of the
// given number of channels (1 or 2).
func EncodeChannels(samples []float64, sampleRate, channels int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, samples, sampleRate, channels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes samples to w. Values outside [-1, 1] are clipped to full
// scale.
func Write(w io.Writer, samples []float64, sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav: sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidArgument)
	}
	if channels < 1 || channels > 2 {
		return fmt.Errorf("wav: channels must be 1 or 2: %d: %w", channels, core.ErrInvalidArgument)
	}
	if uint64(len(samples)) > math.MaxUint32/uint64(channels*bitsPerSample/8) {
		return fmt.Errorf("wav: %d samples exceed the RIFF size limit: %w", len(samples), core.ErrInvalidArgument)
	}

	frames := make([]gowav.Sample, len(samples))
	for i, s := range samples {
		v := PCM16(s)
		frames[i] = gowav.Sample{Values: [2]int{v, v}}
	}

	ww := gowav.NewWriter(w, uint32(len(samples)), uint16(channels), uint32(sampleRate), bitsPerSample)
	if err := ww.WriteSamples(frames); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// PCM16 converts a float sample to a signed 16-bit value.
func PCM16(s float64) int {
	return int(math.Round(core.Clamp(s, -1, 1) * math.MaxInt16))
}

// WriteFile encodes samples as mono PCM and writes them to path.
func WriteFile(path string, samples []float64, sampleRate int) error {
	data, err := Encode(samples, sampleRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
