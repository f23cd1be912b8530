package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Sample evaluates f at i/sampleRate for i in [0, sampleRate*durationSeconds).
// The buffer is freshly allocated.
func Sample(f core.WaveFunc, sampleRate int, durationSeconds float64) ([]float64, error) {
	n, err := sampleCount(f, sampleRate, durationSeconds)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	fill(out, 0, f, sampleRate)
	return out, nil
}

func sampleCount(f core.WaveFunc, sampleRate int, durationSeconds float64) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("signal: function must not be nil: %w", core.ErrInvalidArgument)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("signal: sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidArgument)
	}
	if err := core.RequirePositive("signal: duration", durationSeconds); err != nil {
		return 0, err
	}

	count := float64(sampleRate) * durationSeconds
	if count >= math.MaxInt {
		return 0, fmt.Errorf("signal: %v s at %d Hz exceeds the addressable sample count: %w",
			durationSeconds, sampleRate, core.ErrInvalidArgument)
	}
	n := int(count)
	if n < 1 {
		return 0, fmt.Errorf("signal: %v s at %d Hz is shorter than one sample: %w",
			durationSeconds, sampleRate, core.ErrInvalidArgument)
	}
	return n, nil
}

// fill writes f at sample indices offset, offset+1, ... into dst.
func fill(dst []float64, offset int, f core.WaveFunc, sampleRate int) {
	rate := float64(sampleRate)
	for i := range dst {
		dst[i] = f(float64(offset+i) / rate)
	}
}
