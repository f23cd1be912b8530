package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f: %w", targetPeak, core.ErrInvalidArgument)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w", core.ErrInvalidArgument)
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

// Clip limits every sample to [lo, hi] and returns a new slice.
func Clip(data []float64, lo, hi float64) ([]float64, error) {
	if lo > hi {
		return nil, fmt.Errorf("signal: clip range must satisfy lo <= hi: %f > %f: %w", lo, hi, core.ErrInvalidArgument)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = math.Min(math.Max(v, lo), hi)
	}
	return out, nil
}

// RemoveDC subtracts the mean and returns a new slice.
func RemoveDC(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: remove DC input must not be empty: %w", core.ErrInvalidArgument)
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out, nil
}
