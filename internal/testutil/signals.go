package testutil

import (
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// CosineWave returns t -> cos(2*pi*freqHz*t).
func CosineWave(freqHz float64) core.WaveFunc {
	return func(t float64) float64 {
		return math.Cos(2 * math.Pi * freqHz * t)
	}
}

// SineWave returns t -> sin(2*pi*freqHz*t).
func SineWave(freqHz float64) core.WaveFunc {
	return func(t float64) float64 {
		return math.Sin(2 * math.Pi * freqHz * t)
	}
}

// Constant returns a function that ignores t.
func Constant(value float64) core.WaveFunc {
	return func(float64) float64 { return value }
}

// DeterministicSine samples a sine wave at the given rate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
