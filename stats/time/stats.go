package time

import "math"

// Stats holds time-domain statistics of a sample buffer.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear), 0 for silence
	ZeroCrossings int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:  math.Inf(-1),
			Peak_dB: math.Inf(-1),
		}
	}

	var (
		sum, sumSq    float64
		maxVal        = signal[0]
		minVal        = signal[0]
		zeroCrossings int
	)
	for i, x := range signal {
		sum += x
		sumSq += x * x
		maxVal = math.Max(maxVal, x)
		minVal = math.Min(minVal, x)
		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	crest := 0.0
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           maxVal,
		Min:           minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		CrestFactor:   crest,
		ZeroCrossings: zeroCrossings,
	}
}

// RMS returns the root-mean-square level, 0 for an empty signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, x := range signal {
		sumSq += x * x
	}
	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// ZeroCrossings counts strict sign changes between adjacent samples.
// Samples that are exactly zero do not start or end a crossing.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}
