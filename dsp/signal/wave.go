package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

var invSqrt2 = 1 / math.Sqrt2

// Noise returns an independent uniform draw in [-1, 1). The argument is
// ignored; two calls with the same t are not expected to agree.
func Noise(float64) float64 {
	return rand.Float64()*2 - 1
}

// Sinusoid returns sin(2*pi*freq*t).
func Sinusoid(t, freq float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}

// Cosine returns cos(2*pi*freq*t).
func Cosine(t, freq float64) float64 {
	return math.Cos(2 * math.Pi * freq * t)
}

// FourierSeries evaluates
//
//	a0/sqrt(2) + sum_n cosCoeffs[n]*cos(2*pi*(n+1)*base*t) + sum_n sinCoeffs[n]*sin(2*pi*(n+1)*base*t)
//
// summing all cosine terms before the sine terms. Empty slices contribute 0.
func FourierSeries(t, a0 float64, cosCoeffs, sinCoeffs []float64, baseFrequency float64) float64 {
	cosSum := 0.0
	for n, a := range cosCoeffs {
		cosSum += a * Cosine(t, float64(n+1)*baseFrequency)
	}

	sinSum := 0.0
	for n, b := range sinCoeffs {
		sinSum += b * Sinusoid(t, float64(n+1)*baseFrequency)
	}

	return a0*invSqrt2 + cosSum + sinSum
}

// NoiseFunc returns Noise as a WaveFunc.
func NoiseFunc() core.WaveFunc { return Noise }

// SineFunc returns t -> sin(2*pi*freq*t).
func SineFunc(freq float64) core.WaveFunc {
	return func(t float64) float64 { return Sinusoid(t, freq) }
}

// CosineFunc returns t -> cos(2*pi*freq*t).
func CosineFunc(freq float64) core.WaveFunc {
	return func(t float64) float64 { return Cosine(t, freq) }
}

// SeriesFunc returns t -> FourierSeries(t, a0, cosCoeffs, sinCoeffs,
// baseFrequency). The slices are copied, so later changes to them do not
// affect the returned function.
func SeriesFunc(a0 float64, cosCoeffs, sinCoeffs []float64, baseFrequency float64) core.WaveFunc {
	cosCoeffs = append([]float64(nil), cosCoeffs...)
	sinCoeffs = append([]float64(nil), sinCoeffs...)
	return func(t float64) float64 {
		return FourierSeries(t, a0, cosCoeffs, sinCoeffs, baseFrequency)
	}
}

// SquareWaveCoefficients returns the first terms sine weights of a unit
// square wave: 4/(n*pi) for odd n, 0 for even n. The cosine weights are all
// zero.
func SquareWaveCoefficients(terms int) []float64 {
	sin := make([]float64, max(terms, 0))
	for i := range sin {
		if n := i + 1; n%2 != 0 {
			sin[i] = 4 / (float64(n) * math.Pi)
		}
	}
	return sin
}

// SquareWave returns a square wave band-limited to the given number of terms.
func SquareWave(terms int, baseFrequency float64) core.WaveFunc {
	return SeriesFunc(0, nil, SquareWaveCoefficients(terms), baseFrequency)
}
