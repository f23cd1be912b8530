package fourier

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// ErrMismatchedSets indicates coefficient sets that cannot be combined.
var ErrMismatchedSets = errors.New("fourier: coefficient sets differ in base frequency or harmonic count")

// Coefficients is a truncated Fourier series: a DC term and the cosine and
// sine weights of harmonics 1..N of BaseFrequency. Cos[n] and Sin[n] belong
// to harmonic n+1.
type Coefficients struct {
	A0            float64
	Cos           []float64
	Sin           []float64
	BaseFrequency float64
}

func newCoefficients(baseFrequency float64, harmonicCount int) Coefficients {
	return Coefficients{
		Cos:           make([]float64, harmonicCount),
		Sin:           make([]float64, harmonicCount),
		BaseFrequency: baseFrequency,
	}
}

// Harmonics returns the number of harmonics the set describes.
func (c Coefficients) Harmonics() int {
	return max(len(c.Cos), len(c.Sin))
}

// Frequency returns the frequency of 1-based harmonic k.
func (c Coefficients) Frequency(k int) float64 {
	return float64(k) * c.BaseFrequency
}

// Clone returns a deep copy.
func (c Coefficients) Clone() Coefficients {
	out := c
	out.Cos = append([]float64(nil), c.Cos...)
	out.Sin = append([]float64(nil), c.Sin...)
	return out
}

// Add returns the element-wise sum of two sets analyzed at the same base
// frequency (within 1e-12 relative) and harmonic count.
func (c Coefficients) Add(other Coefficients) (Coefficients, error) {
	if !core.NearlyEqual(c.BaseFrequency, other.BaseFrequency, 0) ||
		len(c.Cos) != len(other.Cos) || len(c.Sin) != len(other.Sin) {
		return Coefficients{}, ErrMismatchedSets
	}

	out := c.Clone()
	out.A0 += other.A0
	for i := range out.Cos {
		out.Cos[i] += other.Cos[i]
	}
	for i := range out.Sin {
		out.Sin[i] += other.Sin[i]
	}
	return out, nil
}

// Amplitudes returns sqrt(a^2 + b^2) for every harmonic. A missing cosine or
// sine weight counts as zero.
func (c Coefficients) Amplitudes() []float64 {
	out := make([]float64, c.Harmonics())
	for i := range out {
		a, b := c.pair(i)
		out[i] = math.Hypot(a, b)
	}
	return out
}

// Phases returns phi for every harmonic such that
// a*cos(wt) + b*sin(wt) = A*cos(wt + phi).
func (c Coefficients) Phases() []float64 {
	out := make([]float64, c.Harmonics())
	for i := range out {
		a, b := c.pair(i)
		out[i] = math.Atan2(-b, a)
	}
	return out
}

// Dominant returns the 1-based index and amplitude of the strongest harmonic.
// It returns 0, 0 for a set without harmonics.
func (c Coefficients) Dominant() (int, float64) {
	best, bestAmp := 0, 0.0
	for i, amp := range c.Amplitudes() {
		if amp > bestAmp {
			best, bestAmp = i+1, amp
		}
	}
	return best, bestAmp
}

// THD returns the total harmonic distortion ratio
// sqrt(A2^2 + A3^2 + ...) / A1. It is 0 when the fundamental is silent.
func (c Coefficients) THD() float64 {
	amps := c.Amplitudes()
	if len(amps) == 0 || amps[0] <= 0 {
		return 0
	}

	sum := 0.0
	for _, a := range amps[1:] {
		sum += a * a
	}
	return math.Sqrt(sum) / amps[0]
}

func (c Coefficients) pair(i int) (a, b float64) {
	if i < len(c.Cos) {
		a = c.Cos[i]
	}
	if i < len(c.Sin) {
		b = c.Sin[i]
	}
	return a, b
}
