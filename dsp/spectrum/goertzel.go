package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Goertzel evaluates a single DFT term over every sample processed since it
// was created.
//
// Leakage occurs when the target frequency does not complete an integer
// number of cycles within the processed block.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates a Goertzel analyzer for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := validateGoertzel(frequency, sampleRate); err != nil {
		return nil, err
	}
	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}, nil
}

func validateGoertzel(frequency, sampleRate float64) error {
	if err := core.RequirePositive("goertzel: sample rate", sampleRate); err != nil {
		return err
	}
	if err := core.RequireFinite("goertzel: frequency", frequency); err != nil {
		return err
	}
	if frequency < 0 || frequency > sampleRate/2 {
		return fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v: %w",
			frequency, core.ErrInvalidArgument)
	}
	return nil
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X|^2 for the processed block.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// AnalyzeBlock computes the Goertzel power for a single frequency in one shot.
func AnalyzeBlock(input []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(input)
	return g.Power(), nil
}

// HarmonicAmplitudes estimates the amplitude of the first count harmonics of
// baseFrequency in input as 2*|X|/len(input). Harmonics above Nyquist read 0.
func HarmonicAmplitudes(input []float64, sampleRate, baseFrequency float64, count int) ([]float64, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("goertzel: input must not be empty: %w", core.ErrInvalidArgument)
	}
	if count < 0 {
		return nil, fmt.Errorf("goertzel: harmonic count must be >= 0: %d: %w", count, core.ErrInvalidArgument)
	}
	if err := core.RequireBaseFrequency("goertzel", baseFrequency); err != nil {
		return nil, err
	}

	out := make([]float64, count)
	for k := range out {
		freq := float64(k+1) * baseFrequency
		if freq > sampleRate/2 {
			break
		}
		p, err := AnalyzeBlock(input, freq, sampleRate)
		if err != nil {
			return nil, err
		}
		out[k] = 2 * math.Sqrt(max(p, 0)) / float64(len(input))
	}
	return out, nil
}
