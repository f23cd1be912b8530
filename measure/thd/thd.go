package thd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
	timestats "github.com/cwbudde/algo-fourier/stats/time"
)

const defaultMaxHarmonics = 10

// Config holds THD measurement parameters.
type Config struct {
	SampleRate      float64
	FundamentalFreq float64
	// MaxHarmonics counts the fundamental. Zero selects 10.
	MaxHarmonics int
}

// Result holds THD measurement results. Ratios are linear.
//
//nolint:revive
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64 // peak amplitude
	THD              float64
	THDN             float64
	THD_dB           float64
	THDN_dB          float64
	OddHD            float64
	EvenHD           float64
	Noise            float64
	// Harmonics holds the peak amplitude of harmonic k+1 at index k.
	Harmonics []float64
}

// Calculate measures the harmonic content of samples at cfg.FundamentalFreq.
// Harmonic levels come from single-bin Goertzel evaluations, so the buffer
// should hold a whole number of fundamental periods. DC is removed first.
func Calculate(samples []float64, cfg Config) (Result, error) {
	if err := core.RequirePositive("thd: sample rate", cfg.SampleRate); err != nil {
		return Result{}, err
	}
	if err := core.RequireBaseFrequency("thd", cfg.FundamentalFreq); err != nil {
		return Result{}, err
	}
	if cfg.MaxHarmonics < 0 {
		return Result{}, fmt.Errorf("thd: max harmonics must be >= 0: %d: %w", cfg.MaxHarmonics, core.ErrInvalidArgument)
	}
	if cfg.MaxHarmonics == 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	ac, err := signal.RemoveDC(samples)
	if err != nil {
		return Result{}, fmt.Errorf("thd: %w", err)
	}
	levels, err := spectrum.HarmonicAmplitudes(ac, cfg.SampleRate, cfg.FundamentalFreq, cfg.MaxHarmonics)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		FundamentalFreq:  cfg.FundamentalFreq,
		FundamentalLevel: levels[0],
		Harmonics:        levels,
	}
	if levels[0] <= 0 {
		return res, nil
	}

	var odd, even, harmonicPower float64
	for k, a := range levels {
		harmonicPower += a * a / 2
		switch {
		case k == 0:
		case (k+1)%2 == 0:
			even += a * a
		default:
			odd += a * a
		}
	}

	fund := levels[0]
	fundRMS := fund / math.Sqrt2
	rms := timestats.RMS(ac)
	residual := math.Max(rms*rms-fund*fund/2, 0)
	noise := math.Max(rms*rms-harmonicPower, 0)

	res.THD = math.Sqrt(odd+even) / fund
	res.OddHD = math.Sqrt(odd) / fund
	res.EvenHD = math.Sqrt(even) / fund
	res.THDN = math.Sqrt(residual) / fundRMS
	res.Noise = math.Sqrt(noise) / fundRMS
	res.THD_dB = core.LinearToDB(res.THD)
	res.THDN_dB = core.LinearToDB(res.THDN)
	return res, nil
}
