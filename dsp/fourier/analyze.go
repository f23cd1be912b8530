package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

const (
	// DefaultBaseFrequency is the fundamental used when none is configured.
	DefaultBaseFrequency = 441.0
	// DefaultIntegrationSteps is the Riemann-sum resolution used when none
	// is configured.
	DefaultIntegrationSteps = 100
)

// Analyzer estimates coefficients at a fixed base frequency and resolution.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	baseFrequency float64
	steps         int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBaseFrequency sets the fundamental in Hz.
func WithBaseFrequency(hz float64) Option {
	return func(a *Analyzer) {
		a.baseFrequency = hz
	}
}

// WithIntegrationSteps sets the number of Riemann-sum points over [0, 1).
func WithIntegrationSteps(steps int) Option {
	return func(a *Analyzer) {
		a.steps = steps
	}
}

// WithConfig takes base frequency and integration steps from cfg.
func WithConfig(cfg core.Config) Option {
	return func(a *Analyzer) {
		a.baseFrequency = cfg.BaseFrequency
		a.steps = cfg.IntegrationSteps
	}
}

// NewAnalyzer creates an Analyzer, rejecting a non-positive base frequency or
// step count.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		baseFrequency: DefaultBaseFrequency,
		steps:         DefaultIntegrationSteps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if err := core.RequireBaseFrequency("fourier", a.baseFrequency); err != nil {
		return nil, err
	}
	if a.steps < 1 {
		return nil, fmt.Errorf("fourier: integration steps must be >= 1: %d: %w", a.steps, core.ErrInvalidArgument)
	}
	return a, nil
}

// BaseFrequency returns the configured fundamental in Hz.
func (a *Analyzer) BaseFrequency() float64 { return a.baseFrequency }

// IntegrationSteps returns the configured Riemann-sum resolution.
func (a *Analyzer) IntegrationSteps() int { return a.steps }

// Analyze is a one-shot analysis with a temporary Analyzer.
func Analyze(f core.WaveFunc, harmonicCount int, opts ...Option) (Coefficients, error) {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		return Coefficients{}, err
	}
	return a.Analyze(f, harmonicCount)
}

// Analyze estimates the DC term and the first harmonicCount cosine and sine
// coefficients of f.
func (a *Analyzer) Analyze(f core.WaveFunc, harmonicCount int) (Coefficients, error) {
	if err := validateInput(f, harmonicCount); err != nil {
		return Coefficients{}, err
	}

	c := newCoefficients(a.baseFrequency, harmonicCount)
	c.A0 = innerProduct(f, dcBasis, a.steps)
	for n := 0; n < harmonicCount; n++ {
		a.project(f, &c, n)
	}
	return c, nil
}

// project fills Cos[n] and Sin[n], the coefficients of harmonic n+1.
func (a *Analyzer) project(f core.WaveFunc, c *Coefficients, n int) {
	freq := float64(n+1) * a.baseFrequency
	c.Cos[n] = innerProduct(f, cosBasis(freq), a.steps)
	c.Sin[n] = innerProduct(f, sinBasis(freq), a.steps)
}

// InnerProduct approximates 2 * integral_0^1 f(t) g(t) dt with a left
// Riemann sum of the given number of steps.
func InnerProduct(f, g core.WaveFunc, steps int) (float64, error) {
	if f == nil || g == nil {
		return 0, fmt.Errorf("fourier: inner product needs two functions: %w", core.ErrInvalidArgument)
	}
	if steps < 1 {
		return 0, fmt.Errorf("fourier: integration steps must be >= 1: %d: %w", steps, core.ErrInvalidArgument)
	}
	return innerProduct(f, g, steps), nil
}

func innerProduct(f, g core.WaveFunc, steps int) float64 {
	dt := 1 / float64(steps)
	sum := 0.0
	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		sum += f(t) * g(t) * dt
	}
	return 2 * sum
}

func validateInput(f core.WaveFunc, harmonicCount int) error {
	if f == nil {
		return fmt.Errorf("fourier: function must not be nil: %w", core.ErrInvalidArgument)
	}
	if harmonicCount < 0 {
		return fmt.Errorf("fourier: harmonic count must be >= 0: %d: %w", harmonicCount, core.ErrInvalidArgument)
	}
	return nil
}

var invSqrt2 = 1 / math.Sqrt2

func dcBasis(float64) float64 { return invSqrt2 }

func cosBasis(freq float64) core.WaveFunc {
	return func(t float64) float64 {
		return math.Cos(2 * math.Pi * freq * t)
	}
}

func sinBasis(freq float64) core.WaveFunc {
	return func(t float64) float64 {
		return math.Sin(2 * math.Pi * freq * t)
	}
}
