package core

import (
	"fmt"
	"math"
)

// Config holds the settings shared by synthesis and analysis.
type Config struct {
	SampleRate       int
	DurationSeconds  float64
	BaseFrequency    float64
	HarmonicCount    int
	IntegrationSteps int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of the interactive scope: one second at
// 44.1 kHz, five harmonics of 441 Hz, 100 integration steps.
func DefaultConfig() Config {
	return Config{
		SampleRate:       44100,
		DurationSeconds:  1,
		BaseFrequency:    441,
		HarmonicCount:    5,
		IntegrationSteps: 100,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate int) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithDuration sets the rendered duration in seconds.
func WithDuration(seconds float64) Option {
	return func(cfg *Config) {
		cfg.DurationSeconds = seconds
	}
}

// WithBaseFrequency sets the fundamental the harmonics are multiples of.
func WithBaseFrequency(hz float64) Option {
	return func(cfg *Config) {
		cfg.BaseFrequency = hz
	}
}

// WithHarmonicCount sets how many harmonics an analysis estimates.
func WithHarmonicCount(n int) Option {
	return func(cfg *Config) {
		cfg.HarmonicCount = n
	}
}

// WithIntegrationSteps sets the Riemann-sum resolution of the inner product.
func WithIntegrationSteps(steps int) Option {
	return func(cfg *Config) {
		cfg.IntegrationSteps = steps
	}
}

// ApplyOptions applies zero or more options to the default config.
// Values are stored as given; call Validate to reject bad ones.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("config: sample rate must be > 0: %d: %w", c.SampleRate, ErrInvalidArgument)
	}
	if err := RequirePositive("config: duration", c.DurationSeconds); err != nil {
		return err
	}
	if err := RequireBaseFrequency("config", c.BaseFrequency); err != nil {
		return err
	}
	if c.HarmonicCount < 0 {
		return fmt.Errorf("config: harmonic count must be >= 0: %d: %w", c.HarmonicCount, ErrInvalidArgument)
	}
	if c.IntegrationSteps < 1 {
		return fmt.Errorf("config: integration steps must be >= 1: %d: %w", c.IntegrationSteps, ErrInvalidArgument)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
