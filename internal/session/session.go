// Package session turns the four waveform presets into immutable analysis
// results for the front ends.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	timestats "github.com/cwbudde/algo-fourier/stats/time"
)

// Preset names one of the built-in waveforms.
type Preset string

const (
	PresetNoise   Preset = "noise"
	PresetSine    Preset = "sine"
	PresetRect    Preset = "rect"
	PresetFourier Preset = "fourier"
)

// RectTerms is the number of series terms of the rect preset.
const RectTerms = 30

// Presets returns all presets in display order.
func Presets() []Preset {
	return []Preset{PresetNoise, PresetSine, PresetRect, PresetFourier}
}

// ParsePreset resolves a case-insensitive preset name.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("session: unknown preset %q: %w", name, core.ErrInvalidArgument)
}

// Label returns the button caption of p.
func (p Preset) Label() string {
	switch p {
	case PresetNoise:
		return "Play Noise"
	case PresetSine:
		return "Play Sin Wave"
	case PresetRect:
		return "Play Rect Wave"
	case PresetFourier:
		return "Play Fourier Wave"
	default:
		return string(p)
	}
}

// AnalysisResult is the rendered buffer and estimated coefficients of one
// preset. Values are never modified after Run returns them.
type AnalysisResult struct {
	Preset       Preset
	SampleRate   int
	Samples      []float64
	Coefficients fourier.Coefficients
	Stats        timestats.Stats
}

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default configuration.
func WithConfig(cfg core.Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithSeed makes the noise preset reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = &seed
	}
}

// WithParallel spreads sampling and analysis of deterministic presets over
// goroutines.
func WithParallel(enabled bool) Option {
	return func(s *Session) {
		s.parallel = enabled
	}
}

// Session holds the most recent successful AnalysisResult.
type Session struct {
	cfg      core.Config
	seed     *int64
	parallel bool

	analyzer  *fourier.Analyzer
	generator *signal.Generator

	mu      sync.RWMutex
	current *AnalysisResult
}

// New validates the configuration and returns an empty session.
func New(opts ...Option) (*Session, error) {
	s := &Session{cfg: core.DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	a, err := fourier.NewAnalyzer(fourier.WithConfig(s.cfg))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.analyzer = a
	var genOpts []signal.Option
	if s.seed != nil {
		genOpts = append(genOpts, signal.WithSeed(*s.seed))
	}
	s.generator = signal.NewGeneratorWithOptions([]core.Option{
		core.WithSampleRate(s.cfg.SampleRate),
		core.WithDuration(s.cfg.DurationSeconds),
	}, genOpts...)
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() core.Config {
	return s.cfg
}

// Waveform returns the function behind p.
func (s *Session) Waveform(p Preset) (core.WaveFunc, error) {
	base := s.cfg.BaseFrequency
	switch p {
	case PresetNoise:
		if s.seed != nil {
			return s.generator.NoiseFunc(), nil
		}
		return signal.NoiseFunc(), nil
	case PresetSine:
		return signal.SineFunc(base), nil
	case PresetRect:
		return signal.SquareWave(RectTerms, base), nil
	case PresetFourier:
		c := FourierPresetCoefficients(base)
		return signal.SeriesFunc(c.A0, c.Cos, c.Sin, c.BaseFrequency), nil
	default:
		return nil, fmt.Errorf("session: unknown preset %q: %w", p, core.ErrInvalidArgument)
	}
}

// FourierPresetCoefficients returns the series of the fourier preset:
// cosine weights 1, 2, 3 and a single unit sine term.
func FourierPresetCoefficients(baseFrequency float64) fourier.Coefficients {
	return fourier.Coefficients{
		Cos:           []float64{1, 2, 3},
		Sin:           []float64{1},
		BaseFrequency: baseFrequency,
	}
}

// Run samples and analyzes p. On success the result becomes current; on
// failure the previous result stays current.
func (s *Session) Run(p Preset) (AnalysisResult, error) {
	return s.RunContext(context.Background(), p)
}

// RunContext is Run with cancellation of the parallel paths.
func (s *Session) RunContext(ctx context.Context, p Preset) (AnalysisResult, error) {
	f, err := s.Waveform(p)
	if err != nil {
		return AnalysisResult{}, err
	}

	samples, err := s.sample(ctx, p, f)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("session: sampling %s: %w", p, err)
	}

	// Seeded noise is a stateful stream; analysis draws from a fresh one.
	if p == PresetNoise && s.seed != nil {
		f = s.generator.NoiseFunc()
	}
	coeffs, err := s.analyze(ctx, p, f)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("session: analyzing %s: %w", p, err)
	}

	res := AnalysisResult{
		Preset:       p,
		SampleRate:   s.cfg.SampleRate,
		Samples:      samples,
		Coefficients: coeffs,
		Stats:        timestats.Calculate(samples),
	}

	stored := res
	stored.Samples = append([]float64(nil), samples...)
	stored.Coefficients = coeffs.Clone()
	s.mu.Lock()
	s.current = &stored
	s.mu.Unlock()
	return res, nil
}

func (s *Session) sample(ctx context.Context, p Preset, f core.WaveFunc) ([]float64, error) {
	if s.parallel && p != PresetNoise {
		return s.generator.SampleParallel(ctx, f, 0)
	}
	return s.generator.Sample(f)
}

func (s *Session) analyze(ctx context.Context, p Preset, f core.WaveFunc) (fourier.Coefficients, error) {
	if s.parallel && p != PresetNoise {
		return s.analyzer.AnalyzeParallel(ctx, f, s.cfg.HarmonicCount)
	}
	return s.analyzer.Analyze(f, s.cfg.HarmonicCount)
}

// Current returns a copy of the most recent successful result.
func (s *Session) Current() (AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return AnalysisResult{}, false
	}
	res := *s.current
	res.Samples = append([]float64(nil), res.Samples...)
	res.Coefficients = res.Coefficients.Clone()
	return res, true
}
