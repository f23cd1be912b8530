package signal

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// Generator samples waveforms at the rate and duration of a shared
// configuration.
type Generator struct {
	cfg  core.Config
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{
		cfg:  core.ApplyOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.Option, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// NoiseFunc returns uniform noise in [-1, 1) drawn from a fresh source seeded
// with the generator seed. Each returned function replays the same sequence
// and must not be shared between goroutines.
func (g *Generator) NoiseFunc() core.WaveFunc {
	rng := rand.New(rand.NewSource(g.seed))
	return func(float64) float64 {
		return rng.Float64()*2 - 1
	}
}

// Sample renders f over the configured duration.
func (g *Generator) Sample(f core.WaveFunc) ([]float64, error) {
	return Sample(f, g.cfg.SampleRate, g.cfg.DurationSeconds)
}

// SampleInto renders f into dst, growing it if its capacity is too small,
// and returns the filled slice.
func (g *Generator) SampleInto(dst []float64, f core.WaveFunc) ([]float64, error) {
	n, err := sampleCount(f, g.cfg.SampleRate, g.cfg.DurationSeconds)
	if err != nil {
		return nil, err
	}
	dst = core.EnsureLen(dst, n)
	fill(dst, 0, f, g.cfg.SampleRate)
	return dst, nil
}

// SampleParallel renders f in contiguous chunks on up to workers goroutines
// (GOMAXPROCS when workers <= 0). The output equals Sample for any f that is
// a pure function of t; f must be safe for concurrent use.
func (g *Generator) SampleParallel(ctx context.Context, f core.WaveFunc, workers int) ([]float64, error) {
	n, err := sampleCount(f, g.cfg.SampleRate, g.cfg.DurationSeconds)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	out := make([]float64, n)
	chunk := (n + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("signal: sampling [%d, %d): %w", start, end, err)
			}
			fill(out[start:end], start, f, g.cfg.SampleRate)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
