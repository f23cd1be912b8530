package fourier

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// AnalyzeParallel is Analyze with harmonics projected concurrently.
//
// Every inner product is still accumulated sequentially, so for a
// deterministic f the result matches Analyze bit for bit. f must be safe for
// concurrent use. Cancelling ctx abandons harmonics that have not started.
func (a *Analyzer) AnalyzeParallel(ctx context.Context, f core.WaveFunc, harmonicCount int) (Coefficients, error) {
	if err := validateInput(f, harmonicCount); err != nil {
		return Coefficients{}, err
	}

	c := newCoefficients(a.baseFrequency, harmonicCount)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	g.Go(func() error {
		c.A0 = innerProduct(f, dcBasis, a.steps)
		return nil
	})
	for n := 0; n < harmonicCount; n++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a.project(f, &c, n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

// AnalyzeParallel is a one-shot parallel analysis with a temporary Analyzer.
func AnalyzeParallel(ctx context.Context, f core.WaveFunc, harmonicCount int, opts ...Option) (Coefficients, error) {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		return Coefficients{}, err
	}
	return a.AnalyzeParallel(ctx, f, harmonicCount)
}
