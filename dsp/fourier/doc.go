// Package fourier estimates Fourier-series coefficients of periodic functions.
//
// The analysis projects a function f onto the basis
//
//	{1/sqrt(2), cos(2*pi*n*base*t), sin(2*pi*n*base*t)}  n = 1..N
//
// using the inner product <f,g> = 2 * integral_0^1 f(t) g(t) dt, approximated
// by a left Riemann sum over M points t = 0, 1/M, ..., (M-1)/M. It is a
// direct projection with O(N*M) cost per call, not an FFT.
//
// # Usage
//
//	c, err := fourier.Analyze(f, 5)                                   // 441 Hz base, 100 steps
//	c, err := fourier.Analyze(f, 5, fourier.WithIntegrationSteps(400))
//
//	a, err := fourier.NewAnalyzer(fourier.WithBaseFrequency(100))
//	c, err := a.AnalyzeParallel(ctx, f, 32)
//
// The returned [Coefficients] value is freshly allocated and owned by the
// caller. Helpers on it summarize the harmonic content (amplitudes, phases,
// dominant harmonic, THD).
//
// Invalid parameters fail fast with errors wrapping
// [core.ErrInvalidArgument] or [core.ErrNumericDegeneracy].
package fourier
