// Package signal synthesizes periodic waveforms and flattens them into
// sample buffers.
//
// Waveforms are plain functions of time ([core.WaveFunc]): [Noise],
// [Sinusoid], [Cosine] and the Fourier-series reconstruction
// [FourierSeries]. [Sample] evaluates any of them at i/sampleRate for every
// sample index of the requested duration.
//
// # Usage
//
//	buf, err := signal.Sample(signal.SineFunc(441), 44100, 1)
//
//	f := signal.SeriesFunc(0, []float64{1, 2, 3}, []float64{1}, 441)
//	buf, err := signal.Sample(f, 44100, 1)
//
// A [Generator] binds the sample rate and duration of a [core.Config] and
// adds reproducible seeded noise and a chunked parallel sampler.
package signal
