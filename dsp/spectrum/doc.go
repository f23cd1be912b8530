// Package spectrum measures the frequency content of rendered sample buffers.
//
// [Analyze] windows a buffer with a Hann window, zero-pads it to a power of
// two and runs a forward FFT from algo-fft. Magnitudes are scaled so that a
// sinusoid of amplitude A reads as A at its peak bin. [Goertzel] evaluates a
// single frequency and is used to cross-check individual harmonics.
//
// # Usage
//
//	x, _ := signal.Sample(signal.SineFunc(441), 44100, 1)
//	s, _ := spectrum.Analyze(x, 44100)
//	for _, p := range s.Peaks(3) {
//		fmt.Printf("%.1f Hz %.3f\n", p.Frequency, p.Magnitude)
//	}
package spectrum
