package spectrum

import (
	"fmt"
	"math/bits"
	"sort"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/window"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Spectrum is the one-sided magnitude spectrum of a sample buffer.
type Spectrum struct {
	SampleRate int
	FFTSize    int
	// BinHz is the frequency spacing of Magnitudes.
	BinHz float64
	// Magnitudes holds FFTSize/2+1 bins from DC to Nyquist.
	Magnitudes []float64
}

// Peak is a local maximum of a Spectrum.
type Peak struct {
	Bin       int
	Frequency float64
	Magnitude float64
}

type analyzeConfig struct {
	window  window.Type
	minSize int
}

// Option configures Analyze.
type Option func(*analyzeConfig)

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *analyzeConfig) {
		c.window = t
	}
}

// WithMinFFTSize zero-pads to at least n points for finer bin spacing.
func WithMinFFTSize(n int) Option {
	return func(c *analyzeConfig) {
		c.minSize = n
	}
}

// Analyze returns the windowed magnitude spectrum of samples.
func Analyze(samples []float64, sampleRate int, opts ...Option) (*Spectrum, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("spectrum: input must not be empty: %w", core.ErrInvalidArgument)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidArgument)
	}

	cfg := analyzeConfig{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := window.Generate(cfg.window, len(samples), window.WithPeriodic())
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	windowed, err := window.ApplyCoefficients(samples, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	fftSize := nextPow2(max(len(samples), cfg.minSize))
	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan %d: %w", fftSize, err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	mags := Magnitude(out[:fftSize/2+1])
	scale := 2 / (float64(len(samples)) * gain)
	for i := range mags {
		mags[i] *= scale
	}
	// DC and Nyquist have no mirrored half.
	mags[0] /= 2
	if fftSize > 1 {
		mags[len(mags)-1] /= 2
	}

	return &Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		BinHz:      float64(sampleRate) / float64(fftSize),
		Magnitudes: mags,
	}, nil
}

// Frequency returns the centre frequency of bin k.
func (s *Spectrum) Frequency(k int) float64 {
	return float64(k) * s.BinHz
}

// Peaks returns up to n local maxima ordered by descending magnitude.
// Ties keep ascending bin order.
func (s *Spectrum) Peaks(n int) []Peak {
	if n <= 0 || len(s.Magnitudes) == 0 {
		return nil
	}

	m := s.Magnitudes
	var peaks []Peak
	for k := range m {
		left := k == 0 || m[k] > m[k-1]
		right := k == len(m)-1 || m[k] >= m[k+1]
		if left && right && m[k] > 0 {
			peaks = append(peaks, Peak{Bin: k, Frequency: s.Frequency(k), Magnitude: m[k]})
		}
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Magnitude > peaks[j].Magnitude
	})
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
