// Command fourier renders a waveform preset, estimates its Fourier-series
// coefficients and prints them alongside buffer statistics.
//
// Usage:
//
//	fourier [flags] preset
//
// Examples:
//
//	fourier sine
//	fourier -harmonics 10 rect
//	fourier -spectrum 5 -window blackman fourier
//	fourier -wav rect.wav rect
//	fourier -wav fourier.wav -normalize 0.9 fourier
//	fourier -list
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
	"github.com/cwbudde/algo-fourier/dsp/window"
	"github.com/cwbudde/algo-fourier/internal/session"
	"github.com/cwbudde/algo-fourier/internal/wav"
	"github.com/cwbudde/algo-fourier/measure/thd"
	freqstats "github.com/cwbudde/algo-fourier/stats/frequency"
)

var windows = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

type options struct {
	cfg      core.Config
	seed     int64
	parallel bool
	wavPath  string
	peak     float64
	peaks    int
	fftSize  int
	window   window.Type
}

func main() {
	harmonics := flag.Int("harmonics", 5, "number of harmonics to estimate")
	base := flag.Float64("base", 441, "base frequency in Hz")
	steps := flag.Int("steps", 100, "integration steps per inner product")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	duration := flag.Float64("duration", 1, "rendered duration in seconds")
	seed := flag.Int64("seed", 0, "seed for the noise preset (0 = unseeded)")
	parallel := flag.Bool("parallel", false, "sample and analyze on all CPUs")
	wavPath := flag.String("wav", "", "write the rendered buffer to this WAV file")
	peak := flag.Float64("normalize", 0, "scale the WAV to this peak amplitude (0 = write as rendered)")
	peaks := flag.Int("spectrum", 0, "print the n strongest FFT peaks")
	winName := flag.String("window", "hann", "analysis window for -spectrum")
	fftSize := flag.Int("fftsize", 0, "minimum FFT size for -spectrum (zero-pads for finer bins)")
	list := flag.Bool("list", false, "list available presets")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fourier [flags] preset\n\n")
		fmt.Fprintf(os.Stderr, "Renders a waveform preset and prints its Fourier-series coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fourier sine\n")
		fmt.Fprintf(os.Stderr, "  fourier -harmonics 10 rect\n")
		fmt.Fprintf(os.Stderr, "  fourier -spectrum 5 fourier\n")
		fmt.Fprintf(os.Stderr, "  fourier -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	winType, ok := windows[strings.ToLower(*winName)]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown window %q\n", *winName)
		os.Exit(2)
	}

	opts := options{
		cfg: core.ApplyOptions(
			core.WithSampleRate(*rate),
			core.WithDuration(*duration),
			core.WithBaseFrequency(*base),
			core.WithHarmonicCount(*harmonics),
			core.WithIntegrationSteps(*steps),
		),
		seed:     *seed,
		parallel: *parallel,
		wavPath:  *wavPath,
		peak:     *peak,
		peaks:    *peaks,
		fftSize:  *fftSize,
		window:   winType,
	}

	if err := run(context.Background(), os.Stdout, flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, p := range session.Presets() {
		fmt.Fprintf(w, "%-8s %s\n", p, p.Label())
	}
}

func run(ctx context.Context, w io.Writer, name string, opts options) error {
	preset, err := session.ParsePreset(name)
	if err != nil {
		return err
	}

	sessOpts := []session.Option{session.WithConfig(opts.cfg), session.WithParallel(opts.parallel)}
	if opts.seed != 0 {
		sessOpts = append(sessOpts, session.WithSeed(opts.seed))
	}
	s, err := session.New(sessOpts...)
	if err != nil {
		return err
	}

	res, err := s.RunContext(ctx, preset)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Preset: %s (%d samples @ %d Hz)\n\n", res.Preset, len(res.Samples), res.SampleRate)
	if err := printCoefficients(w, res); err != nil {
		return err
	}
	printStats(w, res)

	if opts.peaks > 0 {
		if err := printSpectrum(w, res, opts); err != nil {
			return err
		}
	}

	if opts.wavPath != "" {
		if err := writeWAV(w, res, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeWAV(w io.Writer, res session.AnalysisResult, opts options) error {
	out := res.Samples
	if opts.peak < 0 {
		return fmt.Errorf("normalize peak must be >= 0: %v: %w", opts.peak, core.ErrInvalidArgument)
	}
	if opts.peak > 0 {
		var err error
		if out, err = signal.Normalize(out, opts.peak); err != nil {
			return err
		}
	}
	if err := wav.WriteFile(opts.wavPath, out, res.SampleRate); err != nil {
		return err
	}
	if opts.peak > 0 {
		fmt.Fprintf(w, "\nWrote %s (normalized to %.2f)\n", opts.wavPath, opts.peak)
	} else {
		fmt.Fprintf(w, "\nWrote %s\n", opts.wavPath)
	}
	return nil
}

func printCoefficients(w io.Writer, res session.AnalysisResult) error {
	c := res.Coefficients
	amps := c.Amplitudes()
	phases := c.Phases()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Harmonic\tFreq [Hz]\ta_n\tb_n\tAmplitude\tPhase [rad]\n")
	fmt.Fprintf(tw, "--------\t---------\t---\t---\t---------\t-----------\n")
	fmt.Fprintf(tw, "DC\t0\t%.4f\t\t\t\n", c.A0)
	for k := range c.Harmonics() {
		fmt.Fprintf(tw, "%d\t%.1f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			k+1, c.Frequency(k+1), c.Cos[k], c.Sin[k], amps[k], phases[k])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if n, amp := c.Dominant(); n > 0 {
		fmt.Fprintf(w, "\nDominant harmonic: %d (%.4f)\n", n, amp)
	}
	fmt.Fprintf(w, "THD: %.4f\n", c.THD())
	return nil
}

func printStats(w io.Writer, res session.AnalysisResult) {
	st := res.Stats
	fmt.Fprintf(w, "Peak: %.4f  RMS: %.4f  DC: %.4f  Crest: %.4f  Zero crossings: %d\n",
		st.Peak, st.RMS, st.DC, st.CrestFactor, st.ZeroCrossings)
}

func printSpectrum(w io.Writer, res session.AnalysisResult, opts options) error {
	sp, err := spectrum.Analyze(res.Samples, res.SampleRate,
		spectrum.WithWindow(opts.window),
		spectrum.WithMinFFTSize(opts.fftSize),
	)
	if err != nil {
		return err
	}

	fs := freqstats.Calculate(sp.Magnitudes, sp.BinHz)
	win := window.Info(opts.window)
	fmt.Fprintf(w, "\nSpectrum: %d-point FFT, %.3f Hz/bin, %s window (ENBW %.2f bins)\n",
		sp.FFTSize, sp.BinHz, win.Name, win.ENBW)
	fmt.Fprintf(w, "Centroid: %.1f Hz  Flatness: %.3f\n", fs.Centroid, fs.Flatness)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Peak [Hz]\tMagnitude\n")
	fmt.Fprintf(tw, "---------\t---------\n")
	found := sp.Peaks(opts.peaks)
	sort.SliceStable(found, func(i, j int) bool { return found[i].Frequency < found[j].Frequency })
	for _, p := range found {
		fmt.Fprintf(tw, "%.1f\t%.4f\n", p.Frequency, p.Magnitude)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	c := res.Coefficients
	m, err := thd.Calculate(res.Samples, thd.Config{
		SampleRate:      float64(res.SampleRate),
		FundamentalFreq: c.BaseFrequency,
		MaxHarmonics:    max(c.Harmonics(), 1),
	})
	if err != nil {
		return err
	}
	parts := make([]string, len(m.Harmonics))
	for i, a := range m.Harmonics {
		parts[i] = fmt.Sprintf("%.3f", a)
	}
	fmt.Fprintf(w, "Goertzel harmonic amplitudes: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(w, "Measured THD: %.4f  THD+N: %.4f\n", m.THD, m.THDN)
	return nil
}
