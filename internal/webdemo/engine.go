// Package webdemo backs the browser front end: it runs presets through a
// session and flattens the results into plain slices for JavaScript.
package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/spectrum"
	"github.com/cwbudde/algo-fourier/internal/scope"
	"github.com/cwbudde/algo-fourier/internal/session"
)

// Frame is everything the canvas and the audio graph need for one preset.
type Frame struct {
	Preset string
	// Samples is the rendered buffer for an AudioBuffer.
	Samples []float32
	// Wave holds x0, y0, x1, y1 per waveform segment in pixels.
	Wave []float64
	Text []string

	A0  float64
	Cos []float64
	Sin []float64
}

// Engine owns the session and viewport of one page.
type Engine struct {
	sess *session.Session
	view scope.Viewport
}

// NewEngine creates an engine rendering at sampleRate.
func NewEngine(sampleRate int) (*Engine, error) {
	sess, err := session.New(session.WithConfig(core.ApplyOptions(core.WithSampleRate(sampleRate))))
	if err != nil {
		return nil, err
	}
	return &Engine{sess: sess, view: scope.DefaultViewport()}, nil
}

// Viewport returns the canvas geometry.
func (e *Engine) Viewport() scope.Viewport { return e.view }

// Grid returns the background grid as x0, y0, x1, y1, shade quintuples.
func (e *Engine) Grid() []float64 {
	lines := e.view.Grid()
	out := make([]float64, 0, 5*len(lines))
	for _, l := range lines {
		out = append(out, l.X0, l.Y0, l.X1, l.Y1, float64(l.Shade))
	}
	return out
}

// Run renders and analyzes the named preset. On error the previous frame
// remains available from Current.
func (e *Engine) Run(name string) (Frame, error) {
	p, err := session.ParsePreset(name)
	if err != nil {
		return Frame{}, err
	}
	res, err := e.sess.Run(p)
	if err != nil {
		return Frame{}, err
	}
	return e.frame(res), nil
}

// Current returns the frame of the last successful Run.
func (e *Engine) Current() (Frame, bool) {
	res, ok := e.sess.Current()
	if !ok {
		return Frame{}, false
	}
	return e.frame(res), true
}

func (e *Engine) frame(res session.AnalysisResult) Frame {
	samples := make([]float32, len(res.Samples))
	for i, v := range res.Samples {
		samples[i] = float32(v)
	}

	segs := e.view.Waveform(res.Samples, res.SampleRate)
	wave := make([]float64, 0, 4*len(segs))
	for _, l := range segs {
		wave = append(wave, l.X0, l.Y0, l.X1, l.Y1)
	}

	c := res.Coefficients.Clone()
	return Frame{
		Preset:  string(res.Preset),
		Samples: samples,
		Wave:    wave,
		Text:    scope.CoefficientLines(c),
		A0:      c.A0,
		Cos:     c.Cos,
		Sin:     c.Sin,
	}
}

// AnalyzeSeries synthesizes the series a0, cos, sin at the session base
// frequency and analyzes it back to harmonics coefficients.
func (e *Engine) AnalyzeSeries(a0 float64, cos, sin []float64, harmonics int) (fourier.Coefficients, error) {
	cfg := e.sess.Config()
	f := signal.SeriesFunc(a0, cos, sin, cfg.BaseFrequency)
	return fourier.Analyze(f, harmonics, fourier.WithConfig(cfg))
}

// Peaks returns frequency, magnitude pairs of the n strongest spectral peaks
// of the current frame.
func (e *Engine) Peaks(n int) ([]float64, error) {
	res, ok := e.sess.Current()
	if !ok {
		return nil, fmt.Errorf("webdemo: nothing rendered yet")
	}
	sp, err := spectrum.Analyze(res.Samples, res.SampleRate)
	if err != nil {
		return nil, err
	}
	peaks := sp.Peaks(n)
	out := make([]float64, 0, 2*len(peaks))
	for _, p := range peaks {
		out = append(out, p.Frequency, p.Magnitude)
	}
	return out, nil
}
