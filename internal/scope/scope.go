// Package scope maps waveforms and coefficients onto a fixed-size canvas.
// It draws nothing itself; renderers consume the screen-space lines and
// text it produces.
package scope

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/fourier"
)

// Viewport is a data-space rectangle shown on a Width x Height pixel canvas.
// Y grows upwards in data space and downwards on screen.
type Viewport struct {
	Width, Height int
	XMin, XMax    float64
	YMin, YMax    float64
}

// DefaultViewport shows 5 ms of signal between -5 and 5 on a 400x400 canvas.
func DefaultViewport() Viewport {
	return Viewport{
		Width:  400,
		Height: 400,
		XMin:   0,
		XMax:   0.005,
		YMin:   -5,
		YMax:   5,
	}
}

// Validate reports a degenerate viewport.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("scope: canvas must be > 0: %dx%d: %w", v.Width, v.Height, core.ErrInvalidArgument)
	}
	if !(v.XMax > v.XMin) || !(v.YMax > v.YMin) {
		return fmt.Errorf("scope: empty range x=[%v, %v] y=[%v, %v]: %w",
			v.XMin, v.XMax, v.YMin, v.YMax, core.ErrInvalidArgument)
	}
	return nil
}

// ToScreen maps data coordinates to pixels.
func (v Viewport) ToScreen(x, y float64) (px, py float64) {
	px = (x - v.XMin) / (v.XMax - v.XMin) * float64(v.Width)
	py = float64(v.Height) - (y-v.YMin)/(v.YMax-v.YMin)*float64(v.Height)
	return px, py
}

// Shade is a grey level for a line, 0 black and 255 white.
type Shade uint8

const (
	ShadeVertical   Shade = 240
	ShadeHorizontal Shade = 180
	ShadeAxis       Shade = 120
)

// Line is a screen-space segment.
type Line struct {
	X0, Y0, X1, Y1 float64
	Shade          Shade
}

// line maps a data-space segment to a Line.
func (v Viewport) line(x0, y0, x1, y1 float64, s Shade) Line {
	px0, py0 := v.ToScreen(x0, y0)
	px1, py1 := v.ToScreen(x1, y1)
	return Line{X0: px0, Y0: py0, X1: px1, Y1: py1, Shade: s}
}

// Grid returns ten vertical divisions, horizontal lines every tenth of YMax
// and the two axes, axes last.
func (v Viewport) Grid() []Line {
	dx := (v.XMax - v.XMin) / 10
	dy := math.Abs(v.YMax) / 10
	if dy == 0 {
		dy = (v.YMax - v.YMin) / 20
	}

	var lines []Line
	for k := 1; k <= 10; k++ {
		x := v.XMin + float64(k)*dx
		lines = append(lines, v.line(x, v.YMin, x, v.YMax, ShadeVertical))
	}
	rows := int(math.Round((v.YMax - v.YMin) / dy))
	for j := 1; j <= rows; j++ {
		y := v.YMin + float64(j)*dy
		lines = append(lines, v.line(v.XMin, y, v.XMax, y, ShadeHorizontal))
	}
	lines = append(lines,
		v.line(v.XMin, 0, v.XMax, 0, ShadeAxis),
		v.line(0, v.YMin, 0, v.YMax, ShadeAxis),
	)
	return lines
}

// Waveform connects consecutive samples, starting at t=0 and stopping after
// the first segment whose start lies beyond XMax.
func (v Viewport) Waveform(samples []float64, sampleRate int) []Line {
	if sampleRate <= 0 || len(samples) < 2 {
		return nil
	}

	rate := float64(sampleRate)
	var lines []Line
	for i := 0; i < len(samples)-1; i++ {
		t := float64(i) / rate
		if t > v.XMax {
			break
		}
		lines = append(lines, v.line(t, samples[i], float64(i+1)/rate, samples[i+1], 0))
	}
	return lines
}

// CoefficientLines renders c as three text lines of absolute values with one
// decimal: "a0: x", "a[]: x, y, ..." and "b[]: x, y, ...".
func CoefficientLines(c fourier.Coefficients) []string {
	return []string{
		"a0: " + formatAbs(c.A0),
		"a[]: " + joinAbs(c.Cos),
		"b[]: " + joinAbs(c.Sin),
	}
}

func joinAbs(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatAbs(v)
	}
	return strings.Join(parts, ", ")
}

func formatAbs(v float64) string {
	return fmt.Sprintf("%.1f", math.Abs(v))
}
