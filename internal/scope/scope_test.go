package scope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/fourier"
	"github.com/cwbudde/algo-fourier/dsp/signal"
)

func TestToScreenCorners(t *testing.T) {
	v := DefaultViewport()
	require.NoError(t, v.Validate())

	tests := []struct {
		x, y, px, py float64
	}{
		{x: 0, y: -5, px: 0, py: 400},
		{x: 0.005, y: 5, px: 400, py: 0},
		{x: 0, y: 0, px: 0, py: 200},
		{x: 0.0025, y: 2.5, px: 200, py: 100},
	}
	for _, tt := range tests {
		px, py := v.ToScreen(tt.x, tt.y)
		require.InDelta(t, tt.px, px, 1e-9, "x=%v", tt.x)
		require.InDelta(t, tt.py, py, 1e-9, "y=%v", tt.y)
	}
}

func TestValidate(t *testing.T) {
	v := DefaultViewport()
	v.Width = 0
	require.ErrorIs(t, v.Validate(), core.ErrInvalidArgument)

	v = DefaultViewport()
	v.XMax = v.XMin
	require.ErrorIs(t, v.Validate(), core.ErrInvalidArgument)
}

func TestGrid(t *testing.T) {
	lines := DefaultViewport().Grid()

	var vertical, horizontal, axes int
	for _, l := range lines {
		switch l.Shade {
		case ShadeVertical:
			vertical++
			require.Equal(t, l.X0, l.X1)
		case ShadeHorizontal:
			horizontal++
			require.Equal(t, l.Y0, l.Y1)
		case ShadeAxis:
			axes++
		}
	}
	require.Equal(t, 10, vertical)
	require.Equal(t, 20, horizontal)
	require.Equal(t, 2, axes)

	xAxis := lines[len(lines)-2]
	require.InDelta(t, 200, xAxis.Y0, 1e-9)
	require.InDelta(t, 400, xAxis.X1, 1e-9)
}

func TestWaveformClipsToRange(t *testing.T) {
	samples, err := signal.Sample(signal.SineFunc(441), 44100, 1)
	require.NoError(t, err)

	lines := DefaultViewport().Waveform(samples, 44100)
	// Segments start at i/44100 <= 0.005, i.e. i = 0..220.
	require.Len(t, lines, 221)
	require.InDelta(t, 0, lines[0].X0, 1e-9)
	require.InDelta(t, 200, lines[0].Y0, 1e-9)
	for i := 1; i < len(lines); i++ {
		require.Equal(t, lines[i-1].X1, lines[i].X0)
		require.Equal(t, lines[i-1].Y1, lines[i].Y0)
	}
}

func TestWaveformShortInput(t *testing.T) {
	v := DefaultViewport()
	require.Nil(t, v.Waveform([]float64{1}, 44100))
	require.Nil(t, v.Waveform([]float64{1, 2}, 0))

	lines := v.Waveform([]float64{0, 1, 2}, 44100)
	require.Len(t, lines, 2)
}

func TestCoefficientLines(t *testing.T) {
	c := fourier.Coefficients{
		A0:  -0.04,
		Cos: []float64{1, -2.26, 3},
		Sin: []float64{-1.27, 0},
	}
	require.Equal(t, []string{
		"a0: 0.0",
		"a[]: 1.0, 2.3, 3.0",
		"b[]: 1.3, 0.0",
	}, CoefficientLines(c))

	require.Equal(t, []string{"a0: 0.0", "a[]: ", "b[]: "}, CoefficientLines(fourier.Coefficients{}))
}
