package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleAnalyze() {
	x := make([]float64, 1024)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 64 * float64(i) / 1024)
	}

	s, err := spectrum.Analyze(x, 1024)
	if err != nil {
		panic(err)
	}
	p := s.Peaks(1)[0]
	fmt.Printf("%.0f Hz %.2f\n", p.Frequency, p.Magnitude)
	// Output:
	// 64 Hz 1.00
}
