package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{256, 4096, 44100} {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_ = Generate(TypeHann, n)
			}
		})
	}
}

func BenchmarkApplyCoefficients(b *testing.B) {
	for _, n := range []int{256, 4096, 44100} {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			coeffs := Generate(TypeHann, n, WithPeriodic())
			for range b.N {
				_, _ = ApplyCoefficients(buf, coeffs)
			}
		})
	}
}
