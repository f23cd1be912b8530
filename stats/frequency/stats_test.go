package frequency

import (
	"math"
	"testing"
)

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, 10)
	if s != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", s)
	}
}

func TestCalculateSingleTone(t *testing.T) {
	mag := make([]float64, 65)
	mag[8] = 1

	s := Calculate(mag, 10)
	if s.PeakBin != 8 || s.PeakFrequency != 80 {
		t.Fatalf("peak = bin %d / %v Hz, want 8 / 80", s.PeakBin, s.PeakFrequency)
	}
	if s.Centroid != 80 {
		t.Fatalf("Centroid=%v, want 80", s.Centroid)
	}
	if s.Spread != 0 {
		t.Fatalf("Spread=%v, want 0", s.Spread)
	}
	if s.Flatness != 0 {
		t.Fatalf("Flatness=%v, want 0", s.Flatness)
	}
	if s.Rolloff != 80 {
		t.Fatalf("Rolloff=%v, want 80", s.Rolloff)
	}
	if s.Energy != 1 {
		t.Fatalf("Energy=%v, want 1", s.Energy)
	}
}

func TestCentroidTwoTones(t *testing.T) {
	mag := make([]float64, 11)
	mag[2] = 1
	mag[6] = 1
	if got := Centroid(mag, 100); got != 400 {
		t.Fatalf("Centroid=%v, want 400", got)
	}

	s := Calculate(mag, 100)
	if math.Abs(s.Spread-200) > 1e-12 {
		t.Fatalf("Spread=%v, want 200", s.Spread)
	}
	if got := Rolloff(mag, 100, 0.5); got != 200 {
		t.Fatalf("Rolloff(0.5)=%v, want 200", got)
	}
}

func TestFlatnessWhite(t *testing.T) {
	mag := []float64{5, 1, 1, 1, 1}
	if got := Flatness(mag); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Flatness=%v, want 1", got)
	}
	if got := Flatness([]float64{1}); got != 0 {
		t.Fatalf("Flatness(single bin)=%v, want 0", got)
	}
}
