package frequency

import "math"

// Stats holds shape descriptors of a one-sided magnitude spectrum.
type Stats struct {
	BinCount      int
	PeakBin       int
	PeakFrequency float64 // Hz
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // Hz
	Spread        float64 // Hz, standard deviation around the centroid
	Flatness      float64 // Wiener entropy, 0..1
	Rolloff       float64 // Hz below which 85% of the energy lies
}

// Calculate computes all descriptors from linear magnitudes (NOT dB) spaced
// binHz apart, starting at DC.
func Calculate(magnitude []float64, binHz float64) Stats {
	s := Stats{BinCount: len(magnitude)}
	if len(magnitude) == 0 {
		return s
	}

	sum := 0.0
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		if v > magnitude[s.PeakBin] {
			s.PeakBin = i
		}
	}
	s.PeakFrequency = float64(s.PeakBin) * binHz

	s.Centroid = centroid(magnitude, binHz, sum)
	s.Spread = spread(magnitude, binHz, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, binHz, 0.85, s.Energy)
	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, binHz float64) float64 {
	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}
	return centroid(magnitude, binHz, sum)
}

func centroid(magnitude []float64, binHz, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range magnitude {
		weighted += float64(i) * binHz * v
	}
	return weighted / sumMag
}

func spread(magnitude []float64, binHz, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range magnitude {
		d := float64(i)*binHz - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sumMag)
}

// Flatness returns exp(mean(log|X_i|)) / mean(|X_i|) over bins 1..N-1.
// The DC bin is excluded. Any zero bin yields 0.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the frequency below which fraction (0..1) of the spectral
// energy lies.
func Rolloff(magnitude []float64, binHz, fraction float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}
	return rolloff(magnitude, binHz, fraction, energy)
}

func rolloff(magnitude []float64, binHz, fraction, total float64) float64 {
	if total == 0 {
		return 0
	}
	threshold := fraction * total
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return float64(i) * binHz
		}
	}
	return float64(len(magnitude)-1) * binHz
}
