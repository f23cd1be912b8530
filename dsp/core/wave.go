package core

// WaveFunc maps a time in seconds to an amplitude. Amplitudes are
// conventionally in [-1, 1] but nothing enforces it.
type WaveFunc func(t float64) float64
