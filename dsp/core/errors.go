package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a parameter outside its domain: non-positive
	// rates, durations or step counts, negative harmonic counts, NaN or Inf.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumericDegeneracy marks a base frequency that would collapse the
	// harmonic series onto non-increasing frequencies.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// RequireFinite rejects NaN and infinite values.
func RequireFinite(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%s must be finite: %v: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// RequirePositive rejects values that are not finite and > 0.
func RequirePositive(name string, v float64) error {
	if err := RequireFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s must be > 0: %v: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// RequireBaseFrequency rejects a base frequency that is not finite (invalid
// argument) or not strictly positive (numeric degeneracy).
func RequireBaseFrequency(prefix string, hz float64) error {
	if !isFinite(hz) {
		return fmt.Errorf("%s: base frequency must be finite: %v: %w", prefix, hz, ErrInvalidArgument)
	}
	if hz <= 0 {
		return fmt.Errorf("%s: base frequency must be > 0: %v: %w", prefix, hz, ErrNumericDegeneracy)
	}
	return nil
}
