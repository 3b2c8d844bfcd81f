package md

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a NaN or Inf crept into positions or
	// velocities.
	ErrInvalidState = errors.New("md: invalid state (NaN or Inf detected)")

	// ErrEmptySystem indicates a simulation was started with no atoms.
	ErrEmptySystem = errors.New("md: system has no atoms")
)
