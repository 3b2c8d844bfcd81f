package engine

import "errors"

// Lifecycle errors for the simulation loop.
var (
	// ErrAlreadyRunning indicates start() was called while Running.
	ErrAlreadyRunning = errors.New("engine: simulation already running")

	// ErrNotRunning indicates stop() was called while Idle.
	ErrNotRunning = errors.New("engine: simulation not running")

	// ErrMoleculeNotFound indicates the provider has no molecule with
	// the requested id at start time.
	ErrMoleculeNotFound = errors.New("engine: molecule not found")
)
