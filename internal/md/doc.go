// Package md provides core simulation primitives for molecular dynamics.
//
// The package defines the fundamental types shared by the force field,
// integrator, thermostat, and simulation engine:
//
//   - [Vec3]: 3-D vector in Ångström-based units
//   - [System]: array-of-structs arena holding per-atom simulation state
//   - [Params]: immutable per-run simulation parameters
//   - [ForceModel]: pairwise force/potential evaluator interface
//   - [Integrator]: time-stepping scheme interface
//   - [Thermostat]: velocity-rescaling interface
//
// # Units
//
// The engine uses one internally consistent unit system: positions in Å,
// time in fs, mass in amu, energies in kJ/mol (force-field potentials are
// evaluated in kcal/mol and converted at the accounting boundary). The
// conversion constants live in units.go.
//
// # Thread Safety
//
// System instances are NOT thread-safe. A System is exclusively owned by
// the engine while a run is active; external code observes state through
// snapshot callbacks only.
package md
