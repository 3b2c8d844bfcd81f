package md

import "fmt"

// Thermostat selection values for Params.Thermostat.
const (
	ThermostatNone      = "none"
	ThermostatBerendsen = "berendsen"
)

// IntegratorVerlet is the only implemented integrator variant.
const IntegratorVerlet = "verlet"

// Params holds per-run simulation parameters. A Params value is passed
// explicitly into each tick; the engine never reads ambient configuration
// mid-run.
type Params struct {
	Dt         float64 // time step, fs
	TargetTemp float64 // K
	Cutoff     float64 // Å
	Tau        float64 // thermostat relaxation time, same units as Dt
	Thermostat string
	Integrator string
	Seed       int64
}

func DefaultParams() Params {
	return Params{
		Dt:         0.5,
		TargetTemp: 300.0,
		Cutoff:     10.0,
		Tau:        0.1,
		Thermostat: ThermostatBerendsen,
		Integrator: IntegratorVerlet,
	}
}

func (p Params) Validate() error {
	if p.Dt <= 0 {
		return fmt.Errorf("md: time step must be positive, got %f", p.Dt)
	}
	if p.TargetTemp <= 0 {
		return fmt.Errorf("md: target temperature must be positive, got %f", p.TargetTemp)
	}
	if p.Cutoff <= 0 {
		return fmt.Errorf("md: cutoff radius must be positive, got %f", p.Cutoff)
	}
	switch p.Thermostat {
	case ThermostatNone, ThermostatBerendsen:
	default:
		return fmt.Errorf("md: unknown thermostat %q", p.Thermostat)
	}
	if p.Thermostat == ThermostatBerendsen && p.Tau <= 0 {
		return fmt.Errorf("md: thermostat tau must be positive, got %f", p.Tau)
	}
	if p.Integrator != IntegratorVerlet {
		return fmt.Errorf("md: unknown integrator %q", p.Integrator)
	}
	return nil
}

// PhysicsState is the per-tick energy and temperature snapshot, energies
// in kJ/mol and temperature in K.
type PhysicsState struct {
	Temperature float64
	Kinetic     float64
	Potential   float64
	Total       float64
}

// ForceModel evaluates pairwise forces and potentials over a System.
type ForceModel interface {
	// Accumulate recomputes sys.Force in place from current positions.
	Accumulate(sys *System)
	// Potential returns the total pair potential energy in kcal/mol.
	Potential(sys *System) float64
}

// Integrator advances positions and velocities by one time step.
type Integrator interface {
	Step(sys *System, f ForceModel, dt float64)
}

// Thermostat rescales velocities toward a target temperature after an
// integration step.
type Thermostat interface {
	Apply(sys *System, dt float64)
}
