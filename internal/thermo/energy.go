// Package thermo provides energy accounting and temperature regulation:
// kinetic/potential/total energy, the equipartition temperature
// estimate, and the Berendsen velocity-rescaling thermostat.
package thermo

import "github.com/san-kum/moldyn/internal/md"

// Kinetic returns the total kinetic energy in kJ/mol.
func Kinetic(sys *md.System) float64 {
	ke := 0.0
	for i := range sys.Vel {
		ke += 0.5 * sys.Masses[i] * sys.Vel[i].Norm2()
	}
	return ke * md.KineticFactor
}

// Temperature returns the equipartition temperature estimate
// T = 2·KE / (3·N·k_B) for N atoms with three translational degrees of
// freedom each. No correction is made for a fixed center of mass.
func Temperature(sys *md.System) float64 {
	n := sys.N()
	if n == 0 {
		return 0
	}
	return 2.0 * Kinetic(sys) / (3.0 * float64(n) * md.Boltzmann)
}

// Measure computes the instantaneous physics snapshot for a system.
// The force model's potential is converted from kcal/mol to kJ/mol so
// kinetic and potential terms share a unit.
func Measure(sys *md.System, f md.ForceModel) md.PhysicsState {
	ke := Kinetic(sys)
	pe := f.Potential(sys) * md.KcalToKJ
	return md.PhysicsState{
		Temperature: Temperature(sys),
		Kinetic:     ke,
		Potential:   pe,
		Total:       ke + pe,
	}
}
