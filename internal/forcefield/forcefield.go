// Package forcefield computes pairwise van der Waals (Lennard-Jones
// 12-6) and electrostatic (Coulomb) forces and potentials. Evaluation is
// O(N²) over all pairs within cutoff with no neighbor list, acceptable
// for the small systems this engine targets (tens to low hundreds of
// atoms).
package forcefield

import (
	"math"

	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/md"
)

// Field evaluates the simplified non-bonded force field. A pair closer
// than the minimum-distance floor or farther than Cutoff contributes
// exactly zero force and potential.
type Field struct {
	Cutoff float64 // Å
}

func New(cutoff float64) *Field {
	return &Field{Cutoff: cutoff}
}

// combine applies Lorentz-Berthelot combining rules: arithmetic mean for
// sigma, geometric mean for epsilon.
func combine(a, b chem.Element) (sigma, epsilon float64) {
	return (a.Sigma + b.Sigma) / 2.0, math.Sqrt(a.Epsilon * b.Epsilon)
}

// ljForce returns the Lennard-Jones force magnitude at separation r,
// positive for repulsion.
func ljForce(sigma, epsilon, r float64) float64 {
	sr6 := math.Pow(sigma/r, 6)
	sr12 := sr6 * sr6
	return 24.0 * epsilon * (2.0*sr12 - sr6) / r
}

// ljPotential returns the Lennard-Jones potential at separation r.
func ljPotential(sigma, epsilon, r float64) float64 {
	sr6 := math.Pow(sigma/r, 6)
	sr12 := sr6 * sr6
	return 4.0 * epsilon * (sr12 - sr6)
}

func (f *Field) inRange(r float64) bool {
	return r > md.MinSeparation && r <= f.Cutoff
}

// VanDerWaals returns the Lennard-Jones force on atom a due to atom b,
// in kcal/(mol·Å), directed along the inter-atomic axis.
func (f *Field) VanDerWaals(a, b chem.Atom) md.Vec3 {
	delta := a.Pos.Sub(b.Pos)
	r := delta.Norm()
	if !f.inRange(r) {
		return md.Vec3{}
	}
	sigma, epsilon := combine(chem.Lookup(a.Element), chem.Lookup(b.Element))
	return delta.Scale(ljForce(sigma, epsilon, r) / r)
}

// Electrostatic returns the Coulomb force on atom a due to atom b, in
// kcal/(mol·Å). Zero if either charge is zero.
func (f *Field) Electrostatic(a, b chem.Atom) md.Vec3 {
	if a.Charge == 0 || b.Charge == 0 {
		return md.Vec3{}
	}
	delta := a.Pos.Sub(b.Pos)
	r := delta.Norm()
	if !f.inRange(r) {
		return md.Vec3{}
	}
	mag := md.CoulombK * a.Charge * b.Charge / (r * r)
	return delta.Scale(mag / r)
}

// PairPotential returns the summed Lennard-Jones and Coulomb potential
// for a pair, in kcal/mol.
func (f *Field) PairPotential(a, b chem.Atom) float64 {
	r := a.Pos.Sub(b.Pos).Norm()
	if !f.inRange(r) {
		return 0
	}
	sigma, epsilon := combine(chem.Lookup(a.Element), chem.Lookup(b.Element))
	v := ljPotential(sigma, epsilon, r)
	if a.Charge != 0 && b.Charge != 0 {
		v += md.CoulombK * a.Charge * b.Charge / r
	}
	return v
}

// Accumulate recomputes sys.Force in place: for every unique pair within
// cutoff, the combined LJ and Coulomb force is added to one atom and
// subtracted from the other.
func (f *Field) Accumulate(sys *md.System) {
	sys.ZeroForces()

	n := sys.N()
	sigmas := make([]float64, n)
	epsilons := make([]float64, n)
	for i := 0; i < n; i++ {
		e := chem.Lookup(sys.Elements[i])
		sigmas[i] = e.Sigma
		epsilons[i] = e.Epsilon
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			delta := sys.Pos[i].Sub(sys.Pos[j])
			r := delta.Norm()
			if !f.inRange(r) {
				continue
			}

			sigma := (sigmas[i] + sigmas[j]) / 2.0
			epsilon := math.Sqrt(epsilons[i] * epsilons[j])
			mag := ljForce(sigma, epsilon, r)

			if qi, qj := sys.Charges[i], sys.Charges[j]; qi != 0 && qj != 0 {
				mag += md.CoulombK * qi * qj / (r * r)
			}

			fij := delta.Scale(mag / r)
			sys.Force[i] = sys.Force[i].Add(fij)
			sys.Force[j] = sys.Force[j].Sub(fij)
		}
	}
}

// Potential returns the total pair potential energy of the system in
// kcal/mol, summed over unique unordered pairs.
func (f *Field) Potential(sys *md.System) float64 {
	total := 0.0
	n := sys.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			delta := sys.Pos[i].Sub(sys.Pos[j])
			r := delta.Norm()
			if !f.inRange(r) {
				continue
			}
			sigma, epsilon := combine(chem.Lookup(sys.Elements[i]), chem.Lookup(sys.Elements[j]))
			total += ljPotential(sigma, epsilon, r)
			if qi, qj := sys.Charges[i], sys.Charges[j]; qi != 0 && qj != 0 {
				total += md.CoulombK * qi * qj / r
			}
		}
	}
	return total
}
