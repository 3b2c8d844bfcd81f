// Package chem provides the molecule data model consumed by the
// simulation engine: atoms with positions and optional partial charges,
// and an informational bond list. The engine reads this model at start
// and writes updated positions back through callbacks; it never stores
// velocities or forces on these types.
package chem

import "github.com/san-kum/moldyn/internal/md"

// Atom is one atom of an externally supplied molecule. Charge is in
// elementary charge units; a missing charge is simply zero. Mass and
// Lennard-Jones parameters are derived from Element via the element
// table, falling back to carbon for unrecognized symbols.
type Atom struct {
	ID      string
	Element string
	Pos     md.Vec3 // Å
	Charge  float64 // e
}

// Bond connects two atoms by id. Bonds are informational for the
// dynamics core: non-bonded forces are computed over all pairs within
// cutoff with no exclusion of bonded neighbors. The bond list is used
// only to infer sp² carbons for π-stacking detection.
type Bond struct {
	A, B  string
	Order int
}

// Molecule is an ordered collection of atoms plus its bond list.
type Molecule struct {
	ID    string
	Name  string
	Atoms []Atom
	Bonds []Bond
}

// SP2Carbons returns a flag per atom (in atom order) marking carbons
// treated as sp²-hybridized: a carbon with any incident bond of order
// two or more, or with exactly three bonded neighbors.
func (m *Molecule) SP2Carbons() []bool {
	degree := make(map[string]int, len(m.Atoms))
	multiple := make(map[string]bool)
	for _, b := range m.Bonds {
		degree[b.A]++
		degree[b.B]++
		if b.Order >= 2 {
			multiple[b.A] = true
			multiple[b.B] = true
		}
	}

	flags := make([]bool, len(m.Atoms))
	for i, a := range m.Atoms {
		if a.Element != "C" {
			continue
		}
		flags[i] = multiple[a.ID] || degree[a.ID] == 3
	}
	return flags
}
