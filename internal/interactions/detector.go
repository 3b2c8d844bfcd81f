// Package interactions classifies emergent non-bonded contacts from
// current atom positions: hydrogen bonds and π-stacking. Detection is a
// pure function over the arena, independent of the dynamics loop, and
// retains no state between calls.
package interactions

import (
	"fmt"

	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/md"
)

// Kind labels an interaction suggestion.
type Kind string

const (
	HydrogenBond  Kind = "hydrogen_bond"
	VanDerWaals   Kind = "van_der_waals"
	Electrostatic Kind = "electrostatic"
	PiStacking    Kind = "pi_stacking"
	Hydrophobic   Kind = "hydrophobic"
)

// Suggestion is one detected interaction between two atoms. Strength is
// a score in [0,1] and Distance the measured separation in Å.
type Suggestion struct {
	Kind        Kind
	AtomA       string
	AtomB       string
	Strength    float64
	Distance    float64
	Description string
}

// Hydrogen-bond and π-stacking distance windows in Å.
const (
	hbondMin = 1.8
	hbondMax = 3.5
	piMin    = 3.0
	piMax    = 5.0
)

// Detect scans all atom pairs for hydrogen-bond and π-stacking
// signatures. π-stacking is a distance-only heuristic over sp² carbons:
// it does not verify ring membership, planarity, or relative ring
// orientation. The returned list is unordered and symmetric pairs are
// deduplicated only by the loops' own iteration order.
func Detect(sys *md.System) []Suggestion {
	suggestions := detectHydrogenBonds(sys)
	return append(suggestions, detectPiStacking(sys)...)
}

func detectHydrogenBonds(sys *md.System) []Suggestion {
	var out []Suggestion
	n := sys.N()
	for i := 0; i < n; i++ {
		if sys.Elements[i] != "H" {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || !chem.IsHBondAcceptor(sys.Elements[j]) {
				continue
			}
			d := sys.Pos[i].Sub(sys.Pos[j]).Norm()
			if d <= hbondMin || d >= hbondMax {
				continue
			}
			strength := 1.0 - (d-hbondMin)/(hbondMax-hbondMin)
			if strength < 0 {
				strength = 0
			}
			out = append(out, Suggestion{
				Kind:     HydrogenBond,
				AtomA:    sys.IDs[i],
				AtomB:    sys.IDs[j],
				Strength: strength,
				Distance: d,
				Description: fmt.Sprintf("hydrogen bond: H donor %s to %s acceptor %s at %.2f Å",
					sys.IDs[i], sys.Elements[j], sys.IDs[j], d),
			})
		}
	}
	return out
}

func detectPiStacking(sys *md.System) []Suggestion {
	var out []Suggestion
	n := sys.N()
	for i := 0; i < n; i++ {
		if !sys.SP2[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !sys.SP2[j] {
				continue
			}
			d := sys.Pos[i].Sub(sys.Pos[j]).Norm()
			if d <= piMin || d >= piMax {
				continue
			}
			strength := 1.0 - (d-piMin)/(piMax-piMin)
			if strength < 0 {
				strength = 0
			}
			out = append(out, Suggestion{
				Kind:     PiStacking,
				AtomA:    sys.IDs[i],
				AtomB:    sys.IDs[j],
				Strength: strength,
				Distance: d,
				Description: fmt.Sprintf("π-stacking: sp² carbons %s and %s at %.2f Å",
					sys.IDs[i], sys.IDs[j], d),
			})
		}
	}
	return out
}
