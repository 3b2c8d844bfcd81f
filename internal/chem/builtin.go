package chem

import (
	"fmt"
	"math"

	"github.com/san-kum/moldyn/internal/md"
)

// Builtin returns one of the hand-built example systems used by presets
// and the CLI. Available names: argon-pair, water-dimer, benzene-stack.
func Builtin(name string) (*Molecule, error) {
	switch name {
	case "argon-pair":
		return ArgonPair(), nil
	case "water-dimer":
		return WaterDimer(), nil
	case "benzene-stack":
		return BenzeneStack(), nil
	}
	return nil, fmt.Errorf("chem: unknown builtin molecule %q", name)
}

// BuiltinNames lists the available example systems.
func BuiltinNames() []string {
	return []string{"argon-pair", "water-dimer", "benzene-stack"}
}

// ArgonPair is two argon atoms at the Lennard-Jones equilibrium
// separation, the minimal system for energy-conservation checks.
func ArgonPair() *Molecule {
	sigma := Lookup("Ar").Sigma
	r := sigma * math.Pow(2.0, 1.0/6.0)
	return &Molecule{
		ID:   "argon-pair",
		Name: "Argon pair",
		Atoms: []Atom{
			{ID: "ar1", Element: "Ar", Pos: md.Vec3{0, 0, 0}},
			{ID: "ar2", Element: "Ar", Pos: md.Vec3{r, 0, 0}},
		},
	}
}

// WaterDimer is two TIP3P-charged waters with the donor hydrogen of the
// first pointing at the acceptor oxygen of the second, O–O 2.9 Å.
func WaterDimer() *Molecule {
	const qO, qH = -0.834, 0.417
	return &Molecule{
		ID:   "water-dimer",
		Name: "Water dimer",
		Atoms: []Atom{
			{ID: "o1", Element: "O", Pos: md.Vec3{0, 0, 0}, Charge: qO},
			{ID: "h1a", Element: "H", Pos: md.Vec3{0.9572, 0, 0}, Charge: qH},
			{ID: "h1b", Element: "H", Pos: md.Vec3{-0.2400, 0.9266, 0}, Charge: qH},
			{ID: "o2", Element: "O", Pos: md.Vec3{2.9, 0, 0}, Charge: qO},
			{ID: "h2a", Element: "H", Pos: md.Vec3{3.4692, 0.7698, 0}, Charge: qH},
			{ID: "h2b", Element: "H", Pos: md.Vec3{3.4692, -0.7698, 0}, Charge: qH},
		},
		Bonds: []Bond{
			{A: "o1", B: "h1a", Order: 1},
			{A: "o1", B: "h1b", Order: 1},
			{A: "o2", B: "h2a", Order: 1},
			{A: "o2", B: "h2b", Order: 1},
		},
	}
}

// BenzeneStack is two parallel benzene rings 3.6 Å apart, a textbook
// π-stacking geometry.
func BenzeneStack() *Molecule {
	const (
		rC     = 1.396
		rH     = 2.479
		offset = 3.6
	)

	mol := &Molecule{ID: "benzene-stack", Name: "Benzene stack"}

	for ring := 0; ring < 2; ring++ {
		z := float64(ring) * offset
		for i := 0; i < 6; i++ {
			angle := float64(i) * math.Pi / 3.0
			cid := fmt.Sprintf("c%d%d", ring+1, i+1)
			hid := fmt.Sprintf("h%d%d", ring+1, i+1)
			mol.Atoms = append(mol.Atoms,
				Atom{ID: cid, Element: "C", Pos: md.Vec3{rC * math.Cos(angle), rC * math.Sin(angle), z}, Charge: -0.115},
				Atom{ID: hid, Element: "H", Pos: md.Vec3{rH * math.Cos(angle), rH * math.Sin(angle), z}, Charge: 0.115},
			)
			mol.Bonds = append(mol.Bonds, Bond{A: cid, B: hid, Order: 1})
		}
		// Alternating single/double ring bonds.
		for i := 0; i < 6; i++ {
			a := fmt.Sprintf("c%d%d", ring+1, i+1)
			b := fmt.Sprintf("c%d%d", ring+1, (i+1)%6+1)
			mol.Bonds = append(mol.Bonds, Bond{A: a, B: b, Order: 1 + i%2})
		}
	}
	return mol
}
