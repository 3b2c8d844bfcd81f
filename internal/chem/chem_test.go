package chem

import (
	"math"
	"testing"
)

func TestSP2CarbonsBenzene(t *testing.T) {
	mol := BenzeneStack()
	flags := mol.SP2Carbons()

	for i, a := range mol.Atoms {
		want := a.Element == "C"
		if flags[i] != want {
			t.Errorf("atom %s (%s): sp² = %v, want %v", a.ID, a.Element, flags[i], want)
		}
	}
}

func TestSP2CarbonsWater(t *testing.T) {
	for i, flag := range WaterDimer().SP2Carbons() {
		if flag {
			t.Errorf("atom %d flagged sp² in water", i)
		}
	}
}

func TestSP2CarbonsByDegree(t *testing.T) {
	// A carbon with three single-bonded neighbors counts as sp² even
	// without a double bond on record.
	mol := &Molecule{
		ID: "t",
		Atoms: []Atom{
			{ID: "c1", Element: "C"},
			{ID: "h1", Element: "H"},
			{ID: "h2", Element: "H"},
			{ID: "h3", Element: "H"},
		},
		Bonds: []Bond{
			{A: "c1", B: "h1", Order: 1},
			{A: "c1", B: "h2", Order: 1},
			{A: "c1", B: "h3", Order: 1},
		},
	}

	flags := mol.SP2Carbons()
	if !flags[0] {
		t.Error("three-coordinate carbon not flagged sp²")
	}
	for i := 1; i < 4; i++ {
		if flags[i] {
			t.Errorf("hydrogen %d flagged sp²", i)
		}
	}
}

func TestLookupFallsBackToCarbon(t *testing.T) {
	unknown := Lookup("Xx")
	carbon := Lookup("C")
	if unknown != carbon {
		t.Errorf("unknown element: got %+v, want carbon %+v", unknown, carbon)
	}
	if carbon.Mass != 12.011 {
		t.Errorf("carbon mass: got %g", carbon.Mass)
	}
}

func TestIsHBondAcceptor(t *testing.T) {
	tests := []struct {
		element string
		want    bool
	}{
		{"N", true},
		{"O", true},
		{"F", true},
		{"C", false},
		{"H", false},
		{"S", false},
	}
	for _, tt := range tests {
		if got := IsHBondAcceptor(tt.element); got != tt.want {
			t.Errorf("IsHBondAcceptor(%s) = %v, want %v", tt.element, got, tt.want)
		}
	}
}

func TestBuiltinLookup(t *testing.T) {
	for _, name := range BuiltinNames() {
		mol, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%s): %v", name, err)
		}
		if mol.ID != name {
			t.Errorf("builtin %s has id %s", name, mol.ID)
		}
		if len(mol.Atoms) == 0 {
			t.Errorf("builtin %s has no atoms", name)
		}
	}

	if _, err := Builtin("unobtainium"); err == nil {
		t.Error("expected error for unknown builtin")
	}
}

func TestArgonPairSeparation(t *testing.T) {
	mol := ArgonPair()
	want := Lookup("Ar").Sigma * math.Pow(2.0, 1.0/6.0)
	got := mol.Atoms[1].Pos.Sub(mol.Atoms[0].Pos).Norm()
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("separation: got %g, want equilibrium %g", got, want)
	}
}

func TestWaterDimerIsNeutral(t *testing.T) {
	total := 0.0
	for _, a := range WaterDimer().Atoms {
		total += a.Charge
	}
	if math.Abs(total) > 1e-12 {
		t.Errorf("net charge %g, want 0", total)
	}
}
