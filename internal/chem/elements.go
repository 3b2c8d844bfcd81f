package chem

// Element carries the per-element constants used by the force field:
// atomic mass in amu and Lennard-Jones parameters (sigma in Å, epsilon
// in kcal/mol).
type Element struct {
	Symbol  string
	Mass    float64
	Sigma   float64
	Epsilon float64
}

// Common bio-elements plus the noble gases used by the built-in example
// systems. Masses follow standard atomic weights; LJ parameters are
// generic OPLS-flavored values for the simplified force field.
var elements = map[string]Element{
	"H":  {"H", 1.008, 2.50, 0.030},
	"C":  {"C", 12.011, 3.40, 0.086},
	"N":  {"N", 14.007, 3.25, 0.170},
	"O":  {"O", 15.999, 3.12, 0.210},
	"F":  {"F", 18.998, 2.94, 0.061},
	"P":  {"P", 30.974, 3.74, 0.200},
	"S":  {"S", 32.06, 3.60, 0.250},
	"Cl": {"Cl", 35.45, 3.40, 0.300},
	"Br": {"Br", 79.904, 3.47, 0.470},
	"I":  {"I", 126.904, 3.55, 0.580},
	"Na": {"Na", 22.990, 3.33, 0.003},
	"K":  {"K", 39.098, 4.93, 0.0003},
	"Mg": {"Mg", 24.305, 2.91, 0.875},
	"Ca": {"Ca", 40.078, 3.47, 0.450},
	"Zn": {"Zn", 65.38, 1.95, 0.250},
	"Fe": {"Fe", 55.845, 2.59, 0.013},
	"He": {"He", 4.003, 2.56, 0.020},
	"Ne": {"Ne", 20.180, 2.75, 0.069},
	"Ar": {"Ar", 39.948, 3.40, 0.238},
}

// Lookup returns the element constants for a symbol. Unknown symbols
// silently fall back to carbon.
func Lookup(symbol string) Element {
	if e, ok := elements[symbol]; ok {
		return e
	}
	return elements["C"]
}

// Mass returns the atomic mass for a symbol, with the carbon fallback.
func Mass(symbol string) float64 {
	return Lookup(symbol).Mass
}

// IsHBondAcceptor reports whether an element can accept a hydrogen bond
// in the detector's simplified model.
func IsHBondAcceptor(symbol string) bool {
	switch symbol {
	case "N", "O", "F":
		return true
	}
	return false
}
