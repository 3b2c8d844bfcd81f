package md

// Unit system: Å / fs / amu, force-field energies in kcal/mol, reported
// energies in kJ/mol.
const (
	// Boltzmann is the Boltzmann constant in kJ/(mol·K).
	Boltzmann = 0.0083144621

	// CoulombK is the Coulomb constant in kcal·Å/(mol·e²).
	CoulombK = 332.0637

	// KcalToKJ converts kcal/mol to kJ/mol.
	KcalToKJ = 4.184

	// AccelFactor converts a force in kcal/(mol·Å) divided by a mass in
	// amu into an acceleration in Å/fs².
	AccelFactor = 4.184e-4

	// KineticFactor converts amu·(Å/fs)² into kJ/mol.
	KineticFactor = 1.0e4

	// MinSeparation is the distance floor in Å below which pairwise
	// force and potential contributions are zero.
	MinSeparation = 0.1
)
