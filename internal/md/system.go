package md

// System is the simulation arena: parallel per-atom arrays indexed by a
// stable integer index, with an id-to-index map maintained for callbacks.
// Velocities and forces exist only here; they are never written back to
// the externally owned molecule record.
type System struct {
	MoleculeID string

	IDs      []string
	Elements []string
	Masses   []float64 // amu
	Charges  []float64 // e
	SP2      []bool    // sp² carbon flags, precomputed from the bond list

	Pos   []Vec3 // Å
	Vel   []Vec3 // Å/fs
	Force []Vec3 // kcal/(mol·Å)

	index map[string]int
}

// NewSystem allocates an arena for n atoms. Callers fill the per-atom
// arrays and must call Reindex before using Index.
func NewSystem(moleculeID string, n int) *System {
	return &System{
		MoleculeID: moleculeID,
		IDs:        make([]string, n),
		Elements:   make([]string, n),
		Masses:     make([]float64, n),
		Charges:    make([]float64, n),
		SP2:        make([]bool, n),
		Pos:        make([]Vec3, n),
		Vel:        make([]Vec3, n),
		Force:      make([]Vec3, n),
		index:      make(map[string]int, n),
	}
}

func (s *System) N() int { return len(s.IDs) }

// Reindex rebuilds the id-to-index map from IDs.
func (s *System) Reindex() {
	if s.index == nil {
		s.index = make(map[string]int, len(s.IDs))
	}
	for i, id := range s.IDs {
		s.index[id] = i
	}
}

// Index returns the arena index for an atom id.
func (s *System) Index(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

func (s *System) ZeroForces() {
	for i := range s.Force {
		s.Force[i] = Vec3{}
	}
}

func (s *System) ZeroVelocities() {
	for i := range s.Vel {
		s.Vel[i] = Vec3{}
	}
}

// IsValid reports whether every position and velocity is finite.
func (s *System) IsValid() bool {
	for i := range s.Pos {
		if !s.Pos[i].IsValid() || !s.Vel[i].IsValid() {
			return false
		}
	}
	return true
}
