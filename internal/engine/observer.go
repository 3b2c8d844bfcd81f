package engine

import (
	"github.com/san-kum/moldyn/internal/interactions"
	"github.com/san-kum/moldyn/internal/md"
)

// AtomPosition is one atom's updated position, keyed for the external
// store by molecule id (on the snapshot) and atom id.
type AtomPosition struct {
	AtomID string  `json:"atom_id"`
	Pos    md.Vec3 `json:"pos"`
}

// Snapshot is the per-tick state reported to the display layer: updated
// positions, the physics state, and the current interaction list.
// Snapshots are value copies; observers may retain them.
type Snapshot struct {
	MoleculeID   string                    `json:"molecule_id"`
	Step         int                       `json:"step"`
	Time         float64                   `json:"time"` // fs
	Physics      md.PhysicsState           `json:"physics"`
	Positions    []AtomPosition            `json:"positions"`
	Interactions []interactions.Suggestion `json:"interactions"`
}

// Observer receives a snapshot after every completed tick. Observers run
// on the tick goroutine and must not call back into the engine.
type Observer interface {
	OnTick(snap Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(snap Snapshot)

func (f ObserverFunc) OnTick(snap Snapshot) { f(snap) }

// PositionSink receives one position update per atom per tick; this is
// the one-way channel through which the loop writes positions back to
// the external molecule store.
type PositionSink interface {
	UpdatePosition(moleculeID, atomID string, pos md.Vec3)
}
