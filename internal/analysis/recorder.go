// Package analysis provides in-memory trajectory analysis: a recording
// observer, mean-squared displacement, and series statistics for
// temperature and energy. Nothing here persists to disk; frames live
// only for the duration of a run.
package analysis

import (
	"sync"

	"github.com/san-kum/moldyn/internal/engine"
	"github.com/san-kum/moldyn/internal/md"
)

// Frame is one recorded tick: simulation time, the physics snapshot, and
// a copy of all atom positions in arena order.
type Frame struct {
	Time    float64
	Physics md.PhysicsState
	Pos     []md.Vec3
}

// Recorder is an engine observer that keeps every n-th tick in memory.
type Recorder struct {
	mu     sync.Mutex
	every  int
	seen   int
	frames []Frame
}

// NewRecorder records every n-th tick; n < 1 records every tick.
func NewRecorder(every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{every: every}
}

func (r *Recorder) OnTick(snap engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seen++
	if (r.seen-1)%r.every != 0 {
		return
	}

	pos := make([]md.Vec3, len(snap.Positions))
	for i, p := range snap.Positions {
		pos[i] = p.Pos
	}
	r.frames = append(r.frames, Frame{Time: snap.Time, Physics: snap.Physics, Pos: pos})
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Reset discards all recorded frames.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
	r.seen = 0
}

// Temperatures returns the recorded temperature series.
func (r *Recorder) Temperatures() []float64 {
	return r.series(func(f Frame) float64 { return f.Physics.Temperature })
}

// TotalEnergies returns the recorded total-energy series.
func (r *Recorder) TotalEnergies() []float64 {
	return r.series(func(f Frame) float64 { return f.Physics.Total })
}

func (r *Recorder) series(extract func(Frame) float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		out[i] = extract(f)
	}
	return out
}
