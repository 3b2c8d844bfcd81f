// Package engine orchestrates the simulation loop: velocity seeding,
// per-tick integration, thermostatting, energy accounting, interaction
// detection, and state reporting to the external display layer.
//
// The loop is a two-state machine (Idle, Running) driven by an external
// Scheduler. Ticks are strictly sequential: a re-entrancy guard drops
// tick requests that arrive while a tick is still executing, and stop()
// cancels the pending request without preempting a running tick. Atom
// positions and velocities are exclusively owned by the engine while
// Running; state flows outward only, through observers and position
// sinks.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/forcefield"
	"github.com/san-kum/moldyn/internal/integrators"
	"github.com/san-kum/moldyn/internal/interactions"
	"github.com/san-kum/moldyn/internal/md"
	"github.com/san-kum/moldyn/internal/thermo"
)

// State is the lifecycle state of the simulation loop.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// MoleculeProvider is the external store that owns the long-lived
// molecule record. The engine looks the molecule up at start and checks
// for its continued existence every tick; if it disappears mid-run the
// loop transitions to Idle without error.
type MoleculeProvider interface {
	Lookup(id string) (*chem.Molecule, bool)
}

// StaticProvider serves a fixed set of molecules, enough for the CLI and
// for tests.
type StaticProvider struct {
	mu   sync.RWMutex
	mols map[string]*chem.Molecule
}

func NewStaticProvider(mols ...*chem.Molecule) *StaticProvider {
	p := &StaticProvider{mols: make(map[string]*chem.Molecule, len(mols))}
	for _, m := range mols {
		p.mols[m.ID] = m
	}
	return p
}

func (p *StaticProvider) Lookup(id string) (*chem.Molecule, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.mols[id]
	return m, ok
}

// Remove drops a molecule, simulating external deletion mid-run.
func (p *StaticProvider) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.mols, id)
}

// Engine is the simulation loop.
type Engine struct {
	mu        sync.Mutex
	log       Logger
	provider  MoleculeProvider
	sched     Scheduler
	observers []Observer
	sinks     []PositionSink

	state      State
	params     md.Params
	pending    *md.Params
	moleculeID string

	sys        *md.System
	field      *forcefield.Field
	integ      md.Integrator
	thermostat md.Thermostat
	rng        *rand.Rand

	clock       float64
	step        int
	physics     md.PhysicsState
	suggestions []interactions.Suggestion

	ticking atomic.Bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

func WithLogger(log Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

func WithPositionSink(s PositionSink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, s) }
}

// New validates params and returns an Idle engine.
func New(provider MoleculeProvider, sched Scheduler, params md.Params, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		log:      NoOpLogger{},
		provider: provider,
		sched:    sched,
		params:   params,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddObserver registers an additional observer. Safe to call while
// Running; the tick reads the observer list under the same lock.
func (e *Engine) AddObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Clock returns the simulation time in fs.
func (e *Engine) Clock() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// Physics returns the latest energy/temperature snapshot.
func (e *Engine) Physics() md.PhysicsState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.physics
}

// Interactions returns the latest interaction suggestion list.
func (e *Engine) Interactions() []interactions.Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]interactions.Suggestion, len(e.suggestions))
	copy(out, e.suggestions)
	return out
}

// SetParams validates p and stages it to take effect from the next tick
// onward.
func (e *Engine) SetParams(p md.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = &p
	return nil
}

// Params returns the parameters in effect (staged updates excluded).
func (e *Engine) Params() md.Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params
}

// Start seeds velocities, resets the simulation clock, transitions to
// Running, and schedules the first tick. Valid only from Idle.
func (e *Engine) Start(moleculeID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Idle {
		return ErrAlreadyRunning
	}

	mol, ok := e.provider.Lookup(moleculeID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMoleculeNotFound, moleculeID)
	}
	if len(mol.Atoms) == 0 {
		return md.ErrEmptySystem
	}

	e.moleculeID = moleculeID
	e.sys = buildSystem(mol)

	seed := e.params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))
	e.seedVelocities()

	e.field = forcefield.New(e.params.Cutoff)
	e.integ = integrators.NewVelocityVerlet()
	e.thermostat = makeThermostat(e.params)

	// Verlet consumes current forces on its first step.
	e.field.Accumulate(e.sys)

	e.clock = 0
	e.step = 0
	e.physics = thermo.Measure(e.sys, e.field)
	e.suggestions = interactions.Detect(e.sys)
	e.state = Running

	e.log.Infof("engine: started molecule %s (%d atoms)", moleculeID, e.sys.N())
	e.sched.Schedule(e.tick)
	return nil
}

// Stop cancels any scheduled tick and transitions to Idle. The
// simulation clock is preserved; Reset clears it. Valid only from
// Running.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running {
		return ErrNotRunning
	}
	e.sched.Cancel()
	e.state = Idle
	e.log.Infof("engine: stopped at t=%.1f fs", e.clock)
	return nil
}

// Reset stops if Running, discards velocities and forces, and zeroes the
// simulation clock and energy fields. Valid from any state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		e.sched.Cancel()
		e.state = Idle
	}
	if e.sys != nil {
		e.sys.ZeroVelocities()
		e.sys.ZeroForces()
	}
	e.clock = 0
	e.step = 0
	e.physics = md.PhysicsState{}
	e.suggestions = nil
	e.log.Infof("engine: reset")
}

// seedVelocities draws each velocity component independently from a
// uniform distribution scaled by the thermal velocity sqrt(k_B·T/m).
// Not a Maxwell-Boltzmann draw; the thermostat pulls the distribution
// toward the target within the first few ticks anyway.
func (e *Engine) seedVelocities() {
	for i := range e.sys.Vel {
		scale := math.Sqrt(md.Boltzmann * e.params.TargetTemp / (e.sys.Masses[i] * md.KineticFactor))
		for c := 0; c < 3; c++ {
			e.sys.Vel[i][c] = (e.rng.Float64()*2.0 - 1.0) * scale
		}
	}
}

// tick advances the simulation by one step: Integrator → Thermostat →
// EnergyAccounting → InteractionDetector, then observer notification and
// scheduling of the next tick. Overlapping tick requests are dropped.
func (e *Engine) tick() {
	if !e.ticking.CompareAndSwap(false, true) {
		return
	}
	defer e.ticking.Store(false)

	e.mu.Lock()
	if e.state != Running {
		e.mu.Unlock()
		return
	}

	if e.pending != nil {
		e.params = *e.pending
		e.pending = nil
		e.field = forcefield.New(e.params.Cutoff)
		e.thermostat = makeThermostat(e.params)
	}

	if _, ok := e.provider.Lookup(e.moleculeID); !ok {
		e.state = Idle
		e.log.Warnf("engine: molecule %s removed externally, going idle", e.moleculeID)
		e.mu.Unlock()
		return
	}

	e.integ.Step(e.sys, e.field, e.params.Dt)
	if !e.sys.IsValid() {
		e.state = Idle
		e.log.Errorf("engine: %v at t=%.1f fs, going idle", md.ErrInvalidState, e.clock)
		e.mu.Unlock()
		return
	}
	e.thermostat.Apply(e.sys, e.params.Dt)
	e.physics = thermo.Measure(e.sys, e.field)
	e.suggestions = interactions.Detect(e.sys)
	e.clock += e.params.Dt
	e.step++

	snap := e.snapshotLocked()
	observers := e.observers
	sinks := e.sinks
	e.mu.Unlock()

	for _, sink := range sinks {
		for _, p := range snap.Positions {
			sink.UpdatePosition(snap.MoleculeID, p.AtomID, p.Pos)
		}
	}
	for _, obs := range observers {
		obs.OnTick(snap)
	}

	e.mu.Lock()
	if e.state == Running {
		e.sched.Schedule(e.tick)
	}
	e.mu.Unlock()
}

// Snapshot returns a copy of the current reportable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		MoleculeID: e.moleculeID,
		Step:       e.step,
		Time:       e.clock,
		Physics:    e.physics,
	}
	if e.sys != nil {
		snap.Positions = make([]AtomPosition, e.sys.N())
		for i := range snap.Positions {
			snap.Positions[i] = AtomPosition{AtomID: e.sys.IDs[i], Pos: e.sys.Pos[i]}
		}
	}
	snap.Interactions = make([]interactions.Suggestion, len(e.suggestions))
	copy(snap.Interactions, e.suggestions)
	return snap
}

func makeThermostat(p md.Params) md.Thermostat {
	if p.Thermostat == md.ThermostatBerendsen {
		return thermo.NewBerendsen(p.TargetTemp, p.Tau)
	}
	return thermo.None{}
}

// buildSystem copies the externally supplied molecule into a fresh
// simulation arena. Unknown elements silently take carbon's mass and LJ
// parameters; missing charges stay zero.
func buildSystem(mol *chem.Molecule) *md.System {
	sys := md.NewSystem(mol.ID, len(mol.Atoms))
	sp2 := mol.SP2Carbons()
	for i, a := range mol.Atoms {
		sys.IDs[i] = a.ID
		sys.Elements[i] = a.Element
		sys.Masses[i] = chem.Mass(a.Element)
		sys.Charges[i] = a.Charge
		sys.SP2[i] = sp2[i]
		sys.Pos[i] = a.Pos
	}
	sys.Reindex()
	return sys
}
