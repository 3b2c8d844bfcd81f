// Package integrators provides time-stepping schemes for the simulation
// arena. Velocity Verlet is the only implemented variant.
package integrators

import "github.com/san-kum/moldyn/internal/md"

// VelocityVerlet advances the arena one step using the symplectic
// velocity Verlet scheme: positions from current forces, a force
// recomputation at the new positions, then velocities from the average
// of old and new accelerations. Callers must have populated sys.Force
// before the first step.
type VelocityVerlet struct {
	oldAcc []md.Vec3
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) ensureScratch(n int) {
	if len(v.oldAcc) != n {
		v.oldAcc = make([]md.Vec3, n)
	}
}

func (v *VelocityVerlet) Step(sys *md.System, f md.ForceModel, dt float64) {
	n := sys.N()
	v.ensureScratch(n)

	for i := 0; i < n; i++ {
		acc := sys.Force[i].Scale(md.AccelFactor / sys.Masses[i])
		v.oldAcc[i] = acc
		sys.Pos[i] = sys.Pos[i].Add(sys.Vel[i].Scale(dt)).Add(acc.Scale(0.5 * dt * dt))
	}

	f.Accumulate(sys)

	halfDt := 0.5 * dt
	for i := 0; i < n; i++ {
		acc := sys.Force[i].Scale(md.AccelFactor / sys.Masses[i])
		sys.Vel[i] = sys.Vel[i].Add(v.oldAcc[i].Add(acc).Scale(halfDt))
	}
}
