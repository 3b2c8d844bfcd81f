package thermo

import (
	"math"

	"github.com/san-kum/moldyn/internal/md"
)

// Berendsen rescales every velocity by sqrt(1 + (dt/τ)(T_target/T − 1))
// after an integration step, exponentially relaxing the measured
// temperature toward Target. Application is a no-op while the measured
// temperature is non-positive, which guards an initially motionless
// system against division by zero.
type Berendsen struct {
	Target float64 // K
	Tau    float64 // relaxation time, same units as dt
}

func NewBerendsen(target, tau float64) *Berendsen {
	return &Berendsen{Target: target, Tau: tau}
}

func (b *Berendsen) Apply(sys *md.System, dt float64) {
	current := Temperature(sys)
	if current <= 0 {
		return
	}

	arg := 1.0 + (dt/b.Tau)*(b.Target/current-1.0)
	if arg <= 0 {
		// Coupling stronger than the temperature excess allows;
		// rescaling would need an imaginary factor.
		return
	}

	scale := math.Sqrt(arg)
	for i := range sys.Vel {
		sys.Vel[i] = sys.Vel[i].Scale(scale)
	}
}

// None performs no rescaling, yielding microcanonical dynamics.
type None struct{}

func (None) Apply(sys *md.System, dt float64) {}
