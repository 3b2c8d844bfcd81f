package forcefield

import (
	"math"
	"testing"

	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/md"
)

func argonAt(x float64) chem.Atom {
	return chem.Atom{ID: "ar", Element: "Ar", Pos: md.Vec3{x, 0, 0}}
}

func TestVanDerWaalsZeroAtEquilibrium(t *testing.T) {
	f := New(12.0)
	sigma := chem.Lookup("Ar").Sigma
	req := sigma * math.Pow(2.0, 1.0/6.0)

	force := f.VanDerWaals(argonAt(0), argonAt(req))
	if mag := force.Norm(); mag > 1e-9 {
		t.Errorf("expected zero force at equilibrium distance, got magnitude %g", mag)
	}
}

func TestVanDerWaalsSign(t *testing.T) {
	f := New(12.0)
	sigma := chem.Lookup("Ar").Sigma
	req := sigma * math.Pow(2.0, 1.0/6.0)

	// Closer than equilibrium: repulsion pushes the first atom away
	// from the second (negative x here).
	repulsive := f.VanDerWaals(argonAt(0), argonAt(req*0.9))
	if repulsive[0] >= 0 {
		t.Errorf("expected repulsive force below equilibrium, got Fx=%g", repulsive[0])
	}

	attractive := f.VanDerWaals(argonAt(0), argonAt(req*1.2))
	if attractive[0] <= 0 {
		t.Errorf("expected attractive force above equilibrium, got Fx=%g", attractive[0])
	}
}

func TestElectrostaticDecreasing(t *testing.T) {
	f := New(50.0)

	charged := func(x, q float64) chem.Atom {
		return chem.Atom{Element: "Na", Pos: md.Vec3{x, 0, 0}, Charge: q}
	}

	prev := math.Inf(1)
	for _, r := range []float64{2.0, 3.0, 5.0, 8.0, 12.0} {
		mag := f.Electrostatic(charged(0, 1), charged(r, 1)).Norm()
		if mag <= 0 {
			t.Fatalf("expected positive magnitude at r=%.1f", r)
		}
		if mag >= prev {
			t.Errorf("magnitude not strictly decreasing at r=%.1f: %g >= %g", r, mag, prev)
		}
		prev = mag
	}
}

func TestElectrostaticZeroCharge(t *testing.T) {
	f := New(12.0)
	a := chem.Atom{Element: "O", Pos: md.Vec3{0, 0, 0}, Charge: 0}
	b := chem.Atom{Element: "H", Pos: md.Vec3{2, 0, 0}, Charge: 0.4}

	if force := f.Electrostatic(a, b); force.Norm() != 0 {
		t.Errorf("expected zero force for zero charge, got %v", force)
	}
}

func TestCutoffAndFloor(t *testing.T) {
	f := New(10.0)

	tests := []struct {
		name string
		r    float64
	}{
		{"beyond cutoff", 10.5},
		{"below floor", 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := chem.Atom{Element: "O", Pos: md.Vec3{0, 0, 0}, Charge: -0.8}
			b := chem.Atom{Element: "N", Pos: md.Vec3{tt.r, 0, 0}, Charge: 0.5}

			if force := f.VanDerWaals(a, b); force.Norm() != 0 {
				t.Errorf("vdW force not zero at r=%.2f: %v", tt.r, force)
			}
			if force := f.Electrostatic(a, b); force.Norm() != 0 {
				t.Errorf("electrostatic force not zero at r=%.2f: %v", tt.r, force)
			}
			if v := f.PairPotential(a, b); v != 0 {
				t.Errorf("potential not zero at r=%.2f: %g", tt.r, v)
			}
		})
	}
}

func TestPairPotentialAtEquilibrium(t *testing.T) {
	f := New(12.0)
	ar := chem.Lookup("Ar")
	req := ar.Sigma * math.Pow(2.0, 1.0/6.0)

	v := f.PairPotential(argonAt(0), argonAt(req))
	if math.Abs(v+ar.Epsilon) > 1e-9 {
		t.Errorf("expected potential -epsilon (%g) at equilibrium, got %g", -ar.Epsilon, v)
	}
}

func TestAccumulateNewtonThirdLaw(t *testing.T) {
	f := New(12.0)

	sys := md.NewSystem("test", 3)
	for i, el := range []string{"O", "H", "N"} {
		sys.Elements[i] = el
		sys.Masses[i] = chem.Mass(el)
	}
	sys.Charges = []float64{-0.8, 0.4, 0.2}
	sys.Pos[0] = md.Vec3{0, 0, 0}
	sys.Pos[1] = md.Vec3{2.2, 0.3, 0}
	sys.Pos[2] = md.Vec3{1.0, 2.8, 0.5}
	sys.Reindex()

	f.Accumulate(sys)

	var total md.Vec3
	for _, force := range sys.Force {
		total = total.Add(force)
	}
	if total.Norm() > 1e-9 {
		t.Errorf("pair forces do not cancel: net %v", total)
	}
}

func TestUnknownElementFallsBackToCarbon(t *testing.T) {
	f := New(12.0)

	unknown := chem.Atom{Element: "Xx", Pos: md.Vec3{0, 0, 0}}
	carbon := chem.Atom{Element: "C", Pos: md.Vec3{0, 0, 0}}
	other := chem.Atom{Element: "O", Pos: md.Vec3{3.1, 0, 0}}

	got := f.VanDerWaals(unknown, other)
	want := f.VanDerWaals(carbon, other)
	if got.Sub(want).Norm() > 1e-12 {
		t.Errorf("unknown element force %v, want carbon's %v", got, want)
	}
}
