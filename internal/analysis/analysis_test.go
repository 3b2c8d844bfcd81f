package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/moldyn/internal/engine"
	"github.com/san-kum/moldyn/internal/md"
)

func snapAt(step int, time float64, pos ...md.Vec3) engine.Snapshot {
	snap := engine.Snapshot{Step: step, Time: time}
	for i, p := range pos {
		snap.Positions = append(snap.Positions, engine.AtomPosition{
			AtomID: string(rune('a' + i)),
			Pos:    p,
		})
	}
	return snap
}

func TestRecorderEveryTick(t *testing.T) {
	r := NewRecorder(1)
	for i := 0; i < 5; i++ {
		r.OnTick(snapAt(i, float64(i), md.Vec3{float64(i), 0, 0}))
	}
	if r.Len() != 5 {
		t.Fatalf("recorded %d frames, want 5", r.Len())
	}

	frames := r.Frames()
	for i, f := range frames {
		if f.Time != float64(i) {
			t.Errorf("frame %d time %g", i, f.Time)
		}
		if f.Pos[0][0] != float64(i) {
			t.Errorf("frame %d position %v", i, f.Pos[0])
		}
	}
}

func TestRecorderEveryNth(t *testing.T) {
	r := NewRecorder(3)
	for i := 0; i < 10; i++ {
		r.OnTick(snapAt(i, float64(i)))
	}
	// Ticks 0, 3, 6, 9.
	if r.Len() != 4 {
		t.Errorf("recorded %d frames, want 4", r.Len())
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("frames remain after reset: %d", r.Len())
	}
}

func TestRecorderCopiesPositions(t *testing.T) {
	r := NewRecorder(1)
	snap := snapAt(0, 0, md.Vec3{1, 2, 3})
	r.OnTick(snap)

	// Mutating the source snapshot must not change the recorded frame.
	snap.Positions[0].Pos = md.Vec3{9, 9, 9}
	if got := r.Frames()[0].Pos[0]; got != (md.Vec3{1, 2, 3}) {
		t.Errorf("recorded frame aliases snapshot: %v", got)
	}
}

func TestRecorderSeries(t *testing.T) {
	r := NewRecorder(1)
	for i := 0; i < 3; i++ {
		snap := snapAt(i, float64(i))
		snap.Physics = md.PhysicsState{Temperature: 100 + float64(i), Total: -5 + float64(i)}
		r.OnTick(snap)
	}

	temps := r.Temperatures()
	totals := r.TotalEnergies()
	for i := 0; i < 3; i++ {
		if temps[i] != 100+float64(i) {
			t.Errorf("temperature[%d] = %g", i, temps[i])
		}
		if totals[i] != -5+float64(i) {
			t.Errorf("total[%d] = %g", i, totals[i])
		}
	}
}

func TestMSDStaticAtoms(t *testing.T) {
	frames := make([]Frame, 4)
	for i := range frames {
		frames[i] = Frame{Time: float64(i), Pos: []md.Vec3{{1, 2, 3}, {-1, 0, 4}}}
	}

	for k, v := range MSD(frames) {
		if v != 0 {
			t.Errorf("MSD[%d] = %g for static atoms, want 0", k, v)
		}
	}
}

func TestMSDUniformMotion(t *testing.T) {
	// One atom moving at 0.5 Å per frame: MSD at lag k is (0.5k)².
	v := 0.5
	frames := make([]Frame, 6)
	for i := range frames {
		frames[i] = Frame{Time: float64(i), Pos: []md.Vec3{{v * float64(i), 0, 0}}}
	}

	msd := MSD(frames)
	if len(msd) != 5 {
		t.Fatalf("got %d lags, want 5", len(msd))
	}
	for k, got := range msd {
		lag := float64(k + 1)
		want := (v * lag) * (v * lag)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("MSD at lag %d: got %g, want %g", k+1, got, want)
		}
	}
}

func TestMSDDegenerate(t *testing.T) {
	if got := MSD(nil); got != nil {
		t.Errorf("MSD(nil) = %v", got)
	}
	if got := MSD([]Frame{{Pos: []md.Vec3{{}}}}); got != nil {
		t.Errorf("single frame: %v", got)
	}
	if got := MSD([]Frame{{}, {}}); got != nil {
		t.Errorf("frames without atoms: %v", got)
	}
}

func TestStats(t *testing.T) {
	s := Stats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(s.Mean-5.0) > 1e-12 {
		t.Errorf("mean: got %g, want 5", s.Mean)
	}
	// Sample standard deviation.
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("stddev: got %g, want %g", s.StdDev, want)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("min/max: got %g/%g", s.Min, s.Max)
	}

	if got := Stats(nil); got != (SeriesStats{}) {
		t.Errorf("empty series: %+v", got)
	}
}

func TestRelativeDrift(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"flat", []float64{-4, -4, -4}, 0},
		{"one percent", []float64{100, 103, 101}, 0.01},
		{"negative baseline", []float64{-2, -1}, 0.5},
		{"short", []float64{5}, 0},
		{"zero baseline", []float64{0, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDrift(tt.values); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}
