package lorenz

import (
	"math"
	"testing"
)

func TestStepFromSeed(t *testing.T) {
	p := DefaultParams()
	q := p.Step(Seed(), Dt)

	// dx = 10*(1-1) = 0, dy = 1*(28-1)-1 = 26, dz = 1*1 - 2.6666*1
	if math.Abs(q.X-1.0) > 1e-12 {
		t.Errorf("x after one step: got %.9f, expected 1.0", q.X)
	}
	if math.Abs(q.Y-1.026) > 1e-12 {
		t.Errorf("y after one step: got %.9f, expected 1.026", q.Y)
	}
	if math.Abs(q.Z-0.9983334) > 1e-9 {
		t.Errorf("z after one step: got %.9f, expected 0.9983334", q.Z)
	}
}

func TestStepUsesIncomingState(t *testing.T) {
	// dt large enough that updating x before evaluating dy would show.
	p := Params{S: 1.0, B: 0.0, R: 0.0}
	q := p.Step(Point{1.0, 2.0, 3.0}, 1.0)

	want := Point{2.0, -3.0, 5.0}
	if q != want {
		t.Errorf("step result: got %+v, expected %+v", q, want)
	}
}

func TestTrajectoryShape(t *testing.T) {
	p := DefaultParams()
	pts := Trajectory(p, nil)

	if len(pts) != Steps {
		t.Fatalf("trajectory length: got %d, expected %d", len(pts), Steps)
	}
	if pts[0] == Seed() {
		t.Error("first trajectory point is the seed, expected the state after one step")
	}
	if first := p.Step(Seed(), Dt); pts[0] != first {
		t.Errorf("first trajectory point: got %+v, expected %+v", pts[0], first)
	}
}

func TestTrajectoryDeterministic(t *testing.T) {
	p := DefaultParams()
	a := Trajectory(p, nil)
	b := Trajectory(p, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trajectories differ at step %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTrajectoryReusesBuffer(t *testing.T) {
	buf := make([]Point, Steps)
	pts := Trajectory(DefaultParams(), buf[:0])

	if &pts[0] != &buf[0] {
		t.Error("trajectory allocated a new buffer despite sufficient capacity")
	}
}

func TestTrajectorySurvivesDivergence(t *testing.T) {
	p := Params{S: 1e6, B: 2.6666, R: 1e6}
	pts := Trajectory(p, nil)

	if len(pts) != Steps {
		t.Fatalf("diverging trajectory length: got %d, expected %d", len(pts), Steps)
	}
	last := pts[len(pts)-1]
	if finite(last.X) && finite(last.Y) && finite(last.Z) {
		t.Errorf("expected divergence to non-finite values, got %+v", last)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func BenchmarkTrajectory(b *testing.B) {
	p := DefaultParams()
	var buf []Point

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = Trajectory(p, buf)
	}
}
