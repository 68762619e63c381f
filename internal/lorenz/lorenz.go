package lorenz

const (
	// Dt is the integration step size.
	Dt = 0.001
	// Steps is the number of Euler steps taken per trajectory.
	Steps = 50000
	// DisplayScale shrinks raw trajectory coordinates to display units.
	DisplayScale = 0.03
)

// Params holds the Lorenz coefficients. The zero value is a degenerate but
// legal system; use DefaultParams for the classic attractor.
type Params struct {
	S float64 // sigma
	B float64 // beta
	R float64 // rho
}

func DefaultParams() Params { return Params{S: 10.0, B: 2.6666, R: 28.0} }

// Point is one sample of the system state.
type Point struct {
	X, Y, Z float64
}

// Seed is the starting point of every trajectory.
func Seed() Point { return Point{1.0, 1.0, 1.0} }

// Derive evaluates the Lorenz derivatives at q.
func (p Params) Derive(q Point) Point {
	return Point{
		X: p.S * (q.Y - q.X),
		Y: q.X*(p.R-q.Z) - q.Y,
		Z: q.X*q.Y - p.B*q.Z,
	}
}

// Step advances q by one explicit Euler step of size dt. All three
// derivatives are evaluated at the incoming state before any component is
// updated.
func (p Params) Step(q Point, dt float64) Point {
	d := p.Derive(q)
	return Point{
		X: q.X + dt*d.X,
		Y: q.Y + dt*d.Y,
		Z: q.Z + dt*d.Z,
	}
}

// Trajectory integrates Steps steps from Seed and returns the visited
// points, first step first; the seed itself is not emitted. buf is reused
// as backing storage when it has the capacity, so a caller redrawing every
// frame allocates once.
func Trajectory(p Params, buf []Point) []Point {
	pts := buf[:0]
	if cap(pts) < Steps {
		pts = make([]Point, 0, Steps)
	}
	q := Seed()
	for i := 0; i < Steps; i++ {
		q = p.Step(q, Dt)
		pts = append(pts, q)
	}
	return pts
}
