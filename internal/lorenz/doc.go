// Package lorenz integrates the Lorenz system with a fixed-step explicit
// Euler scheme.
//
// The system is
//
//	dx/dt = s*(y - x)
//	dy/dt = x*(r - z) - y
//	dz/dt = x*y - b*z
//
// with the three coefficients held in [Params]. A full frame of geometry is
// produced by [Trajectory], which always starts from the same seed point and
// takes exactly [Steps] steps of size [Dt]:
//
//	pts := lorenz.Trajectory(lorenz.DefaultParams(), nil)
//
// Integration is deterministic: identical parameters yield bit-identical
// trajectories. Nothing here validates or clamps the coefficients; values
// that blow up produce Inf or NaN samples, which callers are expected to
// tolerate.
package lorenz
