// Package scene holds the view state of the attractor display and the
// dispatcher that mutates it. All input reaches the state through a single
// entry point, [View.Apply], which takes an [Event] and reports whether the
// caller should repaint or quit. The package knows nothing about terminals
// or rendering.
package scene

import (
	"math"
	"time"

	"github.com/san-kum/lorenzview/internal/lorenz"
)

// spinRate is the animation speed in degrees per second.
const spinRate = 90.0

// View is the complete mutable state of the display: camera angles in
// degrees, the homogeneous zoom coordinate, the animation flag, and the
// live Lorenz coefficients.
type View struct {
	Azimuth   int
	Elevation int
	Zoom      float64
	Animate   bool
	Params    lorenz.Params
}

// NewView returns the startup state: origin angles, unit zoom, animation
// off, classic coefficients.
func NewView() View {
	return View{Zoom: 1.0, Params: lorenz.DefaultParams()}
}

// Apply feeds one event through the state machine. Every key and arrow
// press requests a repaint, recognized or not; Idle repaints only while the
// animation is running.
func (v *View) Apply(ev Event) Effect {
	switch ev.Kind {
	case KeyPress:
		return v.applyKey(ev.Rune)
	case SpecialKey:
		v.pan(ev.Arrow)
		return Effect{Redraw: true}
	case Resize, Frame:
		return Effect{Redraw: true}
	case Idle:
		return Effect{Redraw: v.advance(ev.Elapsed)}
	}
	return Effect{}
}

func (v *View) applyKey(ch rune) Effect {
	switch ch {
	case Escape, 'q':
		return Effect{Quit: true}
	case '0':
		v.Azimuth, v.Elevation = 0, 0
		v.Animate = false
	case '+':
		v.Zoom -= 0.01
		v.Animate = false
	case '-':
		v.Zoom += 0.01
		v.Animate = false
	case 's':
		v.Params.S += 0.2
		v.Animate = false
	case 'S':
		v.Params.S -= 0.2
		v.Animate = false
	case 'b':
		v.Params.B += 0.1
		v.Animate = false
	case 'B':
		v.Params.B -= 0.1
		v.Animate = false
	case 'r':
		v.Params.R += 0.5
		v.Animate = false
	case 'R':
		v.Params.R -= 0.5
		v.Animate = false
	case 'o':
		v.Animate = !v.Animate
	case 'x':
		v.Azimuth, v.Elevation = 90, 0
		v.Animate = false
	case 'y':
		v.Azimuth, v.Elevation = 0, -90
		v.Animate = false
	case 'z':
		v.Azimuth, v.Elevation = 0, 0
		v.Animate = false
	}
	return Effect{Redraw: true}
}

// pan nudges the view by 5 degrees. The truncating remainder keeps both
// angles in (-360, 360); negative values are kept as-is, not folded into
// the positive range. Arrows steer freely during animation, the next Idle
// simply overwrites them.
func (v *View) pan(a Arrow) {
	switch a {
	case ArrowRight:
		v.Azimuth += 5
	case ArrowLeft:
		v.Azimuth -= 5
	case ArrowUp:
		v.Elevation += 5
	case ArrowDown:
		v.Elevation -= 5
	}
	v.Azimuth %= 360
	v.Elevation %= 360
}

// advance moves the spin animation to where the wall clock says it should
// be. Both angles track the same value, truncated to whole degrees.
func (v *View) advance(elapsed time.Duration) bool {
	if !v.Animate {
		return false
	}
	deg := int(math.Mod(spinRate*elapsed.Seconds(), 360))
	v.Azimuth = deg
	v.Elevation = deg
	return true
}
