package render

import (
	"math"

	"github.com/san-kum/lorenzview/internal/lorenz"
)

// Frame clears the canvas and draws one complete scene: the trajectory as
// a connected line strip, unit axes from the origin, and axis letters at
// the projected tips.
func Frame(c *Canvas, cam Camera, pts []lorenz.Point) {
	c.Clear()
	pr := newProjector(cam, c)
	drawStrip(c, pr, cam.Zoom, pts)
	drawAxes(c, pr)
}

func drawStrip(c *Canvas, pr projector, w float64, pts []lorenz.Point) {
	if len(pts) < 2 {
		return
	}
	const k = lorenz.DisplayScale
	px, py := pr.dot(pts[0].X*k, pts[0].Y*k, pts[0].Z*k, w)
	for _, q := range pts[1:] {
		x, y := pr.dot(q.X*k, q.Y*k, q.Z*k, w)
		stroke(c, px, py, x, y)
		px, py = x, y
	}
}

func drawAxes(c *Canvas, pr projector) {
	ox, oy := pr.dot(0, 0, 0, 1)
	tips := []struct {
		x, y, z float64
		label   string
	}{
		{1, 0, 0, "X"},
		{0, 1, 0, "Y"},
		{0, 0, 1, "Z"},
	}
	type tipPos struct {
		x, y  float64
		label string
	}
	pos := make([]tipPos, 0, len(tips))
	for _, tip := range tips {
		tx, ty := pr.dot(tip.x, tip.y, tip.z, 1)
		stroke(c, ox, oy, tx, ty)
		pos = append(pos, tipPos{tx, ty, tip.label})
	}
	// labels go last so axis lines cannot dot over them
	for _, p := range pos {
		c.Label(int(p.x)/2, int(p.y)/4, p.label)
	}
}

// stroke rasterizes the segment between two projected endpoints. Unusable
// endpoints drop the whole segment; the rest is clipped to the grid so the
// Bresenham walk stays bounded no matter how degenerate the zoom or how
// far the trajectory has diverged.
func stroke(c *Canvas, x0, y0, x1, y1 float64) {
	if !usable(x0) || !usable(y0) || !usable(x1) || !usable(y1) {
		return
	}
	cx0, cy0, cx1, cy1, ok := clipSegment(x0, y0, x1, y1,
		float64(c.DotWidth()-1), float64(c.DotHeight()-1))
	if !ok {
		return
	}
	c.DrawLine(int(cx0), int(cy0), int(cx1), int(cy1))
}

// maxCoord bounds the dot coordinates clipSegment accepts; anything this
// far off the grid is divergence, and keeping inputs small keeps the
// clipping arithmetic itself from overflowing.
const maxCoord = 1e30

func usable(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= maxCoord
}

// clipSegment clips a segment to the box [0, xmax] x [0, ymax] with the
// Liang-Barsky parametric test. ok is false when nothing remains.
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, xmax - x0, y0, ymax - y0}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
