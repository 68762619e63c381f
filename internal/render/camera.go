package render

import "math"

// halfExtent is the half-size of the orthographic box the scene lives in.
const halfExtent = 2.0

// Camera is an orthographic view of display space. Angles are whole
// degrees: azimuth spins about the vertical axis, elevation about the
// horizontal, applied in that order. Zoom is the homogeneous coordinate
// divided out of trajectory vertices; axes are drawn at 1 and hold still.
type Camera struct {
	Azimuth   int
	Elevation int
	Zoom      float64
}

// projector is a camera with its per-frame trigonometry and grid mapping
// precomputed, so projecting 50k points costs multiplies only.
type projector struct {
	cosA, sinA float64
	cosE, sinE float64
	aspect     float64
	dw, dh     float64
}

func newProjector(cam Camera, c *Canvas) projector {
	a := float64(cam.Azimuth) * math.Pi / 180
	e := float64(cam.Elevation) * math.Pi / 180
	pr := projector{
		cosA:   math.Cos(a),
		sinA:   math.Sin(a),
		cosE:   math.Cos(e),
		sinE:   math.Sin(e),
		aspect: 1,
		dw:     float64(c.DotWidth()),
		dh:     float64(c.DotHeight()),
	}
	// A cell is 2x4 dots, so the dot grid ratio plays the part of the
	// window aspect ratio.
	if pr.dh > 0 {
		pr.aspect = pr.dw / pr.dh
	}
	return pr
}

// dot projects one point with homogeneous coordinate w onto the dot grid.
// Results may be non-finite or far off-grid; callers clip.
func (pr projector) dot(x, y, z, w float64) (float64, float64) {
	// azimuth about the vertical axis first, then elevation
	x, z = x*pr.cosA+z*pr.sinA, -x*pr.sinA+z*pr.cosA
	y = y*pr.cosE - z*pr.sinE
	// symmetric ortho box, aspect-corrected, then the homogeneous divide
	nx := x / (halfExtent * pr.aspect * w)
	ny := y / (halfExtent * w)
	// NDC to dots, y down
	return (nx + 1) / 2 * (pr.dw - 1), (1 - ny) / 2 * (pr.dh - 1)
}
