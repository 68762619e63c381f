package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenzview/internal/lorenz"
)

const helpOverlay = `
╔════════════════════════════════════════╗
║           KEYBOARD SHORTCUTS           ║
╠════════════════════════════════════════╣
║  Arrows  - Rotate the view 5 degrees   ║
║  + / -   - Zoom in / zoom out          ║
║  s/S b/B - Raise / lower s, b          ║
║  r/R     - Raise / lower r             ║
║  o       - Start / stop the spin       ║
║  x y z   - Look down an axis           ║
║  0       - Reset the view angle        ║
║  m       - Toggle the side panel       ║
║  t       - Cycle color themes          ║
║  ?       - Toggle this help            ║
║  q, esc  - Quit                        ║
╚════════════════════════════════════════╝`

// View renders the whole screen from the cached frame; the heavy work
// already happened in redraw.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("LORENZ ATTRACTOR") + "\n")
	b.WriteString(canvasStyle.Render(strings.TrimRight(m.frame, "\n")) + "\n")
	b.WriteString(statusStyle.Render(m.statusLine()))

	out := b.String()
	if m.showPanel {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, m.panel())
	}
	if m.showHelp {
		return helpOverlay + "\n\n" + out
	}
	return out
}

func (m Model) statusLine() string {
	return fmt.Sprintf("View Angle=%d,%d; s = %f; b = %f; r = %f",
		m.view.Azimuth, m.view.Elevation, m.view.Params.S, m.view.Params.B, m.view.Params.R)
}

func (m Model) panel() string {
	mode := "MANUAL"
	if m.view.Animate {
		mode = "SPINNING"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("VIEW") + "\n")
	s.WriteString(labelStyle.Render("Mode") + valueStyle.Render(mode) + "\n")
	s.WriteString(labelStyle.Render("Azimuth") + valueStyle.Render(fmt.Sprintf("%d°", m.view.Azimuth)) + "\n")
	s.WriteString(labelStyle.Render("Elevation") + valueStyle.Render(fmt.Sprintf("%d°", m.view.Elevation)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2f", m.view.Zoom)) + "\n")
	s.WriteString(labelStyle.Render("Rate") + valueStyle.Render(fmt.Sprintf("%d fps", m.fps)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	defaults := lorenz.DefaultParams()
	s.WriteString("  " + labelStyle.Render(gauge("s", m.view.Params.S, defaults.S)) + "\n")
	s.WriteString("  " + labelStyle.Render(gauge("b", m.view.Params.B, defaults.B)) + "\n")
	s.WriteString("  " + labelStyle.Render(gauge("r", m.view.Params.R, defaults.R)) + "\n")

	if ser := series(m.buf, 110); len(ser) > 1 {
		chart := asciigraph.Plot(ser, asciigraph.Height(5), asciigraph.Width(24), asciigraph.Caption("x(t)"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	} else {
		s.WriteString("\n" + helpStyle.Render("trajectory diverged") + "\n")
	}

	s.WriteString(helpStyle.Render("\n────────────────────\nO:Spin 0:Reset Q:Quit\nM:Panel T:Theme ?:Help"))
	return panelStyle.Render(s.String())
}

// gauge draws a bracket bar centered on twice the default value, so the
// default sits at half scale.
func gauge(name string, val, initial float64) string {
	const barWidth = 10
	ratio := val / (2.0 * initial)
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(barWidth))
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
	return fmt.Sprintf("%-2s %s %.2f", name, bar, val)
}

// series downsamples the x coordinate of the trajectory for the side
// chart, cutting off at the first non-finite sample.
func series(pts []lorenz.Point, n int) []float64 {
	if len(pts) == 0 || n <= 0 {
		return nil
	}
	step := len(pts) / n
	if step < 1 {
		step = 1
	}
	out := make([]float64, 0, n+1)
	for i := 0; i < len(pts); i += step {
		v := pts[i].X
		if math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}
		out = append(out, v)
	}
	return out
}
