// Package ui runs the terminal program: it owns the event loop, translates
// key and window messages into scene events, and paints frames.
package ui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lorenzview/internal/config"
	"github.com/san-kum/lorenzview/internal/lorenz"
	"github.com/san-kum/lorenzview/internal/render"
	"github.com/san-kum/lorenzview/internal/scene"
)

// panelWidth is the side panel width in cells, border included.
const panelWidth = 36

type TickMsg time.Time

// Model holds the view state machine plus everything the terminal needs:
// the canvas, the trajectory scratch buffer, and the rendered frame. The
// frame is repainted only when a scene event asks for it, so idle ticks
// with the animation off cost nothing.
type Model struct {
	view   scene.View
	canvas *render.Canvas
	buf    []lorenz.Point
	frame  string
	start  time.Time
	fps    int

	width, height int
	showPanel     bool
	showHelp      bool
}

func NewModel(cfg *config.Config) Model {
	view := scene.NewView()
	view.Params = cfg.Params()
	view.Azimuth = cfg.Azimuth
	view.Elevation = cfg.Elevation
	view.Zoom = cfg.Zoom

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	m := Model{
		view:      view,
		start:     time.Now(),
		fps:       fps,
		width:     80,
		height:    24,
		showPanel: true,
	}
	m.layout()
	if eff := m.view.Apply(scene.Event{Kind: scene.Frame}); eff.Redraw {
		m.redraw()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles terminal messages and feeds the scene dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "m":
			m.showPanel = !m.showPanel
			m.layout()
			m.redraw()
			return m, nil
		case "t":
			cycleTheme()
			return m, nil
		}
		ev, ok := keyEvent(msg)
		if !ok {
			return m, nil
		}
		eff := m.view.Apply(ev)
		if eff.Quit {
			return m, tea.Quit
		}
		if eff.Redraw {
			m.redraw()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		if eff := m.view.Apply(scene.Event{Kind: scene.Resize, Width: msg.Width, Height: msg.Height}); eff.Redraw {
			m.redraw()
		}
		return m, nil

	case TickMsg:
		elapsed := time.Time(msg).Sub(m.start)
		if eff := m.view.Apply(scene.Event{Kind: scene.Idle, Elapsed: elapsed}); eff.Redraw {
			m.redraw()
		}
		return m, m.tick()
	}
	return m, nil
}

// keyEvent translates a terminal key into a scene event. Keys the scene has
// no notion of (function keys, chords) report ok=false.
func keyEvent(msg tea.KeyMsg) (scene.Event, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return scene.Event{Kind: scene.KeyPress, Rune: scene.Escape}, true
	case tea.KeyUp:
		return scene.Event{Kind: scene.SpecialKey, Arrow: scene.ArrowUp}, true
	case tea.KeyDown:
		return scene.Event{Kind: scene.SpecialKey, Arrow: scene.ArrowDown}, true
	case tea.KeyLeft:
		return scene.Event{Kind: scene.SpecialKey, Arrow: scene.ArrowLeft}, true
	case tea.KeyRight:
		return scene.Event{Kind: scene.SpecialKey, Arrow: scene.ArrowRight}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return scene.Event{Kind: scene.KeyPress, Rune: msg.Runes[0]}, true
		}
	}
	return scene.Event{}, false
}

// layout sizes the canvas to the terminal, leaving room for the header,
// the status line, and the side panel when shown.
func (m *Model) layout() {
	cw := m.width
	if m.showPanel {
		cw -= panelWidth
	}
	cw -= 2 // canvas padding
	ch := m.height - 3
	if cw < 10 {
		cw = 10
	}
	if ch < 4 {
		ch = 4
	}
	m.canvas = render.NewCanvas(cw, ch)
}

// redraw integrates a fresh trajectory under the current coefficients and
// rasterizes it. The whole strip is recomputed from the seed every time;
// nothing persists between frames but the scratch buffer.
func (m *Model) redraw() {
	m.buf = lorenz.Trajectory(m.view.Params, m.buf)
	cam := render.Camera{
		Azimuth:   m.view.Azimuth,
		Elevation: m.view.Elevation,
		Zoom:      m.view.Zoom,
	}
	render.Frame(m.canvas, cam, m.buf)
	m.frame = m.canvas.String()
}

// Run starts the program in the alternate screen and blocks until exit.
// Setting LORENZVIEW_DEBUG to a path routes the standard logger there.
func Run(cfg *config.Config) error {
	if path := os.Getenv("LORENZVIEW_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "lorenzview")
		if err != nil {
			return err
		}
		defer f.Close()
	}
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
