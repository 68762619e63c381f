package scene

import "time"

// Kind discriminates the events the view state machine consumes.
type Kind int

const (
	// KeyPress is a printable key or escape, carried in Event.Rune.
	KeyPress Kind = iota
	// SpecialKey is an arrow key, carried in Event.Arrow.
	SpecialKey
	// Resize reports a new drawing surface size in cells.
	Resize
	// Frame asks for a repaint without changing state.
	Frame
	// Idle is the periodic tick that drives the spin animation.
	Idle
)

// Arrow identifies a special key.
type Arrow int

const (
	ArrowUp Arrow = iota
	ArrowDown
	ArrowLeft
	ArrowRight
)

// Escape is the rune delivered for the escape key.
const Escape rune = 27

// Event is one input to Apply. Only the fields named by Kind are
// meaningful; the rest stay zero.
type Event struct {
	Kind    Kind
	Rune    rune          // KeyPress
	Arrow   Arrow         // SpecialKey
	Width   int           // Resize
	Height  int           // Resize
	Elapsed time.Duration // Frame, Idle: wall-clock time since program start
}

// Effect reports what an event caused.
type Effect struct {
	Quit   bool
	Redraw bool
}
