package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the terminal display.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
	}

	CurrentTheme = ThemeRetroGreen

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// Styles derived from the current theme. Rebuilt by applyTheme whenever the
// theme changes.
var (
	headerStyle lipgloss.Style
	canvasStyle lipgloss.Style
	statusStyle lipgloss.Style
	labelStyle  lipgloss.Style
	valueStyle  lipgloss.Style
	panelStyle  lipgloss.Style
	graphStyle  lipgloss.Style
	helpStyle   lipgloss.Style
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	CurrentTheme = t
	headerStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	canvasStyle = lipgloss.NewStyle().Foreground(t.Accent).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(t.Text)
	labelStyle = lipgloss.NewStyle().Foreground(t.Muted).Width(11)
	valueStyle = lipgloss.NewStyle().Foreground(t.Text)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(0, 2).Width(panelWidth)
	graphStyle = lipgloss.NewStyle().Foreground(t.Accent)
	helpStyle = lipgloss.NewStyle().Foreground(t.Muted)
}

// cycleTheme advances to the next palette in order.
func cycleTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			applyTheme(Themes[(i+1)%len(Themes)])
			return
		}
	}
	applyTheme(Themes[0])
}
