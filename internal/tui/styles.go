package tui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor  = "#7C3AED"
	okColor      = "#10B981"
	warnColor    = "#F59E0B"
	errColor     = "#EF4444"
	dimColor     = "#6B7280"
	surfaceColor = "#1F2937"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(okColor))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warnColor))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errColor))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(accentColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(accentColor)).
				Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accentColor)).
			Padding(1, 2)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(surfaceColor)).
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)
)

// Status glyphs (pre-rendered).
var (
	glyphOK      = okStyle.Render("✓")
	glyphErr     = errStyle.Render("✗")
	glyphMuted   = warnStyle.Render("●")
	glyphPending = warnStyle.Render("*")
	glyphLocked  = warnStyle.Render("\U0001F512")
)
