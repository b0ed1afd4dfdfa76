package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorBlack    = lipgloss.Color("0")
	colorRed      = lipgloss.Color("1")
	colorGreen    = lipgloss.Color("2")
	colorYellow   = lipgloss.Color("3")
	colorGray     = lipgloss.Color("7")
	colorDarkGray = lipgloss.Color("8")
	colorWhite    = lipgloss.Color("15")
)

// Theme holds the styles of one colour scheme.
type Theme struct {
	Name string
	bg   lipgloss.Color

	base       lipgloss.Style
	entered    lipgloss.Style
	cursor     lipgloss.Style
	cursorErr  lipgloss.Style
	pending    lipgloss.Style
	muted      lipgloss.Style
	highlight  lipgloss.Style
	figure     lipgloss.Style
	typo       lipgloss.Style
	remaining  lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
	helpSep    lipgloss.Style
	footerText lipgloss.Style
}

// ThemeByName returns the light theme for "light" and the dark theme for
// anything else.
func ThemeByName(name string) Theme {
	if name == "light" {
		return newTheme("light", colorBlack, colorWhite)
	}
	return newTheme("dark", colorWhite, colorBlack)
}

func newTheme(name string, fg, bg lipgloss.Color) Theme {
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	on := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Background(bg)
	}
	return Theme{
		Name:       name,
		bg:         bg,
		base:       base,
		entered:    on(colorGreen),
		cursor:     lipgloss.NewStyle().Foreground(colorWhite).Background(colorGreen).Bold(true).Blink(true),
		cursorErr:  lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed).Blink(true),
		pending:    base,
		muted:      on(colorDarkGray),
		highlight:  on(colorYellow).Bold(true),
		figure:     on(colorGray),
		typo:       on(colorRed),
		remaining:  on(colorGreen).Bold(true),
		helpKey:    on(colorYellow).Bold(true),
		helpDesc:   on(colorDarkGray),
		helpSep:    on(colorDarkGray),
		footerText: on(colorDarkGray),
	}
}
