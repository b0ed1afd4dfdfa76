package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Select  key.Binding
	Quit    key.Binding
	Finish  key.Binding
	Restart key.Binding
	Enter   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit, k.Select}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Quit},
		{k.Select, k.Finish},
	}
}

var keys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("left"),
	),
	Next: key.NewBinding(
		key.WithKeys("right"),
	),
	// Select only documents Prev and Next in the help line.
	Select: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("left, right", "to select a time"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "to quit"),
	),
	Finish: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "to finish"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "to restart"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
}
