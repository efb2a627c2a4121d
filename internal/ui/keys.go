package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard fallback for touch input.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleLabels key.Binding
	Back         key.Binding

	// Corner buttons, top-left to bottom-right
	Corner [4]key.Binding

	// Page navigation
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Library key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleLabels: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle labels"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),

		Corner: [4]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Top-left button")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Top-right button")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Bottom-left button")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "Bottom-right button")),
		},

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Open"),
		),
		Library: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Apps library"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Corner[0], k.Corner[1], k.Corner[2], k.Corner[3], k.Back},
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Library},
		{k.CycleTheme, k.ToggleLabels, k.Help, k.Quit},
	}
}
