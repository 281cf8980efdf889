package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding
	ToggleLive key.Binding

	// Selection
	Up   key.Binding
	Down key.Binding

	// Tile actions
	MoveUp         key.Binding
	MoveDown       key.Binding
	FeatureSlotA   key.Binding
	FeatureSlotB   key.Binding
	Unfeature      key.Binding
	ToggleCollapse key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		ToggleLive: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pause/resume polling"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Select previous league"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Select next league"),
		),

		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "Move league up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "Move league down"),
		),
		FeatureSlotA: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Feature in slot 1"),
		),
		FeatureSlotB: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Feature in slot 2"),
		),
		Unfeature: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Remove from featured"),
		),
		ToggleCollapse: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Collapse/expand"),
		),
	}
}
