package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the profile list.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Save       key.Binding
	Import     key.Binding
	Export     key.Binding
	Load       key.Binding
	Delete     key.Binding
	Rename     key.Binding
	OpenFolder key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load / save"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r", "f2"),
			key.WithHelp("r", "rename"),
		),
		OpenFolder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open folder"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R", "f5"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setProfileActions enables the bindings that need a real profile. Delete
// and rename stay live so the dispatcher can explain why they were refused.
func (k *keyMap) setProfileActions(enabled bool) {
	k.Load.SetEnabled(enabled)
	k.Export.SetEnabled(enabled)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Save, k.Load, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Save, k.Load, k.Rename, k.Delete},
		{k.Import, k.Export, k.OpenFolder},
		{k.Refresh, k.Help, k.Quit},
	}
}
