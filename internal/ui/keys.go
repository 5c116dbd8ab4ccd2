package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	ToggleTheme   key.Binding
	ThemeAnywhere key.Binding
	SwitchFocus   key.Binding

	// Input panel
	Submit key.Binding
	Leave  key.Binding

	// List panel
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Edit       key.Binding
	FocusInput key.Binding
	Yank       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "light/dark"),
		),
		ThemeAnywhere: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "light/dark"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "add"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
	}
}

// inputKeys is the help.KeyMap shown while the input panel has focus.
type inputKeys struct{ k keyMap }

func (i inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Submit, i.k.Leave, i.k.SwitchFocus, i.k.ThemeAnywhere, i.k.ForceQuit}
}

func (i inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{i.ShortHelp()}
}

// ShortHelp returns key bindings for the list footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.Toggle, k.Edit, k.Delete, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.FocusInput, k.Toggle, k.Edit, k.Delete, k.Yank},
		{k.Submit, k.Leave, k.SwitchFocus},
		{k.ToggleTheme, k.ThemeAnywhere, k.Help, k.Quit},
	}
}
