package tui

import "github.com/charmbracelet/bubbles/key"

// SettingsKeyMap defines the key bindings for the settings panel.
type SettingsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Help, k.Quit},
	}
}

// GameKeyMap defines the key bindings while a session is running.
type GameKeyMap struct {
	End        key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.End, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ResultsKeyMap defines the key bindings for the results panel.
type ResultsKeyMap struct {
	Restart  key.Binding
	Settings key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Settings, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMap groups the bindings of every panel.
type KeyMap struct {
	Settings SettingsKeyMap
	Game     GameKeyMap
	Results  ResultsKeyMap
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	quit := key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return KeyMap{
		Settings: SettingsKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k", "w"),
				key.WithHelp("up/k", "prev field"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j", "s", "tab"),
				key.WithHelp("down/j", "next field"),
			),
			Left: key.NewBinding(
				key.WithKeys("left", "h", "a", "-"),
				key.WithHelp("left/h", "decrease"),
			),
			Right: key.NewBinding(
				key.WithKeys("right", "l", "d", "+", "="),
				key.WithHelp("right/l", "increase"),
			),
			Start: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", "start"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "more"),
			),
			Quit: quit,
		},
		Game: GameKeyMap{
			End: key.NewBinding(
				key.WithKeys("esc", "e"),
				key.WithHelp("esc", "end game"),
			),
			Screenshot: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", "screenshot"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
		Results: ResultsKeyMap{
			Restart: key.NewBinding(
				key.WithKeys("r", "enter"),
				key.WithHelp("r", "play again"),
			),
			Settings: key.NewBinding(
				key.WithKeys("s", "b", "esc"),
				key.WithHelp("s", "settings"),
			),
			Quit: quit,
		},
	}
}
