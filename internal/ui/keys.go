package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Number key.Binding
	Clear  key.Binding
	Check  key.Binding
	Solve  key.Binding
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Menu   key.Binding
	Quit   key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "move right"),
	),
	Number: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "fill cell"),
	),
	Clear: key.NewBinding(
		key.WithKeys("0", "x", "backspace", "delete"),
		key.WithHelp("0/x", "clear cell"),
	),
	Check: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "check board"),
	),
	Solve: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "solve"),
	),
	Easy: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "new easy game"),
	),
	Medium: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "new medium game"),
	),
	Hard: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "new hard game"),
	),
	Menu: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
