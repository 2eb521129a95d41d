package main

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Number        key.Binding
	Clear         key.Binding
	Reset         key.Binding
	Check         key.Binding
	HighlightUp   key.Binding
	HighlightDown key.Binding
	Save          key.Binding
	Load          key.Binding
	AI            key.Binding
	Menu          key.Binding
	Quit          key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "move right"),
	),
	Number: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "place number"),
	),
	Clear: key.NewBinding(
		key.WithKeys("0", "backspace", "delete"),
		key.WithHelp("0", "clear cell"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reset board"),
	),
	Check: key.NewBinding(
		key.WithKeys("c", "C"),
		key.WithHelp("c", "check solution"),
	),
	HighlightUp: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "highlight next number"),
	),
	HighlightDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "highlight previous number"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "S"),
		key.WithHelp("s", "save game"),
	),
	Load: key.NewBinding(
		key.WithKeys("l", "L"),
		key.WithHelp("l", "load game"),
	),
	AI: key.NewBinding(
		key.WithKeys("a", "A"),
		key.WithHelp("a", "toggle ai player"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", "esc"),
		key.WithHelp("m", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
