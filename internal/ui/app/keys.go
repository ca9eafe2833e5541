// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the screens share. Screen-specific update
// functions consult only the bindings that apply to them.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Back     key.Binding
	Search   key.Binding
	Tags     key.Binding
	NewDoc   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Save     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Tags:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tags")),
		NewDoc:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new doc")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NextPage: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
		Refresh:  key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}
