package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	search    key.Binding
	watchlist key.Binding
	queue     key.Binding
	remove    key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	delete    key.Binding
	theme     key.Binding
	refresh   key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		watchlist: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watchlist")),
		queue:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to watchlist")),
		remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		moveUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		moveDown:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete movie")),
		theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.watchlist, k.queue},
		{k.remove, k.theme, k.quit},
	}
}
