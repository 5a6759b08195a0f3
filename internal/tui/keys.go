package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Remove    key.Binding
	Focus     key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Remove:    key.NewBinding(key.WithKeys("enter", "d", "x"), key.WithHelp("d/enter", "remove")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Hint line bindings per focus.
func (k keyMap) listHelp() []key.Binding { return []key.Binding{k.Remove, k.Focus, k.Quit} }

func (k keyMap) inputHelp() []key.Binding { return []key.Binding{k.Submit, k.Focus, k.Leave, k.ForceQuit} }
