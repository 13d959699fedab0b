package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/pastel/internal/config"
)

// keyMap holds the bindings built from the configured key mappings
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Cycle       key.Binding
	Delete      key.Binding
	Filter      key.Binding
	AddTodo     key.Binding
	AddCategory key.Binding
	Refresh     key.Binding
	ClearError  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	return keyMap{
		Up:          binding("move up", k.PrevTodo, "up"),
		Down:        binding("move down", k.NextTodo, "down"),
		Toggle:      binding("toggle done", k.ToggleTodo),
		Cycle:       binding("next category", k.CycleCategory),
		Delete:      binding("delete", k.DeleteTodo),
		Filter:      binding("filter by category", k.FilterCategory),
		AddTodo:     binding("add todo", k.AddTodo),
		AddCategory: binding("add category", k.AddCategory),
		Refresh:     binding("reload", k.Refresh),
		ClearError:  binding("dismiss errors", k.ClearError),
		Help:        binding("help", k.ShowHelp),
		Quit:        binding("quit", k.Quit, "ctrl+c"),
	}
}

// binding makes a binding for keys, labelled with the first one
func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys[0]), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTodo, k.Toggle, k.Cycle, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.AddTodo, k.Toggle, k.Cycle, k.Delete},
		{k.AddCategory, k.Refresh, k.ClearError},
		{k.Help, k.Quit},
	}
}
