package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the playground.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit        key.Binding
	NextStyle   key.Binding
	PrevStyle   key.Binding
	NextTheme   key.Binding
	EditCaption key.Binding
	Accept      key.Binding
	Cancel      key.Binding
	Help        key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextStyle, k.EditCaption, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextStyle, k.PrevStyle, k.NextTheme},
		{k.EditCaption, k.Accept, k.Cancel},
		{k.Help, k.Quit},
	}
}

// BindingGroup is a named set of related key bindings.
type BindingGroup struct {
	Name     string
	Bindings []key.Binding
}

// Bindings returns the playground key bindings grouped by purpose.
// Documentation generators read from here so published keybindings
// always match the live key map.
func Bindings() []BindingGroup {
	return []BindingGroup{
		{Name: "Styles and themes", Bindings: []key.Binding{keys.NextStyle, keys.PrevStyle, keys.NextTheme}},
		{Name: "Caption editing", Bindings: []key.Binding{keys.EditCaption, keys.Accept, keys.Cancel}},
		{Name: "General", Bindings: []key.Binding{keys.Help, keys.Quit}},
	}
}

// keys holds the default key bindings used by the playground.
var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextStyle:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next style")),
	PrevStyle:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev style")),
	NextTheme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	EditCaption: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "caption")),
	Accept:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
