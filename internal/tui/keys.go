package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit   key.Binding
	sync   key.Binding
	invite key.Binding
	info   key.Binding
	esc    key.Binding
	enter  key.Binding
}

var keys = keyMap{
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:   key.NewBinding(key.WithKeys("s")),
	invite: key.NewBinding(key.WithKeys("i")),
	info:   key.NewBinding(key.WithKeys("v")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	enter:  key.NewBinding(key.WithKeys("enter")),
}
