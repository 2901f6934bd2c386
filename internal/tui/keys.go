package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	copyEmail key.Binding
	toLogin   key.Binding
	toSignup  key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	copyEmail: key.NewBinding(key.WithKeys("ctrl+e")),
	toLogin:   key.NewBinding(key.WithKeys("ctrl+g")),
	toSignup:  key.NewBinding(key.WithKeys("ctrl+r")),
}
