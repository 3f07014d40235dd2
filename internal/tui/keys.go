// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	search   key.Binding
	filters  key.Binding
	clear    key.Binding
	favorite key.Binding
	reload   key.Binding
	comment  key.Binding
	logout   key.Binding
	login    key.Binding
	register key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	copyLink key.Binding
	save     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ", "enter")),
	search:   key.NewBinding(key.WithKeys("/")),
	filters:  key.NewBinding(key.WithKeys("f")),
	clear:    key.NewBinding(key.WithKeys("x")),
	favorite: key.NewBinding(key.WithKeys("*", "s")),
	reload:   key.NewBinding(key.WithKeys("r")),
	comment:  key.NewBinding(key.WithKeys("a")),
	logout:   key.NewBinding(key.WithKeys("o")),
	login:    key.NewBinding(key.WithKeys("i")),
	register: key.NewBinding(key.WithKeys("n")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyLink: key.NewBinding(key.WithKeys("u")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
