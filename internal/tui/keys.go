package tui

import (
	"github.com/MKhiriev/insighted-client/internal/roster"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	logout  key.Binding
	reload  key.Binding
	search  key.Binding
	trait   key.Binding
	subject key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
	reload:  key.NewBinding(key.WithKeys("r")),
	search:  key.NewBinding(key.WithKeys("/")),
	trait:   key.NewBinding(key.WithKeys("t")),
	subject: key.NewBinding(key.WithKeys("s")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}

// sortBindings maps the digit keys to the table columns in [roster.SortKeys]
// order.
var sortBindings = map[roster.SortKey]key.Binding{
	roster.SortByID:            key.NewBinding(key.WithKeys("1")),
	roster.SortByName:          key.NewBinding(key.WithKeys("2")),
	roster.SortByDominantTrait: key.NewBinding(key.WithKeys("3")),
	roster.SortByScore:         key.NewBinding(key.WithKeys("4")),
}

func sortKeyFor(msg tea.KeyMsg) (roster.SortKey, bool) {
	for _, k := range roster.SortKeys {
		if key.Matches(msg, sortBindings[k]) {
			return k, true
		}
	}
	return "", false
}
