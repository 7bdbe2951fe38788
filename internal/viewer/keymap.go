package viewer

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the viewer's key bindings. The terminal runs in raw mode,
// so ctrl+z, ctrl+c, and ctrl+\ arrive here as keys rather than signals.
type keyMap struct {
	Pause  key.Binding
	Resume key.Binding
	Quit   key.Binding
	Help   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "pause scrolling"),
		),
		Resume: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "resume scrolling"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+\\", "q"),
			key.WithHelp("ctrl+\\/q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Resume, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Resume}, {k.Quit, k.Help}}
}
