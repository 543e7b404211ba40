package event

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard commands understood by the viewer.
type KeyMap struct {
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextView: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("escape"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevView, k.NextView, k.Quit}
}

// HelpLine renders ShortHelp as a single line, e.g. "← previous view  → next view".
func (k KeyMap) HelpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
