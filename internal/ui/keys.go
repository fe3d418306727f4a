// ABOUTME: Key bindings for the player TUI
// ABOUTME: Maps terminal keys to controller actions and status bar hints
package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the controller reacts to
type keyMap struct {
	Quit       key.Binding
	Down       key.Binding
	Up         key.Binding
	Play       key.Binding
	Toggle     key.Binding
	Next       key.Binding
	Previous   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓", "Navigate"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "Navigate"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Play"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "Pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "Prev/Next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "Prev/Next"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "Volume"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("+/-", "Volume"),
		),
	}
}

// statusHints is the status bar content, one entry per distinct help text
func (k keyMap) statusHints() []keyHint {
	bindings := []key.Binding{k.Quit, k.Down, k.Play, k.Toggle, k.Next, k.VolumeUp}
	hints := make([]keyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, keyHint{key: h.Key, desc: h.Desc})
	}
	return hints
}
