package tui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap defines all key bindings for the TUI.
// Groups:
//   - Tabs:   Tab1..Tab5 (F-keys), PrevTab/NextTab (wrap around the bar)
//   - Focus:  Next, Prev (cycle focusable controls on the screen or sheet)
//   - Change: Left, Right (selectors and button rows)
//   - Action: Activate (press the focused control), Close (dismiss the sheet)
//   - Scroll: PageUp, PageDown
//   - Utility: ToggleTheme, Help, Quit
type KeyMap struct {
	Tab1 key.Binding
	Tab2 key.Binding
	Tab3 key.Binding
	Tab4 key.Binding
	Tab5 key.Binding

	PrevTab key.Binding
	NextTab key.Binding

	Next key.Binding
	Prev key.Binding

	Left  key.Binding
	Right key.Binding

	Activate key.Binding
	Close    key.Binding

	PageUp   key.Binding
	PageDown key.Binding

	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// TabKeys returns the direct tab bindings in bar order.
func (k KeyMap) TabKeys() []key.Binding {
	return []key.Binding{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5}
}

// ShortHelp returns bindings shown in the compact helpline.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Close, k.NextTab, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.PrevTab, k.NextTab},
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Activate, k.Close, k.PageUp, k.PageDown},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}

// Keys is the default key map used throughout the TUI.
var Keys = KeyMap{
	Tab1: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1-F5", "tabs"),
	),
	Tab2: key.NewBinding(key.WithKeys("f2")),
	Tab3: key.NewBinding(key.WithKeys("f3")),
	Tab4: key.NewBinding(key.WithKeys("f4")),
	Tab5: key.NewBinding(key.WithKeys("f5")),
	PrevTab: key.NewBinding(
		key.WithKeys("ctrl+left", "alt+left"),
		key.WithHelp("ctrl+←", "prev tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("ctrl+right", "alt+right"),
		key.WithHelp("ctrl+→", "next tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "prev"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next option"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "scroll down"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// TextKeys are bindings that must reach a focused text field untouched.
var TextKeys = key.NewBinding(key.WithKeys("space", "left", "right"))
