package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
)

// HelplineModel represents the help line under the phone frame.
type HelplineModel struct {
	help help.Model
}

// NewHelplineModel creates a new helpline model
func NewHelplineModel() HelplineModel {
	return HelplineModel{help: help.New()}
}

// SetDark picks key and description colors for the background.
func (m *HelplineModel) SetDark(dark bool) {
	m.help.Styles = help.DefaultStyles(dark)
}

// Toggle switches between the short line and the full key list.
func (m *HelplineModel) Toggle() {
	m.help.ShowAll = !m.help.ShowAll
}

// Expanded reports whether the full key list is shown.
func (m HelplineModel) Expanded() bool {
	return m.help.ShowAll
}

// View renders the helpline centered in width.
func (m HelplineModel) View(width int) string {
	m.help.SetWidth(width)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.help.View(Keys))
}
