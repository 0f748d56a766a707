package tui

import (
	"GuardianesDelFuego/internal/nav"

	"charm.land/lipgloss/v2"
)

// Brand is the name shown on the chip above the screen.
const Brand = "Guardianes del fuego"

// HeaderModel renders the top bar: location and the theme toggle (or the
// role chip) on the first line, the screen title on the second.
type HeaderModel struct {
	Location string
	Title    string
	Role     nav.Role
	RoleChip bool
	Dark     bool
	width    int
}

// SetWidth sets the header width
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// ThemeToggleLabel shows what ctrl+t switches to.
func ThemeToggleLabel(dark bool) string {
	if dark {
		return "☀ claro"
	}
	return "☾ oscuro"
}

// View renders the header as a string (used by the frame for compositing)
func (m HeaderModel) View(s Styles) string {
	var right string
	if m.RoleChip {
		right = s.Pill(m.Role.String(), false, false)
	} else {
		right = s.Sub.Render(ThemeToggleLabel(m.Dark))
	}
	room := max(m.width-lipgloss.Width(right)-3, 1)
	pin := s.Colored(GlyphPin, s.Palette.Primary)
	left := pin + s.Sub.Render(" "+Truncate(m.Location, room))

	title := s.Title.Render(Truncate(m.Title, m.width))

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Row(left, right, m.width),
		s.Text.Width(m.width).Align(lipgloss.Center).Render(title),
	)
}

// renderBrand draws the brand chip line.
func renderBrand(s Styles, width int) string {
	chip := s.Brand.Render(GlyphFlame + " " + Brand)
	return s.Text.Width(width).Render(" " + chip)
}

// NavModel renders the bottom navigation: one cell per tab with its
// function key above the label.
type NavModel struct {
	Tabs   []nav.TabSpec
	Active nav.Tab
	width  int
}

// SetWidth sets the navigation width
func (m *NavModel) SetWidth(width int) {
	m.width = width
}

// View renders the navigation bar.
func (m NavModel) View(s Styles) string {
	if len(m.Tabs) == 0 {
		return ""
	}
	cell := m.width / len(m.Tabs)
	extra := m.width - cell*len(m.Tabs)

	cells := make([]string, 0, len(m.Tabs))
	for i, t := range m.Tabs {
		w := cell
		if i == len(m.Tabs)-1 {
			w += extra
		}
		keyStyle, labelStyle := s.NavKey, s.NavItem
		if t.Key == m.Active {
			keyStyle = s.NavActive.Faint(true)
			labelStyle = s.NavActive
		}
		hint := keyStyle.Width(w).Align(lipgloss.Center).Render("F" + string(rune('1'+i)))
		label := labelStyle.Width(w).Align(lipgloss.Center).Render(Truncate(t.Label, w-1))
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Left, hint, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
