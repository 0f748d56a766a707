package tui

import (
	"strings"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/theme"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ButtonKind selects a button's color role.
type ButtonKind int

const (
	ButtonSecondary ButtonKind = iota
	ButtonPrimary
	ButtonDanger
	ButtonAccent
)

// Styles holds all lipgloss styles derived from the palette. Every session
// builds its own so SSH users can toggle themes independently.
type Styles struct {
	Palette        theme.Palette
	LineCharacters bool
	Shadowed       bool

	// Frame
	Frame       lipgloss.Style
	Screen      lipgloss.Style
	Brand       lipgloss.Style
	Border      lipgloss.Border
	BorderColor lipgloss.Style
	SepChar     string

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Sub      lipgloss.Style
	Strong   lipgloss.Style

	// Containers
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Sheet       lipgloss.Style
	Shadow      lipgloss.Style

	// Buttons
	ButtonPrimary   lipgloss.Style
	ButtonDanger    lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonAccent    lipgloss.Style

	// Status
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarn    lipgloss.Style

	// Navigation
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavKey    lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Help line
	HelpLine lipgloss.Style
}

// NewStyles derives styles from a palette and the UI settings.
func NewStyles(p theme.Palette, ui config.UIConfig) Styles {
	c := theme.Color
	s := Styles{
		Palette:        p,
		LineCharacters: ui.LineCharacters,
		Shadowed:       ui.Shadow,
	}

	if ui.LineCharacters {
		s.Border = lipgloss.RoundedBorder()
		s.SepChar = "─"
	} else {
		s.Border = lipgloss.NormalBorder()
		s.SepChar = "-"
	}

	base := lipgloss.NewStyle().Background(c(p.Surface)).Foreground(c(p.Text))

	s.Screen = base
	s.Frame = lipgloss.NewStyle().
		Border(s.Border).
		BorderForeground(c(p.Border)).
		BorderBackground(c(p.Background)).
		Background(c(p.Surface))
	s.Brand = lipgloss.NewStyle().
		Background(c(p.Tint(p.Accent, 0.35))).
		Foreground(c(p.Ink)).
		Padding(0, 1)
	s.BorderColor = lipgloss.NewStyle().Foreground(c(p.Border)).Background(c(p.Surface))

	s.Title = base.Bold(true)
	s.Subtitle = base.Foreground(c(p.Subtext))
	s.Text = base
	s.Sub = base.Foreground(c(p.Subtext))
	s.Strong = base.Bold(true)

	s.Card = lipgloss.NewStyle().
		Border(s.Border).
		BorderForeground(c(p.Border)).
		BorderBackground(c(p.Surface)).
		Background(c(p.Surface)).
		Foreground(c(p.Text)).
		Padding(0, 1)
	s.CardFocused = s.Card.BorderForeground(c(p.Primary))
	s.Sheet = lipgloss.NewStyle().
		Border(s.Border, true, true, false, true).
		BorderForeground(c(p.Border)).
		BorderBackground(c(p.Surface)).
		Background(c(p.Surface)).
		Foreground(c(p.Text))
	s.Shadow = lipgloss.NewStyle().Background(c(p.Muted))

	s.ButtonPrimary = lipgloss.NewStyle().
		Background(c(p.Primary)).
		Foreground(c(theme.Contrast(p.Primary))).
		Padding(0, 1)
	s.ButtonDanger = lipgloss.NewStyle().
		Background(c(p.Danger)).
		Foreground(c(theme.Contrast(p.Danger))).
		Padding(0, 1)
	s.ButtonSecondary = lipgloss.NewStyle().
		Background(c(p.Muted)).
		Foreground(c(p.Text)).
		Padding(0, 1)
	s.ButtonAccent = lipgloss.NewStyle().
		Background(c(p.Accent)).
		Foreground(c(p.Ink)).
		Padding(0, 1)

	s.StatusError = base.Foreground(c(p.Danger))
	s.StatusSuccess = base.Foreground(c(p.Primary))
	s.StatusWarn = base.Foreground(c(p.Amber))

	s.NavItem = base.Foreground(c(p.Subtext))
	s.NavActive = lipgloss.NewStyle().
		Background(c(p.Tint(p.Accent, 0.33))).
		Foreground(c(p.Text)).
		Bold(true)
	s.NavKey = base.Foreground(c(p.Subtext)).Faint(true)

	s.Dialog = lipgloss.NewStyle().
		Border(s.Border).
		BorderForeground(c(p.Primary)).
		BorderBackground(c(p.Surface)).
		Background(c(p.Surface)).
		Foreground(c(p.Text)).
		Padding(0, 1)
	s.DialogTitle = base.Bold(true).Foreground(c(p.Primary))

	s.Input = base.Foreground(c(p.Text))
	s.InputFocused = base.Foreground(c(p.Text)).Bold(true)

	s.HelpLine = lipgloss.NewStyle().Foreground(c(p.Subtext))

	return s
}

// Button renders a label in the kind's colors. Focus reverses the colors so
// the focused control is visible without relying on a cursor.
func (s Styles) Button(label string, kind ButtonKind, focused bool) string {
	var st lipgloss.Style
	switch kind {
	case ButtonPrimary:
		st = s.ButtonPrimary
	case ButtonDanger:
		st = s.ButtonDanger
	case ButtonAccent:
		st = s.ButtonAccent
	default:
		st = s.ButtonSecondary
	}
	if focused {
		st = st.Reverse(true).Bold(true)
	}
	return st.Render(label)
}

// WideButton renders a button stretched to width.
func (s Styles) WideButton(label string, kind ButtonKind, focused bool, width int) string {
	padded := lipgloss.PlaceHorizontal(max(width-2, lipgloss.Width(label)), lipgloss.Center, label)
	return s.Button(padded, kind, focused)
}

// Chip renders a pill tinted with hex over the surface.
func (s Styles) Chip(text, hex string) string {
	return lipgloss.NewStyle().
		Background(theme.Color(s.Palette.Tint(hex, 0.13))).
		Foreground(theme.Color(hex)).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// Pill renders a neutral chip, highlighted when selected.
func (s Styles) Pill(text string, selected, focused bool) string {
	st := lipgloss.NewStyle().
		Background(theme.Color(s.Palette.Muted)).
		Foreground(theme.Color(s.Palette.Text)).
		Padding(0, 1)
	if selected {
		st = st.Background(theme.Color(s.Palette.Tint(s.Palette.Accent, 0.33))).Bold(true)
	}
	if focused {
		st = st.Reverse(true)
	}
	return st.Render(text)
}

// Swatch is a solid block in hex, used for icons.
func (s Styles) Swatch(text, hex string) string {
	return lipgloss.NewStyle().
		Background(theme.Color(hex)).
		Foreground(theme.Color(theme.Contrast(hex))).
		Padding(0, 1).
		Render(text)
}

// Colored renders text in hex on the surface.
func (s Styles) Colored(text, hex string) string {
	return s.Text.Foreground(theme.Color(hex)).Render(text)
}

// RenderCard wraps content in a card of the given outer width.
func (s Styles) RenderCard(content string, width int, focused bool) string {
	st := s.Card
	if focused {
		st = s.CardFocused
	}
	return st.Width(width).Render(content)
}

// Rule draws a horizontal separator.
func (s Styles) Rule(width int) string {
	return s.BorderColor.Render(strings.Repeat(s.SepChar, max(width, 0)))
}

// Row lays out left and right text on one line of width.
func (s Styles) Row(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + s.Text.Render(strings.Repeat(" ", gap)) + right
}

// Truncate shortens plain text to width display cells.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// FocusPrefix marks the focused row.
func (s Styles) FocusPrefix(focused bool) string {
	if focused {
		return s.Text.Foreground(theme.Color(s.Palette.Primary)).Bold(true).Render(focusMark + " ")
	}
	return s.Text.Render("  ")
}

// AddShadow adds a drop shadow to rendered content when enabled.
func (s Styles) AddShadow(content string) string {
	if !s.Shadowed {
		return content
	}
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	right := s.Shadow.Width(1).Height(h - 1).Render("")
	withRight := lipgloss.JoinHorizontal(lipgloss.Bottom, content, right)
	bottom := " " + s.Shadow.Width(w).Height(1).Render("")
	return lipgloss.JoinVertical(lipgloss.Left, withRight, bottom)
}
