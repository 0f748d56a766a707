package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonSpec defines a button to render in a row.
type ButtonSpec struct {
	Text   string
	Kind   ButtonKind
	Active bool
}

// RenderButtonRow divides width into equal sections, one per button, and
// centers each button in its section.
func (s Styles) RenderButtonRow(width int, buttons ...ButtonSpec) string {
	if len(buttons) == 0 {
		return ""
	}
	section := max(width/len(buttons), 1)
	cells := make([]string, 0, len(buttons))
	for _, b := range buttons {
		btn := s.Button(" "+b.Text+" ", b.Kind, b.Active)
		cells = append(cells, s.Text.Width(section).Align(lipgloss.Center).Render(btn))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderDialog renders content in a box with the title embedded in the top
// border: ──┤ Title ├──
func (s Styles) RenderDialog(title, content string) string {
	border := s.Border
	edge := lipgloss.NewStyle().
		Foreground(s.Dialog.GetBorderTopForeground()).
		Background(s.Dialog.GetBackground())
	pad := s.Text.Render(" ")

	lines := strings.Split(content, "\n")
	inner := 0
	for _, l := range lines {
		inner = max(inner, lipgloss.Width(l))
	}
	inner = max(inner, lipgloss.Width(title)+4)

	leftT, rightT := "┤", "├"
	if !s.LineCharacters {
		leftT, rightT = "+", "+"
	}

	var b strings.Builder
	width := inner + 2
	b.WriteString(edge.Render(border.TopLeft))
	if title == "" {
		b.WriteString(edge.Render(strings.Repeat(border.Top, width)))
	} else {
		section := lipgloss.Width(title) + 4
		left := (width - section) / 2
		right := width - section - left
		b.WriteString(edge.Render(strings.Repeat(border.Top, left) + leftT))
		b.WriteString(pad + s.DialogTitle.Render(title) + pad)
		b.WriteString(edge.Render(rightT + strings.Repeat(border.Top, right)))
	}
	b.WriteString(edge.Render(border.TopRight))
	b.WriteString("\n")

	for _, l := range lines {
		fill := inner - lipgloss.Width(l)
		b.WriteString(edge.Render(border.Left))
		b.WriteString(pad + l + s.Text.Render(strings.Repeat(" ", fill)) + pad)
		b.WriteString(edge.Render(border.Right))
		b.WriteString("\n")
	}

	b.WriteString(edge.Render(border.BottomLeft + strings.Repeat(border.Bottom, width) + border.BottomRight))
	return b.String()
}
