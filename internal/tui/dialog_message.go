package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MessageType represents the type of message dialog
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// Prefix is the glyph shown before the dialog title.
func (t MessageType) Prefix() string {
	switch t {
	case MessageSuccess:
		return "✓ "
	case MessageWarning:
		return "⚠ "
	case MessageError:
		return "✗ "
	default:
		return "ℹ "
	}
}

// messageDialogModel is a blocking notification. Any key closes it.
type messageDialogModel struct {
	title       string
	message     string
	messageType MessageType
	width       int
	styles      Styles
}

func newMessageDialog(title, message string, t MessageType) *messageDialogModel {
	return &messageDialogModel{title: title, message: message, messageType: t}
}

func (m *messageDialogModel) Update(msg tea.Msg) (*messageDialogModel, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		// ctrl+c is handled by the root before it gets here
		if key.Matches(kp, Keys.Quit) {
			return m, nil
		}
		return m, Send(CloseDialogMsg{})
	}
	return m, nil
}

// SetContext gives the dialog the width it may use.
func (m *messageDialogModel) SetContext(styles Styles, width int) {
	m.styles = styles
	m.width = width
}

// ViewString returns the dialog content for compositing.
func (m *messageDialogModel) ViewString() string {
	s := m.styles
	contentWidth := max(m.width-4, 10)

	var msgStyle lipgloss.Style
	switch m.messageType {
	case MessageSuccess:
		msgStyle = s.StatusSuccess
	case MessageWarning:
		msgStyle = s.StatusWarn
	case MessageError:
		msgStyle = s.StatusError.Bold(true)
	default:
		msgStyle = s.Text
	}

	textWidth := min(lipgloss.Width(m.message), contentWidth)
	body := msgStyle.Width(textWidth).Render(m.message)
	width := max(lipgloss.Width(body), 8)
	buttons := s.RenderButtonRow(width, ButtonSpec{Text: "OK", Kind: ButtonPrimary, Active: true})

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Text.Width(width).Render(""),
		s.Text.Width(width).Render(body),
		s.Text.Width(width).Render(""),
		buttons,
	)
	return s.AddShadow(s.RenderDialog(m.messageType.Prefix()+m.title, content))
}
