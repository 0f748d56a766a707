package screens

import (
	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// LearnScreen lists the learning tiles and the highlighted micro-course.
type LearnScreen struct {
	base
}

// NewLearnScreen creates the learn screen.
func NewLearnScreen(env tui.Env) *LearnScreen {
	return &LearnScreen{base: base{env: env}}
}

func (s *LearnScreen) Init() tea.Cmd { return nil }
func (s *LearnScreen) Title() string { return "Educar & prevenir" }

func (s *LearnScreen) tiles() []domain.Tile {
	if s.env.Data == nil {
		return nil
	}
	return s.env.Data.Tiles
}

// playIndex is the micro-course play button, after the tiles.
func (s *LearnScreen) playIndex() int { return len(s.tiles()) }

func (s *LearnScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	s.focus.SetCount(len(s.tiles()) + 1)
	if s.focus.HandleCycle(kp) {
		return s, nil
	}
	if !key.Matches(kp, tui.Keys.Activate) {
		return s, nil
	}
	if s.focus.Index == s.playIndex() {
		return s, tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Lesson{}})
	}
	if s.tiles()[s.focus.Index].Opens == domain.TileCourse {
		return s, tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Course{}})
	}
	return s, tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Lesson{}})
}

func (s *LearnScreen) ViewString() string {
	st := s.styles()
	w := s.cardWidth()
	tileW := w / 2
	var b tui.Builder

	tiles := s.tiles()
	for i := 0; i < len(tiles); i += 2 {
		var row []string
		rowFocused := false
		for j := i; j < min(i+2, len(tiles)); j++ {
			t := tiles[j]
			focused := s.focus.Is(j)
			rowFocused = rowFocused || focused
			content := lipgloss.JoinVertical(lipgloss.Left,
				st.Swatch(tui.GlyphFlame, st.Palette.Accent),
				st.Strong.Width(tileW-4).Render(t.Title),
				st.Sub.Render(t.Duration),
			)
			row = append(row, st.RenderCard(content, tileW, focused))
		}
		b.AddFocus(lipgloss.JoinHorizontal(lipgloss.Top, row...), rowFocused)
	}

	if s.env.Data != nil {
		mc := s.env.Data.MicroCourse
		playFocused := s.focus.Is(s.playIndex())
		play := st.Button(" "+tui.GlyphPlay+" ", tui.ButtonPrimary, playFocused)
		textW := s.cardInner() - lipgloss.Width(play) - 1
		text := st.Text.Width(textW).Render(lipgloss.JoinVertical(lipgloss.Left,
			st.Strong.Render(mc.Title),
			st.Sub.Render("Gana la insignia ")+st.Strong.Render(mc.Badge),
		))
		row := lipgloss.JoinHorizontal(lipgloss.Center, text, st.Text.Render(" "), play)
		b.AddFocus(st.RenderCard(row, w, playFocused), playFocused)
	}

	s.focusLine = b.FocusLine()
	return b.String()
}
