package screens

import (
	"strings"

	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	communityInput = iota
	communityPublish
	communityFields
)

// JustNow is the timestamp on posts published in this session.
const JustNow = "ahora"

// CommunityScreen is the recommendations feed. Published posts live only
// as long as the screen.
type CommunityScreen struct {
	base
	posts []domain.Post
	input textinput.Model
}

// NewCommunityScreen creates the feed from the demo posts.
func NewCommunityScreen(env tui.Env) *CommunityScreen {
	s := &CommunityScreen{
		base:  base{env: env, focus: tui.FocusRing{Count: communityFields}},
		input: newInput("Comparte una recomendación"),
	}
	if env.Data != nil {
		s.posts = append(s.posts, env.Data.Posts...)
	}
	return s
}

func (s *CommunityScreen) Init() tea.Cmd { return s.input.Focus() }
func (s *CommunityScreen) Title() string { return "Comunidad" }

// Posts is the feed, newest first.
func (s *CommunityScreen) Posts() []domain.Post { return s.posts }

func (s *CommunityScreen) SetContext(ctx tui.Context) {
	s.base.SetContext(ctx)
	styleInput(&s.input, ctx.Styles, s.cardInner())
}

func (s *CommunityScreen) publish() {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return
	}
	user := s.ctx.Snap.Username
	if user == "" {
		user = "Tú"
	}
	s.posts = append([]domain.Post{{User: user, Text: text, TS: JustNow}}, s.posts...)
	s.input.Reset()
}

func (s *CommunityScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	inField := s.focus.Is(communityInput)
	if s.cycle(kp, inField) {
		if s.focus.Is(communityInput) {
			return s, s.input.Focus()
		}
		s.input.Blur()
		return s, nil
	}
	if key.Matches(kp, tui.Keys.Activate) && (kp.String() == "enter" || !inField) {
		s.publish()
		return s, nil
	}
	if inField {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(kp)
		return s, cmd
	}
	return s, nil
}

func (s *CommunityScreen) ViewString() string {
	st := s.styles()
	w, inner := s.cardWidth(), s.cardInner()
	var b tui.Builder

	b.AddFocus(fieldBox(st, s.input.View(), w, s.focus.Is(communityInput)), s.focus.Is(communityInput))
	b.AddFocus(st.WideButton("Publicar", tui.ButtonPrimary, s.focus.Is(communityPublish), w), s.focus.Is(communityPublish))

	for _, p := range s.posts {
		avatar := st.Pill("☺", false, false)
		ts := st.Sub.Render(p.TS)
		head := st.Row(avatar+st.Strong.Render(" "+p.User), ts, inner)
		body := st.Text.Width(inner).Render(p.Text)
		b.Add(st.RenderCard(lipgloss.JoinVertical(lipgloss.Left, head, body), w, false))
	}

	s.focusLine = b.FocusLine()
	return b.String()
}
