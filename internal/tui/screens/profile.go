package screens

import (
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Profile rows; only Voluntariado does something.
var profileRows = []string{"Insignias y logros", "Voluntariado", "Ajustes"}

const volunteerRow = 1

// ProfileScreen shows the user card and the session controls: role,
// theme and logout.
type ProfileScreen struct {
	base
}

// NewProfileScreen creates the profile screen.
func NewProfileScreen(env tui.Env) *ProfileScreen {
	return &ProfileScreen{base: base{env: env, focus: tui.FocusRing{Count: profileFields()}}}
}

func profileFields() int { return len(profileRows) + len(nav.Roles) + 2 }

func (s *ProfileScreen) roleIndex(i int) int { return len(profileRows) + i }
func (s *ProfileScreen) themeIndex() int     { return len(profileRows) + len(nav.Roles) }
func (s *ProfileScreen) logoutIndex() int    { return s.themeIndex() + 1 }

func (s *ProfileScreen) Init() tea.Cmd { return nil }
func (s *ProfileScreen) Title() string { return "Perfil" }

func (s *ProfileScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.focus.HandleCycle(kp):
		return s, nil
	case key.Matches(kp, tui.Keys.Left):
		s.focus.Prev()
		return s, nil
	case key.Matches(kp, tui.Keys.Right):
		s.focus.Next()
		return s, nil
	case !key.Matches(kp, tui.Keys.Activate):
		return s, nil
	}

	i := s.focus.Index
	switch {
	case i == volunteerRow:
		return s, tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Volunteer{}})
	case i >= s.roleIndex(0) && i < s.themeIndex():
		return s, tui.Send(tui.SetRoleMsg{Role: nav.Roles[i-s.roleIndex(0)]})
	case i == s.themeIndex():
		return s, tui.Send(tui.ToggleThemeMsg{})
	case i == s.logoutIndex():
		return s, tui.Send(tui.LogoutMsg{})
	}
	return s, nil
}

func (s *ProfileScreen) ViewString() string {
	st := s.styles()
	w, inner := s.cardWidth(), s.cardInner()
	p := st.Palette
	var b tui.Builder

	var lines tui.Builder
	focusAt := map[int]int{}

	if s.env.Data != nil {
		prof := s.env.Data.Profile
		avatar := st.Swatch("☺", p.Accent)
		who := lipgloss.JoinVertical(lipgloss.Left,
			st.Strong.Render(prof.Name),
			st.Sub.Render(prof.Level),
		)
		left := lipgloss.JoinHorizontal(lipgloss.Center, avatar, st.Text.Render(" "), who)
		chip := st.Pill(s.ctx.Snap.Role.String(), false, false)
		gap := max(inner-lipgloss.Width(left)-lipgloss.Width(chip), 1)
		lines.Add(lipgloss.JoinHorizontal(lipgloss.Center, left, st.Text.Width(gap).Render(""), chip))
		lines.Blank()
		lines.Add(metricGrid(st, prof.Stats, inner, len(prof.Stats), false))
		lines.Blank()
	}

	for i, row := range profileRows {
		focused := s.focus.Is(i)
		focusAt[i] = lines.Len()
		icon := st.Swatch(" ", p.Accent)
		label := st.FocusPrefix(focused) + icon + st.Text.Render(" "+row)
		lines.Add(st.Row(label, st.Sub.Render(tui.GlyphChevron), inner))
	}
	lines.Blank()

	lines.Add(st.Sub.Render("Cambiar rol"))
	cell := inner / len(nav.Roles)
	var roles []string
	for i, r := range nav.Roles {
		btn := st.Pill(r.String(), r == s.ctx.Snap.Role, s.focus.Is(s.roleIndex(i)))
		roles = append(roles, st.Text.Width(cell).Align(lipgloss.Center).Render(btn))
		focusAt[s.roleIndex(i)] = lines.Len()
	}
	lines.Add(lipgloss.JoinHorizontal(lipgloss.Top, roles...))
	lines.Blank()

	themeLabel := "Modo oscuro"
	if s.ctx.Snap.Dark {
		themeLabel = "Modo claro"
	}
	half := inner / 2
	focusAt[s.themeIndex()] = lines.Len()
	focusAt[s.logoutIndex()] = lines.Len()
	lines.Add(lipgloss.JoinHorizontal(lipgloss.Top,
		st.Text.Width(half).Render(st.WideButton(themeLabel, tui.ButtonSecondary, s.focus.Is(s.themeIndex()), half-1)),
		st.Text.Width(inner-half).Render(st.WideButton("Cerrar sesión", tui.ButtonSecondary, s.focus.Is(s.logoutIndex()), inner-half)),
	))

	b.Add(st.RenderCard(lines.String(), w, false))
	b.Add(emergencyFooter(st, w))

	s.focusLine = focusAt[s.focus.Index] + 1
	return b.String()
}
