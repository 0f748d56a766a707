package screens

import (
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

const (
	loginUser = iota
	loginPassword
	loginSubmit
	loginFields
)

// LoginScreen asks for a username and password.
type LoginScreen struct {
	base
	user     textinput.Model
	password textinput.Model
	err      error
}

// NewLoginScreen creates the login screen with the username focused.
func NewLoginScreen(env tui.Env) *LoginScreen {
	s := &LoginScreen{
		base:     base{env: env, focus: tui.FocusRing{Count: loginFields}},
		user:     newInput("Usuario"),
		password: newInput("Contraseña"),
	}
	s.password.EchoMode = textinput.EchoPassword
	s.password.EchoCharacter = '•'
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.syncFocus()
}

func (s *LoginScreen) Title() string { return "Iniciar sesión" }

// Err is the inline error shown under the fields.
func (s *LoginScreen) Err() error { return s.err }

func (s *LoginScreen) SetContext(ctx tui.Context) {
	s.base.SetContext(ctx)
	styleInput(&s.user, ctx.Styles, s.cardInner())
	styleInput(&s.password, ctx.Styles, s.cardInner())
}

func (s *LoginScreen) syncFocus() tea.Cmd {
	s.user.Blur()
	s.password.Blur()
	switch s.focus.Index {
	case loginUser:
		return s.user.Focus()
	case loginPassword:
		return s.password.Focus()
	}
	return nil
}

func (s *LoginScreen) submit() tea.Cmd {
	return tui.Send(tui.LoginMsg{Username: s.user.Value(), Password: s.password.Value()})
}

func (s *LoginScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.LoginResultMsg:
		s.err = msg.Err
		return s, nil

	case tea.KeyPressMsg:
		inField := s.focus.Index != loginSubmit
		if s.cycle(msg, inField) {
			return s, s.syncFocus()
		}
		if key.Matches(msg, tui.Keys.Activate) && (msg.String() == "enter" || !inField) {
			if s.focus.Index == loginUser {
				s.focus.Next()
				return s, s.syncFocus()
			}
			return s, s.submit()
		}

		var cmd tea.Cmd
		before := s.user.Value() + "\x00" + s.password.Value()
		switch s.focus.Index {
		case loginUser:
			s.user, cmd = s.user.Update(msg)
		case loginPassword:
			s.password, cmd = s.password.Update(msg)
		}
		if s.user.Value()+"\x00"+s.password.Value() != before {
			s.err = nil
		}
		return s, cmd
	}
	return s, nil
}

func (s *LoginScreen) ViewString() string {
	st := s.styles()
	w := s.cardWidth()

	var b tui.Builder
	b.Blank()
	b.Add(centered(st, st.Pill(tui.GlyphPin+" "+tui.Brand, false, false), w))
	b.Blank()
	b.Add(centered(st, st.Title.Render("Bienvenida"), w))
	b.Add(centered(st, st.Sub.Render("Inicia sesión para continuar"), w))
	b.Blank()
	b.AddFocus(fieldBox(st, s.user.View(), w, s.focus.Is(loginUser)), s.focus.Is(loginUser))
	b.AddFocus(fieldBox(st, s.password.View(), w, s.focus.Is(loginPassword)), s.focus.Is(loginPassword))
	if s.err != nil {
		b.Add(errorLine(st, s.err))
	}
	b.Blank()
	b.AddFocus(st.WideButton("Entrar", tui.ButtonPrimary, s.focus.Is(loginSubmit), w), s.focus.Is(loginSubmit))
	b.Blank()
	b.Add(st.Rule(w))
	b.Add(centered(st,
		st.Sub.Render("¿Olvidaste tu contraseña? ")+st.Sub.Underline(true).Render("Recuperar"), w))
	s.focusLine = b.FocusLine()
	return b.String()
}
