// Package app is the root state of the mockup: session, role, tab, overlay
// and theme. Every transition goes through State so the invariants hold in
// one place.
package app

import (
	"errors"

	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/session"
)

var ErrNotLoggedIn = errors.New("not logged in")

// State is owned by a single root model and mutated only through its methods.
type State struct {
	gate    session.Gate
	nav     nav.Navigator
	overlay overlay.Controller
	dark    bool
}

// New returns a logged-out state on the default role.
func New(dark bool) *State {
	return &State{nav: nav.NewNavigator(), dark: dark}
}

// Snapshot is the read-only view handed to screens.
type Snapshot struct {
	LoggedIn bool
	Username string
	Role     nav.Role
	Tab      nav.Tab
	Screen   nav.Screen
	Tabs     []nav.TabSpec
	Overlay  overlay.Overlay
	Dark     bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		LoggedIn: s.gate.LoggedIn(),
		Username: s.gate.Username(),
		Role:     s.nav.Role(),
		Tab:      s.nav.Tab(),
		Screen:   s.nav.Screen(),
		Tabs:     nav.Tabs(s.nav.Role()),
		Overlay:  s.overlay.Active(),
		Dark:     s.dark,
	}
}

// Login resets the role to the default and lands on its default tab.
func (s *State) Login(username, password string) error {
	if err := s.gate.Login(username, password); err != nil {
		return err
	}
	s.resetShell()
	return nil
}

// Logout clears the session and shell state.
func (s *State) Logout() {
	s.gate.Logout()
	s.resetShell()
}

func (s *State) resetShell() {
	_ = s.nav.SetRole(nav.DefaultRole)
	s.overlay.Close()
}

func (s *State) SetRole(r nav.Role) error {
	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.nav.SetRole(r)
}

func (s *State) SelectTab(t nav.Tab) error {
	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.nav.Select(t)
}

// SelectTabIndex selects by position in the bottom bar.
func (s *State) SelectTabIndex(i int) error {
	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.nav.SelectIndex(i)
}

// CycleTab moves along the bottom bar, wrapping.
func (s *State) CycleTab(delta int) error {
	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	s.nav.Cycle(delta)
	return nil
}

func (s *State) OpenOverlay(o overlay.Overlay) error {
	if !s.gate.LoggedIn() {
		return ErrNotLoggedIn
	}
	s.overlay.Open(o)
	return nil
}

func (s *State) CloseOverlay() {
	s.overlay.Close()
}

// CloseOverlayIf closes only when the open overlay is of kind k. It reports
// whether anything was closed.
func (s *State) CloseOverlayIf(k overlay.Kind) bool {
	if s.overlay.Kind() != k {
		return false
	}
	s.overlay.Close()
	return true
}

// ToggleTheme works logged in or out.
func (s *State) ToggleTheme() {
	s.dark = !s.dark
}

func (s *State) SetDark(dark bool) {
	s.dark = dark
}
