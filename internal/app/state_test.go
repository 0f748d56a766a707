package app

import (
	"errors"
	"testing"

	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/session"
)

func loggedIn(t *testing.T) *State {
	t.Helper()
	s := New(false)
	if err := s.Login("vale", "1234"); err != nil {
		t.Fatalf("Login() = %v", err)
	}
	return s
}

func TestLoginLandsOnDefault(t *testing.T) {
	s := New(false)
	if err := s.Login("", "1234"); !errors.Is(err, session.ErrCredentialsRequired) {
		t.Errorf("Login(empty) = %v", err)
	}
	if s.Snapshot().LoggedIn {
		t.Fatal("failed login should not log in")
	}
	if err := s.Login("vale", "1234"); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if !snap.LoggedIn || snap.Username != "vale" || snap.Role != nav.RoleCitizen || snap.Tab != nav.TabHome {
		t.Errorf("snapshot after login = %+v", snap)
	}
}

func TestShellRefusedWhileLoggedOut(t *testing.T) {
	s := New(false)
	if err := s.SetRole(nav.RoleAuthority); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("SetRole = %v", err)
	}
	if err := s.SelectTab(nav.TabReport); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("SelectTab = %v", err)
	}
	if err := s.OpenOverlay(overlay.Lesson{}); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("OpenOverlay = %v", err)
	}
	if err := s.CycleTab(1); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("CycleTab = %v", err)
	}
	s.ToggleTheme()
	if !s.Snapshot().Dark {
		t.Error("theme toggle should work on the login screen")
	}
}

func TestRoleSwitchKeepsTabInRole(t *testing.T) {
	s := loggedIn(t)
	for _, r := range nav.Roles {
		if err := s.SetRole(r); err != nil {
			t.Fatal(err)
		}
		snap := s.Snapshot()
		if snap.Tab != nav.DefaultTab(r) || !nav.HasTab(r, snap.Tab) {
			t.Errorf("role %s: tab %q", r, snap.Tab)
		}
		if len(snap.Tabs) != 5 {
			t.Errorf("role %s: %d tabs in snapshot", r, len(snap.Tabs))
		}
	}
}

func TestAuthorityReportIsDispatch(t *testing.T) {
	s := loggedIn(t)
	_ = s.SetRole(nav.RoleAuthority)
	if err := s.SelectTab(nav.TabReport); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Screen; got != nav.ScreenDispatch {
		t.Errorf("screen = %s, want dispatch", got)
	}
}

func TestOverlayReplaceAndConditionalClose(t *testing.T) {
	s := loggedIn(t)
	_ = s.OpenOverlay(overlay.Alert{Item: domain.AlertItem{ID: 1}})
	_ = s.OpenOverlay(overlay.Volunteer{})
	if s.Snapshot().Overlay.Kind() != overlay.KindVolunteer {
		t.Fatalf("overlay = %v", s.Snapshot().Overlay)
	}
	_ = s.OpenOverlay(overlay.Course{})
	if s.CloseOverlayIf(overlay.KindVolunteer) {
		t.Error("CloseOverlayIf should not close a different overlay")
	}
	if s.Snapshot().Overlay == nil {
		t.Error("course overlay should remain open")
	}
	s.CloseOverlay()
	if s.Snapshot().Overlay != nil {
		t.Error("CloseOverlay should clear")
	}
}

func TestLogoutResets(t *testing.T) {
	s := loggedIn(t)
	_ = s.SetRole(nav.RoleAcademia)
	_ = s.OpenOverlay(overlay.Lesson{})
	s.Logout()
	snap := s.Snapshot()
	if snap.LoggedIn || snap.Username != "" || snap.Role != nav.RoleCitizen || snap.Tab != nav.TabHome || snap.Overlay != nil {
		t.Errorf("snapshot after logout = %+v", snap)
	}
}

func TestSelfCheck(t *testing.T) {
	s := loggedIn(t)
	results := SelfCheck(s.Snapshot(), demo.Default())
	if len(results) != 4 || !AllPassed(results) {
		t.Errorf("SelfCheck = %+v", results)
	}

	empty := &demo.Dataset{}
	results = SelfCheck(s.Snapshot(), empty)
	if AllPassed(results) {
		t.Error("empty dataset should fail the data checks")
	}
	if results[2].Pass || results[3].Pass || !results[0].Pass || !results[1].Pass {
		t.Errorf("unexpected results %+v", results)
	}
}
