package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/volunteer"

	tea "charm.land/bubbletea/v2"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	env := Env{Data: demo.Default(), Config: config.Default()}
	m := NewAppModel(context.Background(), env, false)
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 45})
}

func update(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestModelStartsLoggedOut(t *testing.T) {
	m := newTestModel(t)
	if m.Snapshot().LoggedIn {
		t.Fatal("new model is logged in")
	}
	if m.ActiveScreen() == nil {
		t.Fatal("no login screen mounted")
	}

	// Navigation is refused until login.
	m = update(t, m,
		SelectTabMsg{Tab: nav.TabReport},
		OpenOverlayMsg{Overlay: overlay.Course{}},
	)
	snap := m.Snapshot()
	if snap.Tab != nav.TabHome || snap.Overlay != nil || m.ActiveSheet() != nil {
		t.Errorf("state changed while logged out: %+v", snap)
	}
}

func TestModelLoginAndTabs(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LoginMsg{Username: "ana", Password: "secreto"})
	if !m.Snapshot().LoggedIn {
		t.Fatal("login failed")
	}
	if m.ActiveScreen().Title() != nav.ScreenHome.String() {
		t.Errorf("screen = %q, want the home placeholder", m.ActiveScreen().Title())
	}

	m = update(t, m, SelectTabMsg{Tab: nav.TabDataLab})
	if m.Snapshot().Tab != nav.TabHome {
		t.Error("citizen selected a tab outside its bar")
	}

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF2})
	if m.Snapshot().Tab != nav.TabReport {
		t.Errorf("F2 selected %s", m.Snapshot().Tab)
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}, tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl})
	if m.Snapshot().Tab != nav.TabProfile {
		t.Errorf("ctrl+left twice from report = %s, want profile", m.Snapshot().Tab)
	}
}

func TestModelLoginRejected(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LoginMsg{Username: "", Password: ""})
	if m.Snapshot().LoggedIn {
		t.Error("empty credentials logged in")
	}
}

func TestModelOverlayReplaceAndClose(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LoginMsg{Username: "ana", Password: "1234"})

	m = update(t, m, OpenOverlayMsg{Overlay: overlay.Course{}}, OpenOverlayMsg{Overlay: overlay.Lesson{}})
	if m.ActiveSheet() == nil || m.ActiveSheet().Title() != overlay.KindLesson.String() {
		t.Fatalf("sheet = %v, want the lesson", m.ActiveSheet())
	}

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.ActiveSheet() != nil || m.Snapshot().Overlay != nil {
		t.Error("esc left the sheet open")
	}

	// Only an explicit close clears a sheet.
	m = update(t, m, OpenOverlayMsg{Overlay: overlay.Volunteer{}}, SetRoleMsg{Role: nav.RoleAuthority})
	if k := m.Snapshot().Overlay; k == nil || k.Kind() != overlay.KindVolunteer {
		t.Errorf("overlay after role change = %v", k)
	}
}

func TestModelVolunteerSubmitted(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LoginMsg{Username: "ana", Password: "1234"}, OpenOverlayMsg{Overlay: overlay.Volunteer{}})

	next, cmd := m.Update(VolunteerSubmittedMsg{Form: m.ActiveSheet()})
	m = next.(AppModel)
	if m.ActiveSheet() != nil {
		t.Error("volunteer sheet still open")
	}
	if cmd == nil {
		t.Fatal("no notice scheduled")
	}

	m = update(t, m, ShowMessageDialogMsg{Title: "Voluntariado", Message: volunteer.ThanksNotice, Type: MessageSuccess})
	if _, msg, ok := m.Dialog(); !ok || msg != volunteer.ThanksNotice {
		t.Errorf("dialog = %q %v", msg, ok)
	}
	view := m.View().Content
	if !strings.Contains(view, "Voluntariado") {
		t.Error("dialog title not drawn")
	}

	m = update(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"}, CloseDialogMsg{})
	if _, _, ok := m.Dialog(); ok {
		t.Error("dialog did not close")
	}
}

func TestModelLogoutResets(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m,
		LoginMsg{Username: "ana", Password: "1234"},
		SetRoleMsg{Role: nav.RoleAcademia},
		OpenOverlayMsg{Overlay: overlay.Lesson{}},
		LogoutMsg{},
	)
	snap := m.Snapshot()
	if snap.LoggedIn || snap.Role != nav.DefaultRole || snap.Overlay != nil {
		t.Errorf("snapshot after logout = %+v", snap)
	}
	if m.ActiveSheet() != nil {
		t.Error("sheet mounted after logout")
	}
}

func TestModelConfigChangeRestyles(t *testing.T) {
	m := newTestModel(t)
	cfg := config.Default()
	cfg.UI.LineCharacters = false
	m = update(t, m, ConfigChangedMsg{Config: cfg})
	if m.styles.LineCharacters {
		t.Error("styles kept line characters after reload")
	}
	if m.env.Config.UI.LineCharacters {
		t.Error("env config not replaced")
	}
}

func TestModelViewBeforeSize(t *testing.T) {
	m := NewAppModel(context.Background(), Env{}, true)
	if v := m.View(); v.Content != "Cargando..." {
		t.Errorf("view before size = %q", v.Content)
	}
}

func TestEnvExportError(t *testing.T) {
	env := Env{Saver: failingSaver{}}
	msg := env.Export("x.csv", []byte("a"))()
	d, ok := msg.(ShowMessageDialogMsg)
	if !ok || d.Type != MessageError || !strings.Contains(d.Message, "disco lleno") {
		t.Errorf("msg = %#v", msg)
	}
}

type failingSaver struct{}

func (failingSaver) Save(string, []byte) (string, error) { return "", errors.New("disco lleno") }
