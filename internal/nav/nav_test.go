package nav

import (
	"errors"
	"testing"

	"GuardianesDelFuego/internal/testutils"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestRolesHaveFiveTabsAndDefault(t *testing.T) {
	for _, r := range Roles {
		tabs := Tabs(r)
		if len(tabs) != 5 {
			t.Errorf("%s: %d tabs, want 5", r, len(tabs))
		}
		if !HasTab(r, DefaultTab(r)) {
			t.Errorf("%s: default tab %q not in list", r, DefaultTab(r))
		}
	}
}

func TestDefaultTabs(t *testing.T) {
	want := map[Role]Tab{RoleCitizen: TabHome, RoleAcademia: TabDataLab, RoleAuthority: TabAlerts}
	for r, tab := range want {
		if got := DefaultTab(r); got != tab {
			t.Errorf("DefaultTab(%s) = %q, want %q", r, got, tab)
		}
	}
}

func TestTabsReturnsCopy(t *testing.T) {
	tabs := Tabs(RoleCitizen)
	tabs[0].Label = "changed"
	if Tabs(RoleCitizen)[0].Label != "Inicio" {
		t.Error("Tabs should not expose the internal table")
	}
}

func TestSetRoleSnapsToDefault(t *testing.T) {
	for _, from := range Roles {
		for _, to := range Roles {
			n := NewNavigator()
			if err := n.SetRole(from); err != nil {
				t.Fatal(err)
			}
			// Move off the default where possible.
			n.Cycle(1)
			if err := n.SetRole(to); err != nil {
				t.Fatal(err)
			}
			if n.Tab() != DefaultTab(to) || !HasTab(to, n.Tab()) {
				t.Errorf("%s -> %s: tab %q", from, to, n.Tab())
			}
		}
	}
}

func TestSelect(t *testing.T) {
	n := NewNavigator()
	if err := n.Select(TabHome); err != nil {
		t.Errorf("re-selecting the active tab should be a no-op, got %v", err)
	}
	if err := n.Select(TabCommunity); err != nil || n.Tab() != TabCommunity {
		t.Errorf("Select(community) = %v, tab %q", err, n.Tab())
	}
	err := n.Select(TabDataLab)
	if !errors.Is(err, ErrTabNotInRole) {
		t.Errorf("Select(datalab) as citizen = %v, want ErrTabNotInRole", err)
	}
	if n.Tab() != TabCommunity {
		t.Errorf("rejected select changed the tab to %q", n.Tab())
	}
}

func TestSetRoleUnknown(t *testing.T) {
	n := NewNavigator()
	if err := n.SetRole(Role(42)); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("SetRole(42) = %v", err)
	}
	if n.Role() != RoleCitizen {
		t.Error("unknown role should leave the navigator untouched")
	}
}

func TestScreenFor(t *testing.T) {
	tests := []struct {
		role Role
		tab  Tab
		want Screen
	}{
		{RoleCitizen, TabReport, ScreenReport},
		{RoleAcademia, TabReport, ScreenReport},
		{RoleAuthority, TabReport, ScreenDispatch},
		{RoleAuthority, TabHome, ScreenHome},
		{RoleAcademia, TabDataLab, ScreenDataLab},
		{RoleAuthority, TabAlerts, ScreenAlerts},
		{RoleCitizen, Tab("nope"), ScreenNone},
	}
	var cases []testutils.TestCase
	for _, tt := range tests {
		got := ScreenFor(tt.role, tt.tab)
		cases = append(cases, testutils.TestCase{
			Input:    tt.role.String() + "/" + string(tt.tab),
			Expected: tt.want.String(),
			Actual:   got.String(),
			Pass:     got == tt.want,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestCycleAndSelectIndex(t *testing.T) {
	n := NewNavigator()
	n.Cycle(-1)
	if n.Tab() != TabProfile {
		t.Errorf("Cycle(-1) from home = %q, want profile", n.Tab())
	}
	n.Cycle(1)
	if n.Tab() != TabHome {
		t.Errorf("Cycle(1) from profile = %q, want home", n.Tab())
	}
	if err := n.SelectIndex(2); err != nil || n.Tab() != TabLearn {
		t.Errorf("SelectIndex(2) = %v, tab %q", err, n.Tab())
	}
	if err := n.SelectIndex(5); !errors.Is(err, ErrTabNotInRole) {
		t.Errorf("SelectIndex(5) = %v", err)
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRole(%q) = %v, %v", r, got, err)
		}
	}
	if _, err := ParseRole("admin"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("ParseRole(admin) = %v", err)
	}
}
