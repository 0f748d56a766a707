// Package nav maps roles to their bottom-navigation tabs and tracks the
// active tab.
package nav

import (
	"errors"
	"fmt"

	"GuardianesDelFuego/internal/constants"
)

// Role decides which tabs the shell shows.
type Role int

const (
	RoleCitizen Role = iota
	RoleAcademia
	RoleAuthority
)

// DefaultRole is the role assigned on login and logout.
const DefaultRole = RoleCitizen

// Roles lists every role in switcher order.
var Roles = []Role{RoleCitizen, RoleAcademia, RoleAuthority}

func (r Role) String() string {
	switch r {
	case RoleCitizen:
		return "ciudadano"
	case RoleAcademia:
		return "academia"
	case RoleAuthority:
		return "autoridad"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole accepts a role label.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Tab is a bottom-navigation key.
type Tab string

const (
	TabHome      Tab = "home"
	TabReport    Tab = "report"
	TabLearn     Tab = "learn"
	TabCommunity Tab = "community"
	TabDataLab   Tab = "datalab"
	TabAlerts    Tab = "alerts"
	TabProfile   Tab = "profile"
)

// TabSpec is one entry of a role's navigation bar.
type TabSpec struct {
	Key   Tab
	Label string
}

type roleTabs struct {
	tabs       []TabSpec
	defaultTab Tab
}

var table = map[Role]roleTabs{
	RoleCitizen: {
		tabs: []TabSpec{
			{TabHome, "Inicio"},
			{TabReport, "Reportar"},
			{TabLearn, "Educar"},
			{TabCommunity, "Comunidad"},
			{TabProfile, "Perfil"},
		},
		defaultTab: TabHome,
	},
	RoleAcademia: {
		tabs: []TabSpec{
			{TabHome, "Inicio"},
			{TabDataLab, "Datos"},
			{TabReport, "Reportar"},
			{TabLearn, "Educar"},
			{TabProfile, "Perfil"},
		},
		defaultTab: TabDataLab,
	},
	RoleAuthority: {
		tabs: []TabSpec{
			{TabAlerts, "Alertas"},
			{TabHome, "Mapa"},
			{TabReport, "Reportes"},
			{TabLearn, "Protocolos"},
			{TabProfile, "Perfil"},
		},
		defaultTab: TabAlerts,
	},
}

var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrTabNotInRole = errors.New("tab is not available for role")
)

// Tabs returns a copy of the role's ordered tabs.
func Tabs(r Role) []TabSpec {
	rt, ok := table[r]
	if !ok {
		return nil
	}
	return append([]TabSpec(nil), rt.tabs...)
}

// DefaultTab is the landing tab of a role.
func DefaultTab(r Role) Tab {
	return table[r].defaultTab
}

// HasTab reports whether t is in r's tab list.
func HasTab(r Role, t Tab) bool {
	for _, spec := range table[r].tabs {
		if spec.Key == t {
			return true
		}
	}
	return false
}

// Validate checks the role table: every role has exactly TabsPerRole unique
// tabs and its default is one of them.
func Validate() error {
	for _, r := range Roles {
		rt, ok := table[r]
		if !ok {
			return fmt.Errorf("%w: %s has no tab table", ErrUnknownRole, r)
		}
		if len(rt.tabs) != constants.TabsPerRole {
			return fmt.Errorf("role %s has %d tabs, want %d", r, len(rt.tabs), constants.TabsPerRole)
		}
		seen := make(map[Tab]bool, len(rt.tabs))
		for _, spec := range rt.tabs {
			if seen[spec.Key] {
				return fmt.Errorf("role %s lists tab %q twice", r, spec.Key)
			}
			seen[spec.Key] = true
		}
		if !seen[rt.defaultTab] {
			return fmt.Errorf("role %s default tab %q: %w", r, rt.defaultTab, ErrTabNotInRole)
		}
	}
	return nil
}

// Screen is the view rendered for a (role, tab) pair.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenHome
	ScreenReport
	ScreenDispatch
	ScreenLearn
	ScreenCommunity
	ScreenDataLab
	ScreenAlerts
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenReport:
		return "report"
	case ScreenDispatch:
		return "dispatch"
	case ScreenLearn:
		return "learn"
	case ScreenCommunity:
		return "community"
	case ScreenDataLab:
		return "datalab"
	case ScreenAlerts:
		return "alerts"
	case ScreenProfile:
		return "profile"
	}
	return "none"
}

// ScreenFor resolves which screen a tab shows. Authorities see the dispatch
// panel under the report tab.
func ScreenFor(r Role, t Tab) Screen {
	switch t {
	case TabHome:
		return ScreenHome
	case TabReport:
		if r == RoleAuthority {
			return ScreenDispatch
		}
		return ScreenReport
	case TabLearn:
		return ScreenLearn
	case TabCommunity:
		return ScreenCommunity
	case TabDataLab:
		return ScreenDataLab
	case TabAlerts:
		return ScreenAlerts
	case TabProfile:
		return ScreenProfile
	}
	return ScreenNone
}

// Navigator holds the active role and tab. The tab is always one of the
// role's tabs.
type Navigator struct {
	role Role
	tab  Tab
}

// NewNavigator starts on the default role's landing tab.
func NewNavigator() Navigator {
	return Navigator{role: DefaultRole, tab: DefaultTab(DefaultRole)}
}

func (n Navigator) Role() Role { return n.role }
func (n Navigator) Tab() Tab   { return n.tab }

// Screen is ScreenFor the current role and tab.
func (n Navigator) Screen() Screen { return ScreenFor(n.role, n.tab) }

// SetRole swaps the tab list and snaps to the role's default tab.
func (n *Navigator) SetRole(r Role) error {
	if _, ok := table[r]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	n.role = r
	n.tab = DefaultTab(r)
	return nil
}

// Select makes t the active tab. Selecting the active tab is a no-op.
func (n *Navigator) Select(t Tab) error {
	if t == n.tab {
		return nil
	}
	if !HasTab(n.role, t) {
		return fmt.Errorf("%w: %q under %s", ErrTabNotInRole, t, n.role)
	}
	n.tab = t
	return nil
}

// Index is the position of the active tab in the role's list.
func (n Navigator) Index() int {
	for i, spec := range table[n.role].tabs {
		if spec.Key == n.tab {
			return i
		}
	}
	return -1
}

// SelectIndex selects the i-th tab of the current role.
func (n *Navigator) SelectIndex(i int) error {
	tabs := table[n.role].tabs
	if i < 0 || i >= len(tabs) {
		return fmt.Errorf("%w: index %d under %s", ErrTabNotInRole, i, n.role)
	}
	return n.Select(tabs[i].Key)
}

// Cycle moves delta tabs along the bar, wrapping around.
func (n *Navigator) Cycle(delta int) {
	tabs := table[n.role].tabs
	if len(tabs) == 0 {
		return
	}
	i := (n.Index() + delta) % len(tabs)
	if i < 0 {
		i += len(tabs)
	}
	n.tab = tabs[i].Key
}
