package screens

import (
	"strconv"
	"strings"

	"GuardianesDelFuego/internal/dispatch"
	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/theme"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DispatchScreen is the authority's incident panel. Filter chips are the
// only controls; the per-item actions are shown but do nothing.
type DispatchScreen struct {
	base
	filters []dispatch.Filter
	filter  dispatch.Filter
}

// NewDispatchScreen starts with every item visible.
func NewDispatchScreen(env tui.Env) *DispatchScreen {
	filters := dispatch.Filters()
	return &DispatchScreen{
		base:    base{env: env, focus: tui.FocusRing{Count: len(filters)}},
		filters: filters,
		filter:  filters[0],
	}
}

func (s *DispatchScreen) Init() tea.Cmd { return nil }
func (s *DispatchScreen) Title() string { return "Panel de despacho" }

// Filter is the active status filter.
func (s *DispatchScreen) Filter() dispatch.Filter { return s.filter }

func (s *DispatchScreen) items() []domain.DispatchItem {
	if s.env.Data == nil {
		return nil
	}
	return s.env.Data.Dispatch
}

// Visible is the filtered list.
func (s *DispatchScreen) Visible() []domain.DispatchItem {
	return s.filter.Apply(s.items())
}

func (s *DispatchScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case s.focus.HandleCycle(kp):
	case key.Matches(kp, tui.Keys.Left):
		s.focus.Prev()
	case key.Matches(kp, tui.Keys.Right):
		s.focus.Next()
	case key.Matches(kp, tui.Keys.Activate):
		s.filter = s.filters[s.focus.Index]
	}
	return s, nil
}

func actionKind(st dispatch.Style) tui.ButtonKind {
	switch st {
	case dispatch.StylePrimary:
		return tui.ButtonPrimary
	case dispatch.StyleDanger:
		return tui.ButtonDanger
	}
	return tui.ButtonSecondary
}

func (s *DispatchScreen) ViewString() string {
	st := s.styles()
	w, inner := s.cardWidth(), s.cardInner()
	p := st.Palette
	var b tui.Builder

	// Counters, one per status
	counts := dispatch.Counts(s.items())
	cell := w / len(domain.Statuses)
	var counters []string
	for _, status := range domain.Statuses {
		content := lipgloss.JoinVertical(lipgloss.Center,
			st.Sub.Render(tui.Truncate(string(status), cell-4)),
			st.Title.Render(strconv.Itoa(counts[status])),
		)
		counters = append(counters, st.Card.Width(cell).Align(lipgloss.Center).Render(content))
	}
	b.Add(lipgloss.JoinHorizontal(lipgloss.Top, counters...))

	// Filter chips
	var chips []string
	for i, f := range s.filters {
		chips = append(chips, st.Pill(f.Label(), f == s.filter, s.focus.Is(i)))
	}
	b.Blank()
	b.AddFocus(strings.Join(chips, st.Text.Render(" ")), true)
	b.Blank()

	for _, item := range s.Visible() {
		prioColor := p.Amber
		if item.Priority == domain.PriorityHigh {
			prioColor = p.Danger
		}
		lines := []string{
			st.Row(st.Strong.Render(item.Place), st.Sub.Render(item.Age), inner),
			st.Text.Background(theme.Color(p.Tint(p.Accent, 0.15))).Width(inner).Render(""),
			st.Pill(string(item.Status), false, false) + st.Text.Render(" ") + st.Chip(string(item.Priority), prioColor),
		}
		if actions := dispatch.Actions(item.Status); len(actions) > 0 {
			var specs []tui.ButtonSpec
			for _, a := range actions {
				specs = append(specs, tui.ButtonSpec{Text: a.Label, Kind: actionKind(a.Style)})
			}
			if len(specs) == 1 {
				lines = append(lines, st.WideButton(specs[0].Text, specs[0].Kind, false, inner))
			} else {
				lines = append(lines, st.RenderButtonRow(inner, specs...))
			}
		}
		b.Add(st.RenderCard(strings.Join(lines, "\n"), w, false))
	}

	s.focusLine = b.FocusLine()
	return b.String()
}
