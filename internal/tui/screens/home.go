package screens

import (
	"strings"

	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	mapHeight = 7

	// Temperature axis for the home chart.
	homeTempMin = 20.0
	homeTempMax = 36.0
)

// alertsPanel is the map plus the focusable list of recent alerts. Home
// and Alerts both show it.
type alertsPanel struct {
	base
}

func (p *alertsPanel) alerts() []domain.AlertItem {
	if p.env.Data == nil {
		return nil
	}
	return p.env.Data.Alerts
}

func (p *alertsPanel) update(msg tea.Msg) tea.Cmd {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	p.focus.SetCount(len(p.alerts()))
	if p.focus.HandleCycle(kp) {
		return nil
	}
	if key.Matches(kp, tui.Keys.Activate) && p.focus.Count > 0 {
		a := p.alerts()[p.focus.Index]
		return tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Alert{Item: a}})
	}
	return nil
}

func (p *alertsPanel) renderMap(b *tui.Builder) {
	if p.env.Data == nil {
		return
	}
	b.Add(mapCard(p.styles(), p.env.Data.Risk, p.env.Data.Markers, p.cardWidth(), mapHeight))
}

func (p *alertsPanel) renderAlerts(b *tui.Builder) {
	s := p.styles()
	b.Add(sectionTitle(s, tui.GlyphMarker, s.Palette.Amber, "Alertas recientes"))
	for i, a := range p.alerts() {
		b.AddFocus(alertRow(s, a, p.cardWidth(), p.focus.Is(i)), p.focus.Is(i))
	}
}

// HomeScreen is the citizen's landing screen.
type HomeScreen struct {
	alertsPanel
}

// NewHomeScreen creates the home screen.
func NewHomeScreen(env tui.Env) *HomeScreen {
	return &HomeScreen{alertsPanel{base: base{env: env}}}
}

func (s *HomeScreen) Init() tea.Cmd      { return nil }
func (s *HomeScreen) Title() string      { return "Guardianes" }
func (s *HomeScreen) ShowRoleChip() bool { return true }

func (s *HomeScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	return s, s.update(msg)
}

func (s *HomeScreen) ViewString() string {
	st := s.styles()
	var b tui.Builder
	s.renderMap(&b)
	if s.env.Data != nil {
		b.Add(metricGrid(st, s.env.Data.Metrics, s.cardWidth(), 2, true))
		b.Add(s.renderChart())
	}
	s.renderAlerts(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}

// renderChart shows temperature as bars on a fixed axis with humidity
// alongside.
func (s *HomeScreen) renderChart() string {
	st := s.styles()
	inner := s.cardInner()
	timeW, valW := 6, 5
	barW := max(inner-timeW-2*valW-1, 4)

	lines := []string{
		sectionTitle(st, tui.GlyphBar, st.Palette.Primary, "Tª/Humedad (hoy)"),
		st.Sub.Render(strings.Repeat(" ", timeW+barW+1)) +
			st.Colored(lipgloss.PlaceHorizontal(valW, lipgloss.Right, "°C"), st.Palette.Primary) +
			st.Colored(lipgloss.PlaceHorizontal(valW, lipgloss.Right, "%"), st.Palette.Amber),
	}
	for _, p := range s.env.Data.Series {
		frac := (p.Temp - homeTempMin) / (homeTempMax - homeTempMin)
		n := int(min(max(frac, 0), 1)*float64(barW) + 0.5)
		lines = append(lines,
			st.Sub.Width(timeW).Render(p.T)+
				st.Colored(strings.Repeat(tui.GlyphBar, n), st.Palette.Primary)+
				st.Text.Render(strings.Repeat(" ", barW-n+1))+
				st.Text.Width(valW).Align(lipgloss.Right).Render(domain.FormatValue(p.Temp))+
				st.Colored(lipgloss.PlaceHorizontal(valW, lipgloss.Right, domain.FormatValue(p.Hum)), st.Palette.Amber),
		)
	}
	return st.RenderCard(strings.Join(lines, "\n"), s.cardWidth(), false)
}

// AlertsScreen is the map and the alert list on their own.
type AlertsScreen struct {
	alertsPanel
}

// NewAlertsScreen creates the alerts screen.
func NewAlertsScreen(env tui.Env) *AlertsScreen {
	return &AlertsScreen{alertsPanel{base: base{env: env}}}
}

func (s *AlertsScreen) Init() tea.Cmd { return nil }
func (s *AlertsScreen) Title() string { return "Alertas" }

func (s *AlertsScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	return s, s.update(msg)
}

func (s *AlertsScreen) ViewString() string {
	var b tui.Builder
	s.renderMap(&b)
	s.renderAlerts(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}
