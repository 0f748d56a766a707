package screens

import (
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const evidenceSlots = 3

const (
	reportLocate = iota
	reportEvidence
	reportDescription = reportEvidence + evidenceSlots
	reportAnonymous   = reportDescription + 1
	reportSend        = reportAnonymous + 1
	reportFields      = reportSend + 1
)

const (
	ReportSentTitle  = "Reporte enviado"
	ReportSentNotice = "Se notificará a Bomberos, DAGMA y CVC automáticamente."
)

// ReportScreen is the citizen's incident report form. Nothing leaves the
// device; sending only shows a notice.
type ReportScreen struct {
	base
	located     bool
	evidence    [evidenceSlots]bool
	description textarea.Model
	anonymous   bool
}

// NewReportScreen creates the report form with anonymity on.
func NewReportScreen(env tui.Env) *ReportScreen {
	return &ReportScreen{
		base:        base{env: env, focus: tui.FocusRing{Count: reportFields}},
		description: newArea("Ej: llama visible en ladera, viento moderado, sin heridos."),
		anonymous:   true,
	}
}

func (s *ReportScreen) Init() tea.Cmd { return nil }
func (s *ReportScreen) Title() string { return "Reportar incendio" }

func (s *ReportScreen) SetContext(ctx tui.Context) {
	s.base.SetContext(ctx)
	styleArea(&s.description, ctx.Styles, s.cardInner()-4)
}

func (s *ReportScreen) syncFocus() tea.Cmd {
	if s.focus.Is(reportDescription) {
		return s.description.Focus()
	}
	s.description.Blur()
	return nil
}

func (s *ReportScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	inField := s.focus.Is(reportDescription)
	if s.cycle(kp, inField) {
		return s, s.syncFocus()
	}
	if inField {
		var cmd tea.Cmd
		s.description, cmd = s.description.Update(kp)
		return s, cmd
	}
	if !key.Matches(kp, tui.Keys.Activate) {
		return s, nil
	}

	switch i := s.focus.Index; {
	case i == reportLocate:
		s.located = true
	case i >= reportEvidence && i < reportEvidence+evidenceSlots:
		s.evidence[i-reportEvidence] = !s.evidence[i-reportEvidence]
	case i == reportAnonymous:
		s.anonymous = !s.anonymous
	case i == reportSend:
		return s, tui.Notify(ReportSentTitle, ReportSentNotice, tui.MessageSuccess)
	}
	return s, nil
}

// Located reports whether the simulated GPS fix was taken.
func (s *ReportScreen) Located() bool { return s.located }

// Anonymous reports the anonymity toggle.
func (s *ReportScreen) Anonymous() bool { return s.anonymous }

func (s *ReportScreen) ViewString() string {
	st := s.styles()
	w, inner := s.cardWidth(), s.cardInner()
	p := st.Palette
	var b tui.Builder

	// Location
	where := st.Sub.Render("Usa tu GPS o ajusta en el mapa")
	if s.located && s.env.Data != nil {
		where = st.StatusSuccess.Render(tui.GlyphPin + " " + s.env.Data.Location + " (GPS simulado)")
	}
	loc := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle(st, tui.GlyphPin, p.Primary, "Ubicación"),
		where,
	)
	b.Add(st.RenderCard(loc, w, false))
	b.AddFocus(st.WideButton("Usar mi ubicación", tui.ButtonAccent, s.focus.Is(reportLocate), w), s.focus.Is(reportLocate))

	// Evidence
	slotW := inner / evidenceSlots
	var slots []string
	for i, attached := range s.evidence {
		label := "+"
		if i == 0 {
			label = "⇪"
		}
		if attached {
			label = "✓ foto"
		}
		focused := s.focus.Is(reportEvidence + i)
		slot := st.Pill(lipgloss.PlaceHorizontal(max(slotW-4, 1), lipgloss.Center, label), attached, focused)
		slots = append(slots, st.Text.Width(slotW).Align(lipgloss.Center).Render(slot))
	}
	evFocused := s.focus.Index >= reportEvidence && s.focus.Index < reportEvidence+evidenceSlots
	ev := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle(st, "", "", "Evidencia"),
		lipgloss.JoinHorizontal(lipgloss.Top, slots...),
	)
	b.AddFocus(st.RenderCard(ev, w, evFocused), evFocused)

	// Description
	descFocused := s.focus.Is(reportDescription)
	priority := st.Colored("⚠", p.Amber) + st.Sub.Render(" Prioridad estimada: ") + st.Strong.Render("Media")
	anon := st.FocusPrefix(s.focus.Is(reportAnonymous)) +
		st.Text.Render(tui.Check(s.anonymous, st.LineCharacters)+" Anonimato")
	desc := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle(st, "", "", "Descripción"),
		fieldBox(st, s.description.View(), inner, descFocused),
		priority,
		anon,
	)
	b.AddFocus(st.RenderCard(desc, w, descFocused || s.focus.Is(reportAnonymous)), descFocused || s.focus.Is(reportAnonymous))

	b.AddFocus(st.WideButton(tui.GlyphChevron+" Enviar reporte", tui.ButtonDanger, s.focus.Is(reportSend), w), s.focus.Is(reportSend))
	b.Add(centered(st, st.Sub.Render(ReportSentNotice), w))

	s.focusLine = b.FocusLine()
	return b.String()
}
