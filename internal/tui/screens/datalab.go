package screens

import (
	"slices"

	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	labSensor = iota
	labVariable
	labFrom
	labTo
	labCopy
	labDownload
	labFields
)

// DataLabScreen builds an API query and a CSV export for one sensor
// variable over a date range.
type DataLabScreen struct {
	base
	sensors []string
	query   datalab.Query
	from    textinput.Model
	to      textinput.Model
}

// NewDataLabScreen starts on the first sensor, temperature, and today.
func NewDataLabScreen(env tui.Env) *DataLabScreen {
	sensors := env.Config.DataLab.Sensors
	if len(sensors) == 0 && env.Data != nil {
		sensors = env.Data.Sensors
	}
	first := ""
	if len(sensors) > 0 {
		first = sensors[0]
	}
	q := datalab.NewQuery(first, env.Today())
	s := &DataLabScreen{
		base:    base{env: env, focus: tui.FocusRing{Count: labFields}},
		sensors: sensors,
		query:   q,
		from:    newInput("AAAA-MM-DD"),
		to:      newInput("AAAA-MM-DD"),
	}
	s.from.CharLimit = 10
	s.to.CharLimit = 10
	s.from.SetValue(q.From)
	s.to.SetValue(q.To)
	return s
}

func (s *DataLabScreen) Init() tea.Cmd { return nil }
func (s *DataLabScreen) Title() string { return "Datos en tiempo real" }

// Query is the current form state.
func (s *DataLabScreen) Query() datalab.Query { return s.query }

func (s *DataLabScreen) SetContext(ctx tui.Context) {
	s.base.SetContext(ctx)
	half := s.cardInner()/2 - 4
	styleInput(&s.from, ctx.Styles, half)
	styleInput(&s.to, ctx.Styles, half)
}

func (s *DataLabScreen) inField() bool {
	return s.focus.Is(labFrom) || s.focus.Is(labTo)
}

func (s *DataLabScreen) syncFocus() tea.Cmd {
	s.from.Blur()
	s.to.Blur()
	switch s.focus.Index {
	case labFrom:
		return s.from.Focus()
	case labTo:
		return s.to.Focus()
	}
	return nil
}

// step cycles a selector value by delta, wrapping.
func step[T comparable](options []T, current T, delta int) T {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	return options[(i+delta+len(options))%len(options)]
}

func (s *DataLabScreen) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if s.cycle(kp, s.inField()) {
		return s, s.syncFocus()
	}

	if s.inField() {
		var cmd tea.Cmd
		if s.focus.Is(labFrom) {
			s.from, cmd = s.from.Update(kp)
			s.query.From = s.from.Value()
		} else {
			s.to, cmd = s.to.Update(kp)
			s.query.To = s.to.Value()
		}
		return s, cmd
	}

	delta := 0
	switch {
	case key.Matches(kp, tui.Keys.Left):
		delta = -1
	case key.Matches(kp, tui.Keys.Right), key.Matches(kp, tui.Keys.Activate):
		delta = 1
	}

	switch s.focus.Index {
	case labSensor:
		if delta != 0 {
			s.query.Sensor = step(s.sensors, s.query.Sensor, delta)
		}
	case labVariable:
		if delta != 0 {
			s.query.Variable = step(domain.Variables, s.query.Variable, delta)
		}
	case labCopy:
		if key.Matches(kp, tui.Keys.Activate) && s.query.Validate() == nil {
			return s, s.session().CopyURL(s.query.URL(s.session().Config.DataLab.Endpoint))
		}
	case labDownload:
		if key.Matches(kp, tui.Keys.Activate) && s.query.Validate() == nil {
			return s, s.download()
		}
	}
	return s, nil
}

func (s *DataLabScreen) download() tea.Cmd {
	var series []domain.SeriesPoint
	if s.env.Data != nil {
		series = s.env.Data.Series
	}
	data, err := s.query.CSV(series)
	if err != nil {
		logger.Error(s.env.Context(), "Building CSV: %v", err)
		return tui.Notify("Descarga", err.Error(), tui.MessageError)
	}
	return s.session().Export(s.query.FileName(), data)
}

func (s *DataLabScreen) ViewString() string {
	st := s.styles()
	w, inner := s.cardWidth(), s.cardInner()
	half := inner / 2
	var b tui.Builder

	valid := s.query.Validate()

	sel := lipgloss.JoinHorizontal(lipgloss.Top,
		selector(st, s.query.Sensor, half, s.focus.Is(labSensor)),
		selector(st, s.query.Variable.Label(), inner-half, s.focus.Is(labVariable)),
	)
	dates := lipgloss.JoinHorizontal(lipgloss.Top,
		fieldBox(st, s.from.View(), half, s.focus.Is(labFrom)),
		fieldBox(st, s.to.View(), inner-half, s.focus.Is(labTo)),
	)
	var status string
	if valid != nil {
		status = st.StatusWarn.Width(inner).Render("⚠ " + valid.Error())
	} else {
		status = st.Sub.Width(inner).Render(s.query.URL(s.session().Config.DataLab.Endpoint))
	}

	kind := tui.ButtonSecondary
	copyLabel, dlLabel := "Copiar URL API", "Descargar CSV"
	if valid != nil {
		copyLabel, dlLabel = "(sin URL)", "(sin CSV)"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Text.Width(half).Render(st.WideButton(copyLabel, kind, s.focus.Is(labCopy), half-1)),
		st.Text.Width(inner-half).Render(st.WideButton(dlLabel, kind, s.focus.Is(labDownload), inner-half)),
	)

	var series []domain.SeriesPoint
	if s.env.Data != nil {
		series = s.env.Data.Series
	}
	chartTitle := st.Strong.Render(s.query.Sensor + " · " + s.query.Variable.Label() + " (día)")
	chart := barChart(st, series, s.query.Variable, seriesColor(st.Palette, s.query.Variable), inner)

	focusAt := map[int]int{}
	var lines tui.Builder
	focusAt[labSensor] = lines.Len()
	focusAt[labVariable] = lines.Len()
	lines.Add(sel)
	focusAt[labFrom] = lines.Len()
	focusAt[labTo] = lines.Len()
	lines.Add(dates)
	lines.Add(status)
	focusAt[labCopy] = lines.Len()
	focusAt[labDownload] = lines.Len()
	lines.Add(buttons, "", chartTitle, chart)

	b.Add(st.RenderCard(lines.String(), w, false))
	// one line for the card's top border
	s.focusLine = focusAt[s.focus.Index] + 1
	return b.String()
}
