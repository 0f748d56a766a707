package screens

import (
	"fmt"
	"strings"

	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/theme"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Field focus only moves on tab so arrows keep editing the text.
var (
	fieldNext = key.NewBinding(key.WithKeys("tab"))
	fieldPrev = key.NewBinding(key.WithKeys("shift+tab"))
)

// base carries what every screen needs: the session environment, the
// latest context from the root and a focus ring.
type base struct {
	env       tui.Env
	ctx       tui.Context
	focus     tui.FocusRing
	focusLine int
}

func (b *base) SetContext(ctx tui.Context) { b.ctx = ctx }

func (b *base) FocusLine() int { return b.focusLine }

func (b *base) styles() tui.Styles { return b.ctx.Styles }

// session is the environment with the latest config pushed by the root.
func (b *base) session() tui.Env {
	if b.ctx.Config.DataLab.Endpoint == "" {
		return b.env
	}
	return b.env.WithConfig(b.ctx.Config)
}

// cardWidth is the outer width of a full-width card.
func (b *base) cardWidth() int { return max(b.ctx.Width, 20) }

// cardInner is the text width inside a full-width card.
func (b *base) cardInner() int { return b.cardWidth() - 4 }

// cycle moves focus. When a text field has focus only tab/shift+tab count.
func (b *base) cycle(msg tea.KeyPressMsg, inField bool) bool {
	if !inField {
		return b.focus.HandleCycle(msg)
	}
	switch {
	case key.Matches(msg, fieldNext):
		b.focus.Next()
		return true
	case key.Matches(msg, fieldPrev):
		b.focus.Prev()
		return true
	}
	return false
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	st := textinput.DefaultStyles(false)
	st.Cursor.Blink = false
	ti.SetStyles(st)
	return ti
}

func styleInput(ti *textinput.Model, s tui.Styles, width int) {
	st := textinput.DefaultStyles(s.Palette.Dark)
	st.Focused.Text = s.Text
	st.Focused.Placeholder = s.Sub
	st.Blurred.Text = s.Text
	st.Blurred.Placeholder = s.Sub
	st.Cursor.Color = theme.Color(s.Palette.Primary)
	st.Cursor.Blink = false
	ti.SetStyles(st)
	ti.SetWidth(max(width, 4))
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(3)
	st := textarea.DefaultStyles(false)
	st.Cursor.Blink = false
	ta.SetStyles(st)
	return ta
}

func styleArea(ta *textarea.Model, s tui.Styles, width int) {
	st := textarea.DefaultStyles(s.Palette.Dark)
	for _, state := range []*textarea.StyleState{&st.Focused, &st.Blurred} {
		state.Base = s.Text
		state.Text = s.Text
		state.CursorLine = s.Text
		state.Placeholder = s.Sub
		state.EndOfBuffer = s.Text
	}
	st.Cursor.Color = theme.Color(s.Palette.Primary)
	st.Cursor.Blink = false
	ta.SetStyles(st)
	ta.SetWidth(max(width, 4))
}

// fieldBox frames a text field; the border turns primary when focused.
func fieldBox(s tui.Styles, view string, width int, focused bool) string {
	st := s.Card
	if focused {
		st = s.CardFocused
	}
	return st.Width(width).Render(view)
}

// selector is a framed ‹ value › control changed with ←/→.
func selector(s tui.Styles, label string, width int, focused bool) string {
	text := "‹ " + tui.Truncate(label, width-8) + " ›"
	return fieldBox(s, lipgloss.PlaceHorizontal(width-4, lipgloss.Center, text), width, focused)
}

func sectionTitle(s tui.Styles, glyph, hex, title string) string {
	if glyph == "" {
		return s.Strong.Render(title)
	}
	return s.Colored(glyph, hex) + s.Strong.Render(" "+title)
}

// mapCard draws the simulated map with its markers.
func mapCard(s tui.Styles, risk string, markers []domain.Marker, width, height int) string {
	inner := width - 4
	head := s.Row(
		sectionTitle(s, tui.GlyphPin, s.Palette.Primary, "Mapa en vivo"),
		s.Sub.Render("Riesgo: ")+s.Colored(risk, s.Palette.Amber),
		inner,
	)

	grid := make([][]string, height)
	field := s.Text.Background(theme.Color(s.Palette.Tint(s.Palette.Accent, 0.12)))
	dot := field.Foreground(theme.Color(s.Palette.Subtext)).Faint(true)
	for y := range grid {
		grid[y] = make([]string, inner)
		for x := range grid[y] {
			if (x+y)%6 == 0 {
				grid[y][x] = dot.Render("·")
			} else {
				grid[y][x] = field.Render(" ")
			}
		}
	}
	for _, m := range markers {
		x := min(m.X*inner/100, inner-1)
		y := min(m.Y*height/100, height-1)
		grid[y][x] = field.Foreground(theme.Color(m.Color)).Bold(true).Render(tui.GlyphMarker)
	}
	label := "Simulación"
	last := grid[height-1]
	for i, r := range label {
		if i+1 < inner {
			last[i+1] = field.Foreground(theme.Color(s.Palette.Subtext)).Render(string(r))
		}
	}

	rows := make([]string, 0, height)
	for _, row := range grid {
		rows = append(rows, strings.Join(row, ""))
	}

	half := inner / 2
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Text.Width(half).Render(s.WideButton("Filtrar", tui.ButtonSecondary, false, half-1)),
		s.Text.Width(inner-half).Render(s.WideButton("Vista satelital", tui.ButtonPrimary, false, inner-half)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, head, "", strings.Join(rows, "\n"), "", buttons)
	return s.RenderCard(content, width, false)
}

// alertRow is one alert card; focused cards get the primary border.
func alertRow(s tui.Styles, a domain.AlertItem, width int, focused bool) string {
	inner := width - 4
	icon := s.Swatch(tui.GlyphFlame, a.Color)
	chip := s.Chip(string(a.Level), a.Color)
	room := inner - lipgloss.Width(icon) - lipgloss.Width(chip) - 2
	text := lipgloss.JoinVertical(lipgloss.Left,
		s.Strong.Render(tui.Truncate(a.Place, room)),
		s.Sub.Render(tui.Truncate(a.Time, room)),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Center, icon, s.Text.Render(" "), text)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(chip), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, s.Text.Render(strings.Repeat(" ", gap)), chip)
	return s.RenderCard(row, width, focused)
}

// metricGrid lays out stat tiles in cols columns.
func metricGrid(s tui.Styles, stats []domain.Stat, width, cols int, inRange bool) string {
	if len(stats) == 0 || cols <= 0 {
		return ""
	}
	cell := width / cols
	var rows []string
	for i := 0; i < len(stats); i += cols {
		var cells []string
		for j := i; j < min(i+cols, len(stats)); j++ {
			st := stats[j]
			lines := []string{
				s.Sub.Render(tui.Truncate(st.Label, cell-4)),
				s.Title.Render(tui.Truncate(st.Value, cell-4)),
			}
			if inRange && st.Color != "" {
				lines = append(lines, s.Colored(tui.Truncate(tui.GlyphMarker+" En rango", cell-4), st.Color))
			}
			cells = append(cells, s.Card.Width(cell).Padding(0, 1).Render(strings.Join(lines, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// barChart renders one variable of the series as horizontal bars.
func barChart(s tui.Styles, series []domain.SeriesPoint, v domain.Variable, hex string, width int) string {
	lo, hi := chartDomain(series, v)
	valueW := 6
	labelW := 6
	barW := max(width-labelW-valueW-2, 4)

	var b strings.Builder
	for i, p := range series {
		val := p.Value(v)
		frac := 0.0
		if hi > lo {
			frac = (val - lo) / (hi - lo)
		}
		frac = min(max(frac, 0), 1)
		n := int(frac*float64(barW) + 0.5)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Sub.Width(labelW).Render(p.T))
		b.WriteString(s.Colored(strings.Repeat(tui.GlyphBar, n), hex))
		b.WriteString(s.Text.Render(strings.Repeat(" ", barW-n+1)))
		b.WriteString(s.Text.Width(valueW).Align(lipgloss.Right).Render(domain.FormatValue(val)))
	}
	return b.String()
}

// chartDomain fixes the axis for smoke and wind; other variables scale to
// the data.
func chartDomain(series []domain.SeriesPoint, v domain.Variable) (float64, float64) {
	switch v {
	case domain.VarSmoke:
		return 0, 1
	case domain.VarWind:
		return 0, 30
	}
	if len(series) == 0 {
		return 0, 1
	}
	lo, hi := series[0].Value(v), series[0].Value(v)
	for _, p := range series[1:] {
		lo = min(lo, p.Value(v))
		hi = max(hi, p.Value(v))
	}
	pad := (hi - lo) / 5
	return lo - pad, hi + pad
}

// seriesColor is the line color per variable.
func seriesColor(p theme.Palette, v domain.Variable) string {
	switch v {
	case domain.VarTemp:
		return p.Primary
	case domain.VarHum:
		return p.Amber
	case domain.VarWind:
		return p.Sky
	}
	return p.Danger
}

func emergencyFooter(s tui.Styles, width int) string {
	line := s.Sub.Render("Emergencias: ") + s.Strong.Render("119 Bomberos") + s.Sub.Render(" · ") + s.Strong.Render("123")
	return s.Text.Width(width).Align(lipgloss.Center).Render(line)
}

func centered(s tui.Styles, text string, width int) string {
	return s.Text.Width(width).Align(lipgloss.Center).Render(text)
}

func errorLine(s tui.Styles, err error) string {
	if err == nil {
		return ""
	}
	return s.StatusError.Render(fmt.Sprint(err))
}
