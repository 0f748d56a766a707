package screens

import (
	"strconv"
	"strings"

	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/theme"
	"GuardianesDelFuego/internal/tui"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// sheet is the common frame of a bottom sheet: a grab handle on top and a
// Cerrar button as the last control.
type sheet struct {
	base
}

func (s *sheet) closeIndex() int { return s.focus.Count - 1 }

// handleKey cycles focus (←/→ too) and closes on Cerrar. It reports
// whether the key was consumed.
func (s *sheet) handleKey(kp tea.KeyPressMsg) (bool, tea.Cmd) {
	switch {
	case s.focus.HandleCycle(kp):
		return true, nil
	case key.Matches(kp, tui.Keys.Left):
		s.focus.Prev()
		return true, nil
	case key.Matches(kp, tui.Keys.Right):
		s.focus.Next()
		return true, nil
	case key.Matches(kp, tui.Keys.Activate) && s.focus.Is(s.closeIndex()):
		return true, tui.Send(tui.CloseOverlayMsg{})
	}
	return false, nil
}

func (s *sheet) handle(b *tui.Builder) {
	st := s.styles()
	b.Add(centered(st, st.BorderColor.Render(strings.Repeat(st.SepChar, 6)), s.ctx.Width))
}

func (s *sheet) closeButton(b *tui.Builder) {
	focused := s.focus.Is(s.closeIndex())
	b.Blank()
	b.AddFocus(s.styles().WideButton("Cerrar", tui.ButtonSecondary, focused, s.ctx.Width), focused)
}

func (s *sheet) Init() tea.Cmd { return nil }

// AlertSheet is the detail of one alert. Call and route are shown but do
// nothing.
type AlertSheet struct {
	sheet
	alert domain.AlertItem
}

// NewAlertSheet creates the sheet for the alert carried by o.
func NewAlertSheet(env tui.Env, o overlay.Overlay) *AlertSheet {
	s := &AlertSheet{sheet: sheet{base{env: env, focus: tui.FocusRing{Count: 3}}}}
	if a, ok := o.(overlay.Alert); ok {
		s.alert = a.Item
	}
	return s
}

func (s *AlertSheet) Title() string { return s.alert.Place }

// Alert is the alert being shown.
func (s *AlertSheet) Alert() domain.AlertItem { return s.alert }

func (s *AlertSheet) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		_, cmd := s.handleKey(kp)
		return s, cmd
	}
	return s, nil
}

func (s *AlertSheet) ViewString() string {
	st := s.styles()
	w := s.ctx.Width
	a := s.alert
	var b tui.Builder
	s.handle(&b)

	icon := st.Swatch(tui.GlyphFlame, a.Color)
	head := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(a.Place),
		st.Sub.Render("Nivel "+string(a.Level)+" · "+a.Time),
	)
	b.Add(lipgloss.JoinHorizontal(lipgloss.Center, icon, st.Text.Render(" "), head))
	b.Blank()
	b.Add(st.Card.Width(w).Height(5).Render(""))

	b.AddFocus(st.RenderButtonRow(w,
		tui.ButtonSpec{Text: "☎ Llamar 119", Kind: tui.ButtonDanger, Active: s.focus.Is(0)},
		tui.ButtonSpec{Text: "Ver ruta segura", Kind: tui.ButtonSecondary, Active: s.focus.Is(1)},
	), s.focus.Is(0) || s.focus.Is(1))
	b.Blank()
	b.Add(st.Sub.Width(w).Render("Información sugerida: dirección de viento, proximidad a viviendas, puntos de agua cercanos."))

	s.closeButton(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}

const (
	lessonNext = iota
	lessonClose
)

// LessonSheet walks through the lesson steps. Siguiente on the last step
// closes the sheet.
type LessonSheet struct {
	sheet
	step int
	bar  progress.Model
}

// NewLessonSheet starts on the first step.
func NewLessonSheet(env tui.Env, _ overlay.Overlay) *LessonSheet {
	return &LessonSheet{
		sheet: sheet{base{env: env, focus: tui.FocusRing{Count: 2}}},
		bar:   progress.New(progress.WithoutPercentage()),
	}
}

func (s *LessonSheet) lesson() domain.Lesson {
	if s.env.Data == nil {
		return domain.Lesson{}
	}
	return s.env.Data.Lesson
}

func (s *LessonSheet) Title() string { return s.lesson().Title }

// Step is the zero-based current step.
func (s *LessonSheet) Step() int { return s.step }

// Percent is the share of steps reached so far.
func (s *LessonSheet) Percent() float64 {
	n := len(s.lesson().Steps)
	if n == 0 {
		return 0
	}
	return float64(s.step+1) / float64(n)
}

func (s *LessonSheet) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if done, cmd := s.handleKey(kp); done {
		return s, cmd
	}
	if key.Matches(kp, tui.Keys.Activate) && s.focus.Is(lessonNext) {
		if s.step+1 < len(s.lesson().Steps) {
			s.step++
			return s, nil
		}
		return s, tui.Send(tui.CloseOverlayMsg{})
	}
	return s, nil
}

func (s *LessonSheet) ViewString() string {
	st := s.styles()
	w := s.ctx.Width
	l := s.lesson()
	var b tui.Builder
	s.handle(&b)

	b.Add(st.Title.Render(l.Title))
	b.Add(st.Sub.Render(l.Subtitle))
	b.Blank()
	for i, step := range l.Steps {
		num := strconv.Itoa(i+1) + ". "
		text := st.Text
		switch {
		case i == s.step:
			text = st.Strong
		case i > s.step:
			text = st.Sub
		}
		b.Add(lipgloss.JoinHorizontal(lipgloss.Top,
			st.Sub.Render(num),
			text.Width(max(w-lipgloss.Width(num), 1)).Render(step),
		))
	}
	b.Blank()

	s.bar.SetWidth(w)
	s.bar.FullColor = theme.Color(st.Palette.Accent)
	s.bar.EmptyColor = theme.Color(st.Palette.Muted)
	b.Add(s.bar.ViewAs(s.Percent()))
	b.Blank()

	label := "Siguiente"
	if s.step+1 >= len(l.Steps) {
		label = "Terminar"
	}
	b.AddFocus(st.WideButton(label, tui.ButtonPrimary, s.focus.Is(lessonNext), w), s.focus.Is(lessonNext))

	s.closeButton(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}

const (
	courseStart = iota
	courseChecklist
	courseClose
)

// CourseSheet is the course detail. Iniciar opens the lesson; the checklist
// is saved as a text file.
type CourseSheet struct {
	sheet
}

// NewCourseSheet creates the course sheet.
func NewCourseSheet(env tui.Env, _ overlay.Overlay) *CourseSheet {
	return &CourseSheet{sheet: sheet{base{env: env, focus: tui.FocusRing{Count: 3}}}}
}

func (s *CourseSheet) course() domain.Course {
	if s.env.Data == nil {
		return domain.Course{}
	}
	return s.env.Data.Course
}

func (s *CourseSheet) Title() string { return s.course().Title }

func (s *CourseSheet) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if done, cmd := s.handleKey(kp); done {
		return s, cmd
	}
	if !key.Matches(kp, tui.Keys.Activate) {
		return s, nil
	}
	switch s.focus.Index {
	case courseStart:
		return s, tui.Send(tui.OpenOverlayMsg{Overlay: overlay.Lesson{}})
	case courseChecklist:
		c := s.course()
		return s, s.session().Export(c.Checklist, []byte(c.ChecklistText()))
	}
	return s, nil
}

func (s *CourseSheet) ViewString() string {
	st := s.styles()
	w := s.ctx.Width
	c := s.course()
	p := st.Palette
	var b tui.Builder
	s.handle(&b)

	head := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(c.Title),
		st.Sub.Render(c.Subtitle),
	)
	b.Add(lipgloss.JoinHorizontal(lipgloss.Center, st.Swatch(tui.GlyphFlame, p.Accent), st.Text.Render(" "), head))
	b.Blank()

	video := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Swatch(tui.GlyphPlay, p.Muted),
		st.Text.Render(" "),
		lipgloss.JoinVertical(lipgloss.Left, st.Strong.Render(c.Video), st.Sub.Render(c.VideoTime)),
	)
	b.Add(st.RenderCard(video, w, false))
	b.Blank()

	b.Add(st.Strong.Render("Contenido"))
	var sections []string
	for _, sec := range c.Sections {
		lines := []string{st.Strong.Render(sec.Title)}
		for _, item := range sec.Items {
			lines = append(lines, st.Text.Width(w-4).Render("• "+item))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	b.Add(st.RenderCard(strings.Join(sections, "\n"+st.Rule(w-4)+"\n"), w, false))
	b.Blank()

	b.AddFocus(st.RenderButtonRow(w,
		tui.ButtonSpec{Text: tui.GlyphPlay + " Iniciar", Kind: tui.ButtonPrimary, Active: s.focus.Is(courseStart)},
		tui.ButtonSpec{Text: "Descargar checklist", Kind: tui.ButtonSecondary, Active: s.focus.Is(courseChecklist)},
	), s.focus.Is(courseStart) || s.focus.Is(courseChecklist))

	s.closeButton(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}
