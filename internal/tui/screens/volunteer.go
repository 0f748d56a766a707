package screens

import (
	"strings"
	"time"

	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/tui"
	"GuardianesDelFuego/internal/volunteer"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Focus order of the volunteer form. Days take one slot each.
const (
	volName = iota
	volPhone
	volArea
	volDayFirst
)

var (
	volHours  = volDayFirst + len(volunteer.Days)
	volNote   = volHours + 1
	volSubmit = volNote + 1
	volClose  = volSubmit + 1
)

// VolunteerSheet is the volunteer sign-up form. A valid submit shows a
// confirmation and closes the sheet after volunteer.SubmitDelay.
type VolunteerSheet struct {
	sheet
	form      volunteer.Form
	name      textinput.Model
	phone     textinput.Model
	note      textarea.Model
	err       error
	submitted bool
}

// NewVolunteerSheet creates the form with its default values.
func NewVolunteerSheet(env tui.Env, _ overlay.Overlay) *VolunteerSheet {
	s := &VolunteerSheet{
		sheet: sheet{base{env: env, focus: tui.FocusRing{Count: volClose + 1}}},
		form:  volunteer.NewForm(),
		name:  newInput("Nombre"),
		phone: newInput("Teléfono"),
		note:  newArea("Comentarios (opcional)"),
	}
	s.name.SetValue(s.form.Name)
	s.phone.CharLimit = 20
	return s
}

func (s *VolunteerSheet) Init() tea.Cmd { return s.syncFocus() }

func (s *VolunteerSheet) Title() string { return "Voluntariado" }

// Err is the validation error of the last submit.
func (s *VolunteerSheet) Err() error { return s.err }

// Submitted reports whether a valid form was sent.
func (s *VolunteerSheet) Submitted() bool { return s.submitted }

// Form returns the current values, text fields included.
func (s *VolunteerSheet) Form() volunteer.Form {
	f := s.form
	f.Name = s.name.Value()
	f.Phone = s.phone.Value()
	f.Note = s.note.Value()
	return f
}

func (s *VolunteerSheet) SetContext(ctx tui.Context) {
	s.base.SetContext(ctx)
	styleInput(&s.name, ctx.Styles, s.cardInner())
	styleInput(&s.phone, ctx.Styles, s.cardInner())
	styleArea(&s.note, ctx.Styles, s.cardInner())
}

func (s *VolunteerSheet) inField() bool {
	i := s.focus.Index
	return i == volName || i == volPhone || i == volNote
}

func (s *VolunteerSheet) syncFocus() tea.Cmd {
	s.name.Blur()
	s.phone.Blur()
	s.note.Blur()
	switch s.focus.Index {
	case volName:
		return s.name.Focus()
	case volPhone:
		return s.phone.Focus()
	case volNote:
		return s.note.Focus()
	}
	return nil
}

func (s *VolunteerSheet) submit() tea.Cmd {
	if s.submitted {
		return nil
	}
	f := s.Form()
	if err := f.Validate(); err != nil {
		s.err = err
		return nil
	}
	s.err = nil
	s.form = f
	s.submitted = true
	logger.Info(s.env.Context(), "Volunteer offer from %q: area=%s days=%s hours=%s",
		f.Name, f.Area, strings.Join(f.SelectedDays(), ","), f.Hours)
	return tea.Tick(volunteer.SubmitDelay, func(time.Time) tea.Msg {
		return tui.VolunteerSubmittedMsg{Form: s}
	})
}

func (s *VolunteerSheet) Update(msg tea.Msg) (tui.ScreenModel, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	i := s.focus.Index
	inField := s.inField()

	if s.cycle(kp, inField) {
		return s, s.syncFocus()
	}

	switch {
	case i == volArea && key.Matches(kp, tui.Keys.Left):
		s.form.Area = step(volunteer.Areas, s.form.Area, -1)
		return s, nil
	case i == volArea && (key.Matches(kp, tui.Keys.Right) || key.Matches(kp, tui.Keys.Activate)):
		s.form.Area = step(volunteer.Areas, s.form.Area, 1)
		return s, nil
	case i == volHours && key.Matches(kp, tui.Keys.Left):
		s.form.Hours = step(volunteer.TimeSlots, s.form.Hours, -1)
		return s, nil
	case i == volHours && (key.Matches(kp, tui.Keys.Right) || key.Matches(kp, tui.Keys.Activate)):
		s.form.Hours = step(volunteer.TimeSlots, s.form.Hours, 1)
		return s, nil
	case i >= volDayFirst && i < volHours:
		switch {
		case key.Matches(kp, tui.Keys.Left):
			s.focus.Prev()
		case key.Matches(kp, tui.Keys.Right):
			s.focus.Next()
		case key.Matches(kp, tui.Keys.Activate):
			s.form.ToggleDay(volunteer.Days[i-volDayFirst])
			s.err = nil
		}
		return s, nil
	case i == volSubmit && key.Matches(kp, tui.Keys.Activate):
		return s, s.submit()
	case i == volClose && key.Matches(kp, tui.Keys.Activate):
		return s, tui.Send(tui.CloseOverlayMsg{})
	case (i == volName || i == volPhone) && kp.String() == "enter":
		s.focus.Next()
		return s, s.syncFocus()
	}

	var cmd tea.Cmd
	switch i {
	case volName:
		s.name, cmd = s.name.Update(kp)
	case volPhone:
		s.phone, cmd = s.phone.Update(kp)
	case volNote:
		s.note, cmd = s.note.Update(kp)
	}
	return s, cmd
}

func (s *VolunteerSheet) ViewString() string {
	st := s.styles()
	w := s.ctx.Width
	var b tui.Builder
	s.handle(&b)

	b.Add(st.Title.Render("Voluntariado"))
	b.Add(st.Sub.Width(w).Render("Súmate a la red de apoyo para prevención y respuesta."))
	b.Blank()

	b.Add(st.Sub.Render("Nombre"))
	b.AddFocus(fieldBox(st, s.name.View(), w, s.focus.Is(volName)), s.focus.Is(volName))
	b.Add(st.Sub.Render("Teléfono"))
	b.AddFocus(fieldBox(st, s.phone.View(), w, s.focus.Is(volPhone)), s.focus.Is(volPhone))

	b.Add(st.Sub.Render("Área de apoyo"))
	b.AddFocus(selector(st, s.form.Area.Label(), w, s.focus.Is(volArea)), s.focus.Is(volArea))

	b.Add(st.Sub.Render("Días disponibles"))
	var days []string
	dayFocused := false
	for d, day := range volunteer.Days {
		focused := s.focus.Is(volDayFirst + d)
		dayFocused = dayFocused || focused
		days = append(days, st.Pill(day, s.form.Days[day], focused))
	}
	b.AddFocus(lipgloss.NewStyle().Width(w).Render(strings.Join(days, " ")), dayFocused)

	b.Add(st.Sub.Render("Horario preferido"))
	b.AddFocus(selector(st, s.form.Hours.Label(), w, s.focus.Is(volHours)), s.focus.Is(volHours))

	b.AddFocus(fieldBox(st, s.note.View(), w, s.focus.Is(volNote)), s.focus.Is(volNote))

	if s.err != nil {
		b.Add(errorLine(st, s.err))
	}
	b.Blank()
	if s.submitted {
		b.AddFocus(centered(st, st.StatusSuccess.Render(volunteer.SubmittedNotice), w), s.focus.Is(volSubmit))
	} else {
		b.AddFocus(st.WideButton("Ofrecerme como voluntaria/o", tui.ButtonPrimary, s.focus.Is(volSubmit), w), s.focus.Is(volSubmit))
	}
	b.Add(st.Sub.Width(w).Render("Tus datos se usan solo para coordinar activaciones."))

	s.closeButton(&b)
	s.focusLine = b.FocusLine()
	return b.String()
}
