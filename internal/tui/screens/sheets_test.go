package screens

import (
	"strings"
	"testing"

	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/testutils"
	"GuardianesDelFuego/internal/volunteer"

	tea "charm.land/bubbletea/v2"
)

func TestVolunteerValidation(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		day   bool
		want  error
	}{
		{"", "3001234567", true, volunteer.ErrNameRequired},
		{"   ", "3001234567", true, volunteer.ErrNameRequired},
		{"Ana", "12", true, volunteer.ErrInvalidPhone},
		{"Ana", "300 123 4567", false, volunteer.ErrNoDaySelected},
		{"Ana", "+57 300-123-4567", true, nil},
	}

	var results []testutils.TestCase
	for _, c := range cases {
		s := NewVolunteerSheet(testEnv(), overlay.Volunteer{})
		s.SetContext(testContext(44))
		s.name.SetValue(c.name)
		s.phone.SetValue(c.phone)
		if c.day {
			s.focus.Index = volDayFirst + 2
			s.Update(keyEnter)
		}
		s.focus.Index = volSubmit
		_, cmd := s.Update(keyEnter)

		got := "ok"
		if s.Err() != nil {
			got = s.Err().Error()
		}
		want := "ok"
		if c.want != nil {
			want = c.want.Error()
		}
		pass := got == want && (cmd != nil) == (c.want == nil) && s.Submitted() == (c.want == nil)
		results = append(results, testutils.TestCase{
			Input:    c.name + "|" + c.phone,
			Expected: want,
			Actual:   got,
			Pass:     pass,
		})
	}
	testutils.PrintTestTable(t, results)
}

func TestVolunteerSelectors(t *testing.T) {
	s := NewVolunteerSheet(testEnv(), overlay.Volunteer{})
	s.SetContext(testContext(44))

	s.focus.Index = volArea
	s.Update(keyRight)
	if s.Form().Area != volunteer.Areas[1] {
		t.Errorf("area = %s, want %s", s.Form().Area, volunteer.Areas[1])
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Form().Area != volunteer.Areas[len(volunteer.Areas)-1] {
		t.Errorf("area should wrap, got %s", s.Form().Area)
	}

	s.focus.Index = volHours
	s.Update(keySpace)
	if s.Form().Hours != volunteer.TimeSlots[0] {
		t.Errorf("hours = %s, want %s", s.Form().Hours, volunteer.TimeSlots[0])
	}

	s.focus.Index = volDayFirst
	s.Update(keySpace)
	s.Update(keyRight)
	s.Update(keySpace)
	s.Update(keySpace)
	if got := strings.Join(s.Form().SelectedDays(), ","); got != volunteer.Days[0] {
		t.Errorf("days = %q, want %q", got, volunteer.Days[0])
	}
}

func TestVolunteerSubmitOnce(t *testing.T) {
	s := NewVolunteerSheet(testEnv(), overlay.Volunteer{})
	s.SetContext(testContext(44))
	s.phone.SetValue("3001234567")
	s.form.ToggleDay("Vie")
	s.focus.Index = volSubmit
	if _, cmd := s.Update(keyEnter); cmd == nil {
		t.Fatal("first submit returned no command")
	}
	if _, cmd := s.Update(keyEnter); cmd != nil {
		t.Error("second submit scheduled another close")
	}
	if !strings.Contains(s.ViewString(), volunteer.SubmittedNotice) {
		t.Error("view does not confirm the submit")
	}
}

func TestLessonSheetProgress(t *testing.T) {
	env := testEnv()
	s := NewLessonSheet(env, overlay.Lesson{})
	s.SetContext(testContext(44))
	n := len(env.Data.Lesson.Steps)

	var results []testutils.TestCase
	for i := range n {
		want := float64(i+1) / float64(n)
		results = append(results, testutils.TestCase{
			Input:    env.Data.Lesson.Steps[i],
			Expected: "step " + string(rune('0'+i)),
			Actual:   "step " + string(rune('0'+s.Step())),
			Pass:     s.Step() == i && s.Percent() == want,
		})
		if !strings.Contains(s.ViewString(), "Siguiente") && i < n-1 {
			t.Errorf("step %d: missing Siguiente", i)
		}
		s.Update(keyEnter)
	}
	testutils.PrintTestTable(t, results)
}

func TestAlertSheetView(t *testing.T) {
	env := testEnv()
	a := env.Data.Alerts[0]
	s := NewAlertSheet(env, overlay.Alert{Item: a})
	s.SetContext(testContext(44))
	view := s.ViewString()
	for _, want := range []string{a.Place, "Nivel " + string(a.Level), "Llamar 119", "Ver ruta segura", "Cerrar"} {
		if !strings.Contains(view, want) {
			t.Errorf("alert view missing %q", want)
		}
	}

	// Call and route do nothing.
	for range 2 {
		if _, cmd := s.Update(keyEnter); cmd != nil {
			t.Errorf("control %d returned a command", s.focus.Index)
		}
		s.Update(keyTab)
	}
}

func TestDataLabInvalidDates(t *testing.T) {
	cases := []struct {
		from, to string
		valid    bool
	}{
		{"2025-08-01", "2025-08-14", true},
		{"2025-08-14", "2025-08-14", true},
		{"2025-08-15", "2025-08-14", false},
		{"2025-13-01", "2025-08-14", false},
		{"ayer", "2025-08-14", false},
	}
	var results []testutils.TestCase
	for _, c := range cases {
		s := NewDataLabScreen(testEnv())
		s.SetContext(testContext(46))
		s.from.SetValue(c.from)
		s.to.SetValue(c.to)
		s.query.From, s.query.To = c.from, c.to

		s.focus.Index = labCopy
		_, copyCmd := s.Update(keyEnter)
		s.focus.Index = labDownload
		_, dlCmd := s.Update(keyEnter)

		enabled := copyCmd != nil && dlCmd != nil
		disabled := copyCmd == nil && dlCmd == nil
		view := s.ViewString()
		pass := (c.valid && enabled) || (!c.valid && disabled && strings.Contains(view, "⚠"))
		results = append(results, testutils.TestCase{
			Input:    c.from + ".." + c.to,
			Expected: map[bool]string{true: "enabled", false: "disabled"}[c.valid],
			Actual:   map[bool]string{true: "enabled", false: "disabled"}[enabled],
			Pass:     pass,
		})
	}
	testutils.PrintTestTable(t, results)
}

func TestDataLabTypingDates(t *testing.T) {
	s := NewDataLabScreen(testEnv())
	s.SetContext(testContext(46))
	s.Update(keyTab)
	s.Update(keyTab)
	if !s.focus.Is(labFrom) {
		t.Fatalf("focus = %d, want the from field", s.focus.Index)
	}
	for range 2 {
		s.Update(keyBack)
	}
	for _, r := range "01" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if got := s.Query().From; got != "2025-08-01" {
		t.Errorf("From = %q, want 2025-08-01", got)
	}
	// Arrows edit the field instead of changing the sensor.
	s.Update(keyRight)
	if s.Query().Sensor != "Sensor A" {
		t.Errorf("sensor = %q", s.Query().Sensor)
	}
}

func TestReportScreenToggles(t *testing.T) {
	s := NewReportScreen(testEnv())
	s.SetContext(testContext(46))
	if !s.Anonymous() {
		t.Error("reports start anonymous")
	}
	s.focus.Index = reportLocate
	s.Update(keyEnter)
	if !s.Located() {
		t.Error("locate did not set the location")
	}
	s.focus.Index = reportAnonymous
	s.Update(keySpace)
	if s.Anonymous() {
		t.Error("anonymous toggle did not flip")
	}
	s.focus.Index = reportSend
	if _, cmd := s.Update(keyEnter); cmd == nil {
		t.Error("send returned no notice")
	}
}
