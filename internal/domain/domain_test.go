package domain

import "testing"

func TestParseVariable(t *testing.T) {
	for _, v := range Variables {
		got, err := ParseVariable(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariable(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseVariable("pressure"); err == nil {
		t.Error("expected error for unknown variable")
	}
}

func TestSeriesPointValue(t *testing.T) {
	p := SeriesPoint{T: "14:00", Temp: 33, Hum: 40, Wind: 18, Smoke: 0.2}
	want := map[Variable]float64{VarTemp: 33, VarHum: 40, VarWind: 18, VarSmoke: 0.2}
	for v, w := range want {
		if got := p.Value(v); got != w {
			t.Errorf("Value(%s) = %v, want %v", v, got, w)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{22: "22", 0.2: "0.2", 0.05: "0.05", 14: "14"}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestVariableColumns(t *testing.T) {
	want := map[Variable]string{VarTemp: "temperatura", VarHum: "humedad", VarWind: "viento_kmh", VarSmoke: "humo_index"}
	for v, col := range want {
		if v.Column() != col {
			t.Errorf("%s.Column() = %q, want %q", v, v.Column(), col)
		}
	}
}

func TestCourseChecklistText(t *testing.T) {
	c := Course{
		Title:    "Curso",
		Subtitle: "Sub",
		Sections: []Section{{Title: "1) Antes", Items: []string{"agua", "linterna"}}},
	}
	want := "Curso\nSub\n\n1) Antes\n[ ] agua\n[ ] linterna\n"
	if got := c.ChecklistText(); got != want {
		t.Errorf("ChecklistText() = %q, want %q", got, want)
	}
}
