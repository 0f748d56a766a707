package demo

import (
	"errors"
	"testing"

	"GuardianesDelFuego/internal/domain"
)

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(ds.Alerts) == 0 {
		t.Error("alerts should not be empty")
	}
	if len(ds.Series) < 3 {
		t.Errorf("series has %d points, want at least 3", len(ds.Series))
	}
	if len(ds.Dispatch) != 3 {
		t.Errorf("dispatch has %d items, want 3", len(ds.Dispatch))
	}
	if got := ds.Series[3]; got.T != "14:00" || got.Smoke != 0.2 {
		t.Errorf("series[3] = %+v", got)
	}
	if len(ds.Lesson.Steps) != 3 {
		t.Errorf("lesson has %d steps, want 3", len(ds.Lesson.Steps))
	}
	if len(ds.Course.Sections) != 3 {
		t.Errorf("course has %d sections, want 3", len(ds.Course.Sections))
	}
	if ds.Tiles[0].Opens != domain.TileCourse || ds.Tiles[1].Opens != domain.TileLesson {
		t.Errorf("unexpected tile actions: %+v", ds.Tiles)
	}
}

func TestAlertByID(t *testing.T) {
	ds := Default()
	a, ok := ds.AlertByID(2)
	if !ok || a.Place != "Altos de Menga" || a.Level != domain.LevelMedium {
		t.Errorf("AlertByID(2) = %+v, %v", a, ok)
	}
	if _, ok := ds.AlertByID(99); ok {
		t.Error("AlertByID(99) should not be found")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "no alerts",
			doc:  "sensors: [A]\nseries: [{t: a}, {t: b}, {t: c}]\n",
			want: ErrNoAlerts,
		},
		{
			name: "short series",
			doc:  "sensors: [A]\nalerts: [{id: 1, level: Alto}]\nseries: [{t: a}]\n",
			want: ErrShortSeries,
		},
		{
			name: "no sensors",
			doc:  "alerts: [{id: 1, level: Alto}]\nseries: [{t: a}, {t: b}, {t: c}]\n",
			want: ErrNoSensors,
		},
		{
			name: "bad level",
			doc:  "sensors: [A]\nalerts: [{id: 1, level: Extremo}]\nseries: [{t: a}, {t: b}, {t: c}]\n",
			want: ErrUnknownLevel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("alerts: [")); err == nil {
		t.Error("expected a parse error")
	}
}
