package volunteer

import (
	"errors"
	"testing"
)

func form(name, phone string, days ...string) Form {
	f := NewForm()
	f.Name = name
	f.Phone = phone
	for _, d := range days {
		f.ToggleDay(d)
	}
	return f
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
	}{
		{"missing name", form("", "3001234567", "Lun"), ErrNameRequired},
		{"blank name", form("   ", "3001234567", "Lun"), ErrNameRequired},
		{"short phone", form("Ana", "123", "Lun"), ErrInvalidPhone},
		{"letters in phone", form("Ana", "300-abc-4567", "Lun"), ErrInvalidPhone},
		{"no days", form("Ana", "3001234567"), ErrNoDaySelected},
		{"accepted", form("Ana", "3001234567", "Lun"), nil},
		{"formatted phone", form("Ana", "+57 300 000-0000", "Sáb", "Dom"), nil},
		{"no-break spaces in phone", form("Ana", "+57\u00a0300\u00a0000\u00a00000", "Lun"), nil},
		{"narrow no-break space in phone", form("Ana", "300\u202f000\u202f0000", "Lun"), nil},
		{"name checked first", form("", "1", ""), ErrNameRequired},
		{"phone before days", form("Ana", ""), ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.form.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestToggleDay(t *testing.T) {
	f := NewForm()
	f.ToggleDay("Mié")
	f.ToggleDay("Lun")
	if got := f.SelectedDays(); len(got) != 2 || got[0] != "Lun" || got[1] != "Mié" {
		t.Errorf("SelectedDays() = %v", got)
	}
	f.ToggleDay("Lun")
	f.ToggleDay("Mié")
	if len(f.SelectedDays()) != 0 {
		t.Errorf("toggling twice should deselect, got %v", f.SelectedDays())
	}
	if err := f.Validate(); err == nil {
		t.Error("expected validation error with no phone and no days")
	}
}

func TestNewFormDefaults(t *testing.T) {
	f := NewForm()
	if f.Name != "Valentina" || f.Area != AreaBrigade || f.Hours != SlotAny {
		t.Errorf("NewForm() = %+v", f)
	}
}

func TestLabels(t *testing.T) {
	if AreaFirstAid.Label() != "Primeros auxilios" || SlotMorning.Label() != "Mañana (6–12)" {
		t.Error("unexpected labels")
	}
}
