package theme

import (
	"GuardianesDelFuego/internal/testutils"
	"fmt"
	"testing"
)

func TestTint(t *testing.T) {
	tests := []struct {
		palette  Palette
		hex      string
		alpha    float64
		expected string
	}{
		{Light, Danger, 0, "#ffffff"},
		{Light, Danger, 1, "#e53935"},
		{Dark, Primary, 0, "#0f172a"},
		{Light, "not-a-color", 0.5, "#ffffff"},
		{Light, Danger, 2, "#e53935"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := tt.palette.Tint(tt.hex, tt.alpha)
		cases = append(cases, testutils.TestCase{
			Input:    fmt.Sprintf("%s %s %.2f", tt.palette.Name, tt.hex, tt.alpha),
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestContrast(t *testing.T) {
	if got := Contrast(Accent); got != Ink {
		t.Errorf("Contrast(accent) = %s, want ink", got)
	}
	if got := Contrast(Primary); got != "#ffffff" {
		t.Errorf("Contrast(primary) = %s, want white", got)
	}
}

func TestFor(t *testing.T) {
	if For(true).Name != "dark" || For(false).Name != "light" {
		t.Error("For returned the wrong palette")
	}
}
