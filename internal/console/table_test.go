package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Check", "Result"}, []string{"tabs", "PASS", "alerts"}, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "+--------+--------+" {
		t.Errorf("unexpected top border %q", lines[0])
	}
	if lines[2] != "+--------+--------+" {
		t.Errorf("unexpected header separator %q", lines[2])
	}
	if lines[4] != "| alerts |        |" {
		t.Errorf("incomplete row not padded: %q", lines[4])
	}
	if lines[5] != "+--------+--------+" {
		t.Errorf("unexpected bottom border %q", lines[5])
	}
}

func TestPrintTableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, []string{"x"}, true)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
