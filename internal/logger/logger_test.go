package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func withLogger(t *testing.T, l *slog.Logger) {
	t.Helper()
	old := slog.Default()
	slog.SetDefault(l)
	t.Cleanup(func() { slog.SetDefault(old) })
}

func TestFormattedMessage(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewWriterLogger(&buf))

	Info(context.Background(), "tab changed to %s", "alerts")

	out := buf.String()
	if !strings.Contains(out, "tab changed to alerts") {
		t.Errorf("message not formatted: %q", out)
	}
	if !strings.Contains(out, "[INFO ]") {
		t.Errorf("level label missing: %q", out)
	}
}

func TestMultiLineSplit(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewWriterLogger(&buf))

	Warn(context.Background(), []string{"first", "second"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d: %q", len(lines), buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewWriterLogger(&buf))

	SetLevel(LevelWarn)
	Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record leaked at default file level: %q", buf.String())
	}

	SetLevel(LevelDebug)
	defer SetLevel(LevelWarn)
	Debug(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug record missing after SetLevel(Debug)")
	}
}

func TestFatalPanicsWithFatalError(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewWriterLogger(&buf))

	defer func() {
		r := recover()
		if _, ok := r.(FatalError); !ok {
			t.Fatalf("expected FatalError panic, got %v", r)
		}
		if !strings.Contains(buf.String(), "boom 7") {
			t.Errorf("fatal message missing: %q", buf.String())
		}
	}()
	FatalNoTrace(context.Background(), "boom %d", 7)
}
