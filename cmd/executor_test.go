package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/paths"
	"GuardianesDelFuego/internal/tui"
)

// setup points config at a temp dir, exports into exportDir and captures output.
func setup(t *testing.T) (out *bytes.Buffer, exportDir string) {
	t.Helper()
	tmp := t.TempDir()
	paths.ConfigHomeOverride = tmp
	paths.DataHomeOverride = tmp
	exportDir = filepath.Join(tmp, "exports")

	conf := config.Default()
	conf.Paths.ExportFolder = exportDir
	conf.Server.HostKey = filepath.Join(tmp, "ssh", "id_ed25519")
	if err := config.SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig: %v", err)
	}

	out = &bytes.Buffer{}
	output = out
	now = func() time.Time { return time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		paths.ConfigHomeOverride = ""
		paths.DataHomeOverride = ""
		output = os.Stdout
		now = time.Now
		startTUI = tui.Start
	})
	return out, exportDir
}

func mustParse(t *testing.T, args ...string) []CommandGroup {
	t.Helper()
	groups, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return groups
}

func TestExecuteExport(t *testing.T) {
	out, dir := setup(t)

	code := Execute(context.Background(), mustParse(t, "-e", "smoke", "--sensor", "Sensor B", "--from", "2025-08-01"))
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := filepath.Join(dir, "datos_Sensor B_smoke_2025-08-01_a_2025-08-14.csv")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("printed path = %q, want %q", got, want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "hora,humo_index\n") {
		t.Errorf("CSV starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestExecuteExportRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown sensor", []string{"-e", "temp", "--sensor", "Sensor Z"}},
		{"bad date", []string{"-e", "temp", "--from", "14/08/2025"}},
		{"dates out of order", []string{"-e", "temp", "--from", "2025-08-20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dir := setup(t)
			if code := Execute(context.Background(), mustParse(t, tt.args...)); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if entries, _ := os.ReadDir(dir); len(entries) > 0 {
				t.Errorf("export folder should be empty, has %d entries", len(entries))
			}
		})
	}
}

func TestExecuteCheck(t *testing.T) {
	out, _ := setup(t)

	if code := Execute(context.Background(), mustParse(t, "-c")); code != 0 {
		t.Fatalf("exit code = %d\n%s", code, out.String())
	}
	s := out.String()
	for _, want := range []string{"ciudadano", "academia", "autoridad", "PASS"} {
		if !strings.Contains(s, want) {
			t.Errorf("check table missing %q", want)
		}
	}
	if strings.Contains(s, "FAIL") {
		t.Errorf("check table has failures:\n%s", s)
	}

	out.Reset()
	Execute(context.Background(), mustParse(t, "-c", "academia"))
	if strings.Contains(out.String(), "ciudadano") {
		t.Error("role argument should limit the table to one role")
	}
}

func TestExecuteStartsTUI(t *testing.T) {
	tests := []struct {
		args []string
		dark bool
	}{
		{nil, false},
		{[]string{"--dark"}, true},
		{[]string{"--dark", "--light"}, false},
	}
	for _, tt := range tests {
		setup(t)
		var got *tui.Options
		startTUI = func(_ context.Context, _ config.AppConfig, opts tui.Options) error {
			got = &opts
			return nil
		}
		if code := Execute(context.Background(), mustParse(t, tt.args...)); code != 0 {
			t.Errorf("%v: exit code = %d", tt.args, code)
		}
		if got == nil {
			t.Errorf("%v: TUI not started", tt.args)
			continue
		}
		if got.Dark != tt.dark {
			t.Errorf("%v: Dark = %v, want %v", tt.args, got.Dark, tt.dark)
		}
	}
}

func TestExecuteCommandSkipsTUI(t *testing.T) {
	setup(t)
	started := false
	startTUI = func(context.Context, config.AppConfig, tui.Options) error {
		started = true
		return nil
	}
	Execute(context.Background(), mustParse(t, "-V"))
	if started {
		t.Error("a command should not start the TUI")
	}
}

func TestExecuteTUIError(t *testing.T) {
	setup(t)
	startTUI = func(context.Context, config.AppConfig, tui.Options) error {
		return errors.New("no terminal")
	}
	if code := Execute(context.Background(), nil); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestExecuteVersionAndConfigShow(t *testing.T) {
	out, dir := setup(t)
	if code := Execute(context.Background(), mustParse(t, "-V", "--config-show")); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	s := out.String()
	for _, want := range []string{"Guardianes del fuego [", dir, "[datalab]", "Sensor A"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestExecuteServeStopsOnCancel(t *testing.T) {
	out, _ := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := Execute(ctx, mustParse(t, "-s", "--address", "127.0.0.1:0"))
	if code != 0 {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "ssh://127.0.0.1:0") {
		t.Errorf("output = %q", out.String())
	}
}
