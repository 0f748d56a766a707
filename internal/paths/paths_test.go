package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestOverrides(t *testing.T) {
	tmp := t.TempDir()
	ConfigHomeOverride = tmp
	StateHomeOverride = tmp
	DataHomeOverride = tmp
	defer func() {
		ConfigHomeOverride = ""
		StateHomeOverride = ""
		DataHomeOverride = ""
	}()

	if got := GetConfigFilePath(); got != filepath.Join(tmp, "guardianes", "guardianes.toml") {
		t.Errorf("GetConfigFilePath() = %q", got)
	}
	if got := GetLogFilePath(); !strings.HasPrefix(got, tmp) {
		t.Errorf("GetLogFilePath() = %q, want prefix %q", got, tmp)
	}
	if got := GetHostKeyPath(); got != filepath.Join(tmp, "guardianes", "ssh", "id_ed25519") {
		t.Errorf("GetHostKeyPath() = %q", got)
	}
}
