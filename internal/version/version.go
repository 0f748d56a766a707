package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "Guardianes del fuego"

// CommandName is the name of the executable command (e.g., "guardianes").
// It is initialized dynamically from the executable filename.
var CommandName = "guardianes"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X GuardianesDelFuego/internal/version.Version=v1.YYYYMMDD.N"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	CommandName = commandNameFrom(os.Args[0])
}

// commandNameFrom derives the command name from the executable path.
// "go run" and test binaries fall back to the default name.
func commandNameFrom(exePath string) string {
	baseName := filepath.Base(exePath)
	if strings.HasSuffix(baseName, ".test") || strings.HasSuffix(baseName, ".test.exe") {
		return "guardianes"
	}
	name := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if strings.EqualFold(name, "main") || name == "" || name == "." {
		return "guardianes"
	}
	return name
}
