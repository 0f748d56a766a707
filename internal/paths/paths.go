package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"GuardianesDelFuego/internal/constants"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// DataHomeOverride allows overriding the data home for tests.
	DataHomeOverride string
)

// GetConfigDir returns the directory holding guardianes.toml.
func GetConfigDir() string {
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, constants.AppDirName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", constants.AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, constants.AppDirName)
}

// GetConfigFilePath returns the absolute path to the guardianes.toml file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetStateDir returns the directory used for logs.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, constants.AppDirName)
	}
	return filepath.Join(xdg.StateHome, constants.AppDirName)
}

// GetLogFilePath returns the absolute path of the application log.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// GetDataDir returns the directory used for persistent server data (host keys).
func GetDataDir() string {
	if DataHomeOverride != "" {
		return filepath.Join(DataHomeOverride, constants.AppDirName)
	}
	return filepath.Join(xdg.DataHome, constants.AppDirName)
}

// GetHostKeyPath returns the default SSH host key location.
func GetHostKeyPath() string {
	return filepath.Join(GetDataDir(), constants.SSHDirName, constants.HostKeyFileName)
}

// GetDownloadDir returns the user's download directory, falling back to the
// home directory when no XDG user dir is configured.
func GetDownloadDir() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
