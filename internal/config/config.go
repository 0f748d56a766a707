package config

import (
	"GuardianesDelFuego/internal/constants"
	"GuardianesDelFuego/internal/paths"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	UI      UIConfig      `toml:"ui"`
	DataLab DataLabConfig `toml:"datalab"`
	Paths   PathConfig    `toml:"paths"`
	Server  ServerConfig  `toml:"server"`

	// These are helper fields for runtime use, not saved to TOML
	ExportDir   string `toml:"-"`
	HostKeyPath string `toml:"-"`
}

// UIConfig holds user interface related settings.
type UIConfig struct {
	Dark           bool `toml:"dark"` // initial theme; toggling in the app is session-only
	LineCharacters bool `toml:"line_characters"`
	Shadow         bool `toml:"shadow"`
}

// DataLabConfig holds the data lab query builder settings.
type DataLabConfig struct {
	Endpoint string   `toml:"endpoint"`
	Sensors  []string `toml:"sensors"`
}

// PathConfig holds directory path settings.
type PathConfig struct {
	ExportFolder string `toml:"export_folder"`
}

// ServerConfig holds the SSH server settings.
type ServerConfig struct {
	Address string `toml:"address"`
	HostKey string `toml:"host_key"`
}

// Default returns the configuration used when no file exists yet.
func Default() AppConfig {
	conf := AppConfig{
		UI: UIConfig{
			Dark:           false,
			LineCharacters: true,
			Shadow:         true,
		},
		DataLab: DataLabConfig{
			Endpoint: constants.DefaultEndpoint,
			Sensors:  []string{"Sensor A", "Sensor B", "Sensor C"},
		},
		Paths: PathConfig{
			ExportFolder: "${XDG_DOWNLOAD_DIR}",
		},
		Server: ServerConfig{
			Address: constants.DefaultServerAddr,
			HostKey: "${XDG_DATA_HOME}/guardianes/ssh/id_ed25519",
		},
	}
	conf.expand()
	return conf
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME}  -> xdg.ConfigHome
// - ${XDG_DATA_HOME}    -> xdg.DataHome
// - ${XDG_STATE_HOME}   -> xdg.StateHome
// - ${XDG_DOWNLOAD_DIR} -> xdg.UserDirs.Download
// - ${HOME}             -> os.UserHomeDir()
// - ${USER}             -> Current username
// Any other variable is read from the environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_DOWNLOAD_DIR":
			return paths.GetDownloadDir()
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

func (c *AppConfig) expand() {
	c.ExportDir = ExpandVariables(c.Paths.ExportFolder)
	c.HostKeyPath = ExpandVariables(c.Server.HostKey)
}

// normalize restores defaults for values a hand-edited file left empty.
func (c *AppConfig) normalize() {
	def := Default()
	if c.DataLab.Endpoint == "" {
		c.DataLab.Endpoint = def.DataLab.Endpoint
	}
	if len(c.DataLab.Sensors) == 0 {
		c.DataLab.Sensors = def.DataLab.Sensors
	}
	if c.Paths.ExportFolder == "" {
		c.Paths.ExportFolder = def.Paths.ExportFolder
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.HostKey == "" {
		c.Server.HostKey = def.Server.HostKey
	}
	c.expand()
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (AppConfig, error) {
	conf := Default()
	if err := toml.Unmarshal(data, &conf); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", constants.AppConfigFileName, err)
	}
	conf.normalize()
	return conf, nil
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file is created with defaults; an invalid file yields defaults and an error.
func LoadAppConfig() (AppConfig, error) {
	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		return Parse(data)
	}
	if !os.IsNotExist(err) {
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}

	conf := Default()
	if err := SaveAppConfig(conf); err != nil {
		return conf, err
	}
	return conf, nil
}

// SaveAppConfig writes the configuration to guardianes.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Encode returns the TOML representation of conf (used by --config-show).
func Encode(conf AppConfig) (string, error) {
	data, err := toml.Marshal(conf)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
