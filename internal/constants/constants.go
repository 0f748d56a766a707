package constants

import "time"

// Folder Names
const (
	AppDirName = "guardianes"
	SSHDirName = "ssh"
)

// File Names
const (
	AppConfigFileName = "guardianes.toml"
	LogFileName       = "guardianes.log"
	HostKeyFileName   = "id_ed25519"
	ExportLockName    = ".guardianes-export.lock"
)

// Defaults
const (
	DefaultEndpoint    = "https://api.guardabosques.local/sensors?sensor={sensor}&var={var}&from={from}&to={to}"
	DefaultServerAddr  = "localhost:23234"
	DateLayout         = "2006-01-02"
	VolunteerDelay     = 300 * time.Millisecond
	MinPasswordLength  = 4
	TabsPerRole        = 5
	MinSeriesPoints    = 3
	EmergencyNumber    = "119"
	SecondaryEmergency = "123"
)
