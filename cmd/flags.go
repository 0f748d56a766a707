package cmd

import (
	"GuardianesDelFuego/internal/version"

	"github.com/spf13/pflag"
)

// InitFlags defines the pflags used for argument validation and help.
// The flag set is rebuilt on every call so Parse can run more than once.
func InitFlags() {
	pflag.CommandLine = pflag.NewFlagSet(version.CommandName, pflag.ContinueOnError)

	// Modifiers
	pflag.BoolP("verbose", "v", false, "Verbose output")
	pflag.BoolP("debug", "x", false, "Debug output")
	pflag.Bool("dark", false, "Start with the dark theme")
	pflag.Bool("light", false, "Start with the light theme")

	// Commands
	pflag.BoolP("help", "h", false, "Show help")
	pflag.StringP("version", "V", "", "Show version")
	pflag.StringP("check", "c", "", "Run the self-check (optionally for one role)")
	pflag.StringP("export", "e", "", "Export a variable of the demo series as CSV")
	pflag.BoolP("serve", "s", false, "Serve the app over SSH")
	pflag.Bool("config-show", false, "Show configuration")

	// Options
	pflag.String("sensor", "", "Sensor for --export")
	pflag.String("from", "", "Start date for --export")
	pflag.String("to", "", "End date for --export")
	pflag.String("address", "", "Listen address for --serve")
}
