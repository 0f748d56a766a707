package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"GuardianesDelFuego/internal/version"
)

// output is where commands print their results.
var output io.Writer = os.Stdout

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Fprint(output, GetUsage(target))
}

// usageEntry documents one flag or command.
type usageEntry struct {
	opts  []string
	usage string
	lines []string
}

var flagUsage = []usageEntry{
	{[]string{"--dark"}, "--dark", []string{"Start with the dark theme."}},
	{[]string{"--light"}, "--light", []string{"Start with the light theme (the default unless the config says otherwise)."}},
	{[]string{"-v", "--verbose"}, "-v --verbose", []string{"Verbose"}},
	{[]string{"-x", "--debug"}, "-x --debug", []string{"Debug"}},
}

var commandUsage = []usageEntry{
	{[]string{"-c", "--check"}, "-c --check [role]", []string{
		"Run the self-check of the shell and demo data for every role,",
		"or only for the given role (ciudadano, academia, autoridad).",
	}},
	{[]string{"--config-show"}, "--config-show", []string{"Show the current configuration and the paths in use."}},
	{[]string{"-e", "--export"}, "-e --export <var> [--sensor <name>] [--from <date>] [--to <date>]", []string{
		"Write the demo series of <var> (temp, hum, wind, smoke) as CSV into the",
		"export folder. Dates use AAAA-MM-DD and default to today.",
	}},
	{[]string{"-h", "--help"}, "-h --help", []string{"Show this usage information."}},
	{[]string{"-h", "--help"}, "-h --help <option>", []string{"Show the usage of the specified option."}},
	{[]string{"-s", "--serve"}, "-s --serve [--address <host:port>]", []string{
		"Serve the app over SSH. Each connection gets its own session.",
	}},
	{[]string{"-V", "--version"}, "-V --version", []string{"Show version information."}},
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appCmd := version.CommandName
	showAll := target == ""

	if showAll {
		printStr(fmt.Sprintf("Usage: %s [<Flags>] [<Command>] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version))
		printStr("Wildfire awareness mockup that runs as a phone-sized terminal app.")
		printStr("For regular usage you can run without providing any options.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	found := false
	write := func(entries []usageEntry) {
		for _, e := range entries {
			matched := showAll
			for _, o := range e.opts {
				if o == target {
					matched = true
				}
			}
			if !matched {
				continue
			}
			found = true
			printStr(e.usage)
			for _, l := range e.lines {
				printStr("\t" + l)
			}
		}
	}

	write(flagUsage)
	if showAll {
		printStr("")
		printStr("Commands:")
		printStr("")
	}
	write(commandUsage)

	if !found {
		printStr(fmt.Sprintf("Unknown option '%s'.", target))
	}
	return sb.String()
}
