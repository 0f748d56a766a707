package cmd

import (
	"fmt"
	"slices"
	"strings"

	"GuardianesDelFuego/internal/domain"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/version"

	"github.com/spf13/pflag"
)

// ParseError wraps argument parsing errors with the failing command line
// and a caret under the offending argument.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--export")
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{version.CommandName}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		cmdLineParts = append(cmdLineParts, e.Args[i])
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// Indent + ' + command name + space + previous args
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "^"

	// Message might contain %c (command) or %o (option)
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", "'"+e.FailingCommand+"'",
		"%o", "'"+failingOpt+"'",
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '%s --help' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments.
// Options (--sensor, --address, ...) are kept in Options, not Args.
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
	Options map[string]string
}

// Option returns the value of a long option given to the command, or "".
func (cg CommandGroup) Option(name string) string {
	return cg.Options[name]
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	s = append(s, cg.CommandSlice()...)
	return s
}

// CommandSlice returns the command, its arguments and its options as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	for _, name := range sortedKeys(cg.Options) {
		s = append(s, name, cg.Options[name])
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Flatten converts a slice of CommandGroups into a single slice of strings
func Flatten(groups []CommandGroup) []string {
	var s []string
	for _, g := range groups {
		s = append(s, g.FullSlice()...)
	}
	return s
}

var modifiers = map[string]bool{
	"-v": true, "--verbose": true,
	"-x": true, "--debug": true,
	"--dark": true, "--light": true,
}

// commandOptions lists the long options each command accepts after it.
var commandOptions = map[string][]string{
	"-e": {"--sensor", "--from", "--to"}, "--export": {"--sensor", "--from", "--to"},
	"-s": {"--address"}, "--serve": {"--address"},
}

// isOption reports whether arg names any command option.
func isOption(name string) bool {
	for _, opts := range commandOptions {
		if slices.Contains(opts, name) {
			return true
		}
	}
	return false
}

// Parse parses the raw command line arguments into groups of command operations.
// Modifiers attach to the command that follows them.
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	// Expand combined short flags (e.g. -vc -> -v -c)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			i++
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		cmdName := strings.TrimLeft(name, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(name, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}
		if isOption(name) {
			return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: lastCommand,
				Message: "Option %o must follow the command it applies to."}
		}
		if hasValue {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++

		switch cmd {
		// Commands that require exactly ONE argument
		case "-e", "--export":
			if i >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i], "-") {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd, Message: fmt.Sprintf("Command %s requires an argument.", cmd)}
			}
			if _, err := domain.ParseVariable(expandedArgs[i]); err != nil {
				return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: cmd, Message: "Invalid variable %o"}
			}
			currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
			i++

		// Commands that accept an OPTIONAL argument
		case "-c", "--check":
			if i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				if _, err := nav.ParseRole(expandedArgs[i]); err != nil {
					return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: cmd, Message: "Invalid role %o"}
				}
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		// Help takes the command to describe
		case "-h", "--help":
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		}

		// Consume the options allowed for this command
		allowed := commandOptions[cmd]
		for i < len(expandedArgs) {
			name, value, hasValue := strings.Cut(expandedArgs[i], "=")
			if !slices.Contains(allowed, name) {
				break
			}
			if !hasValue {
				if i+1 >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i+1], "-") {
					return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: cmd, Message: "Option %o requires a value."}
				}
				value = expandedArgs[i+1]
				i++
			}
			if currentGroup.Options == nil {
				currentGroup.Options = map[string]string{}
			}
			currentGroup.Options[name] = value
			i++
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers with no command start the app
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
