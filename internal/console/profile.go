package console

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"
)

var (
	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile colorprofile.Profile
)

func init() {
	isTTYGlobal = term.IsTerminal(int(os.Stdout.Fd()))
	preferredProfile = detectProfile()
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return isTTYGlobal
}

// SetTTY allows forcing the TTY status (useful for testing ANSI output in non-interactive tests).
// Returns the previous value so it can be restored.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() colorprofile.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p colorprofile.Profile) {
	preferredProfile = p
}

// NewWriter wraps w so styled output is downsampled to the preferred profile.
func NewWriter(w io.Writer) io.Writer {
	cw := colorprofile.NewWriter(w, os.Environ())
	cw.Profile = preferredProfile
	return cw
}

// detectProfile determines the appropriate color profile based on environment variables.
// Priority: COLORTERM > TERM > automatic detection
func detectProfile() colorprofile.Profile {
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch colorTerm {
	case "truecolor", "24bit":
		return colorprofile.TrueColor
	case "8bit", "256color":
		return colorprofile.ANSI256
	case "4bit", "16color", "8color", "3bit":
		return colorprofile.ANSI
	case "1bit", "2color", "mono", "false", "0":
		return colorprofile.Ascii
	}

	t := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(t, "direct") {
		return colorprofile.TrueColor
	}
	if strings.Contains(t, "256color") {
		return colorprofile.ANSI256
	}
	if strings.Contains(t, "16color") {
		return colorprofile.ANSI
	}
	if t == "dumb" {
		return colorprofile.Ascii
	}

	return colorprofile.Detect(os.Stdout, os.Environ())
}
