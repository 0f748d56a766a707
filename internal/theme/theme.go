package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Brand colors shared by both palettes
const (
	Accent  = "#C5F65B"
	Primary = "#2f7a49"
	Amber   = "#FFB300"
	Danger  = "#E53935"
	Ink     = "#0F172A"
	Sky     = "#0284c7"
)

// Palette holds every color a screen needs for one visual mode.
type Palette struct {
	Name       string
	Dark       bool
	Background string
	Surface    string
	Text       string
	Subtext    string
	Border     string
	Muted      string // unselected nav icon background
	Accent     string
	Primary    string
	Amber      string
	Danger     string
	Ink        string
	Sky        string
}

// Light is the default palette.
var Light = Palette{
	Name:       "light",
	Background: "#f8fafc",
	Surface:    "#ffffff",
	Text:       Ink,
	Subtext:    "#64748b",
	Border:     "#e2e8f0",
	Muted:      "#f1f5f9",
	Accent:     Accent,
	Primary:    Primary,
	Amber:      Amber,
	Danger:     Danger,
	Ink:        Ink,
	Sky:        Sky,
}

// Dark mirrors the prototype's .theme-dark overrides.
var Dark = Palette{
	Name:       "dark",
	Dark:       true,
	Background: "#0b1220",
	Surface:    "#0f172a",
	Text:       "#e2e8f0",
	Subtext:    "#94a3b8",
	Border:     "#1f2a44",
	Muted:      "#1e293b",
	Accent:     Accent,
	Primary:    Primary,
	Amber:      Amber,
	Danger:     Danger,
	Ink:        Ink,
	Sky:        Sky,
}

// For returns the palette for the given mode.
func For(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Color converts a hex string to a lipgloss color.
func Color(hex string) color.Color {
	return lipgloss.Color(hex)
}

// Tint blends hex over the palette surface with the given opacity (0..1),
// approximating the translucent chip backgrounds of the prototype.
func (p Palette) Tint(hex string, alpha float64) string {
	fg, err := colorful.Hex(hex)
	if err != nil {
		return p.Surface
	}
	bg, err := colorful.Hex(p.Surface)
	if err != nil {
		return hex
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return bg.BlendRgb(fg, alpha).Clamped().Hex()
}

// Contrast returns Ink or white, whichever reads better on hex.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	_, _, l := c.Hsl()
	if l > 0.6 {
		return Ink
	}
	return "#ffffff"
}
