package tui

const (
	// radioSelected (◉) - Fisheye (U+25C9)
	radioSelected = "◉"
	// radioUnselected (○) - White Circle (U+25CB)
	radioUnselected = "○"

	// checkSelected (▣) - White Square Containing Black Small Square (U+25A3)
	checkSelected = "▣"
	// checkUnselected (□) - White Square (U+25A1)
	checkUnselected = "□"

	// focusMark (›) marks the focused row in a list.
	focusMark = "›"

	// GlyphMarker (●) draws incidents on the pseudo-map and status dots.
	GlyphMarker = "●"
	// GlyphPin (⌖) prefixes the location line.
	GlyphPin = "⌖"
	// GlyphFlame (▲) stands in for the flame icon.
	GlyphFlame = "▲"
	// GlyphBar (█) draws series bars.
	GlyphBar = "█"
	// GlyphPlay (▶)
	GlyphPlay = "▶"
	// GlyphChevron (›)
	GlyphChevron = "›"

	// ASCII variants
	radioSelectedAscii   = "(*)"
	radioUnselectedAscii = "( )"
	checkSelectedAscii   = "[x]"
	checkUnselectedAscii = "[ ]"
)

// Radio renders a radio mark honoring the line-character setting.
func Radio(selected, lineChars bool) string {
	switch {
	case selected && lineChars:
		return radioSelected
	case selected:
		return radioSelectedAscii
	case lineChars:
		return radioUnselected
	}
	return radioUnselectedAscii
}

// Check renders a checkbox mark honoring the line-character setting.
func Check(selected, lineChars bool) string {
	switch {
	case selected && lineChars:
		return checkSelected
	case selected:
		return checkSelectedAscii
	case lineChars:
		return checkUnselected
	}
	return checkUnselectedAscii
}
