package tui

// Layout holds the phone frame measurements. All positioning derives from
// it; no other file hardcodes chrome sizes.
type Layout struct {
	MaxWidth  int // phone frame width including border
	MaxHeight int // phone frame height including border

	FrameBorder   int // 2 (left+right or top+bottom)
	BrandHeight   int // brand chip line under the top border
	TopBarHeight  int // location + title lines
	NavHeight     int // key hint + label lines
	RuleHeight    int // separator above and below the body
	HelplineGap   int // blank line between frame and help line
	SheetMaxRatio float64
}

// DefaultLayout is a tall, narrow frame reminiscent of a phone screen.
func DefaultLayout() Layout {
	return Layout{
		MaxWidth:      50,
		MaxHeight:     40,
		FrameBorder:   2,
		BrandHeight:   1,
		TopBarHeight:  2,
		NavHeight:     2,
		RuleHeight:    1,
		HelplineGap:   0,
		SheetMaxRatio: 0.85,
	}
}

// GetLayout returns the current layout configuration.
func GetLayout() Layout {
	return DefaultLayout()
}

// FrameSize fits the frame into the terminal, leaving a line for help.
func (l Layout) FrameSize(termW, termH int) (width, height int) {
	width = min(l.MaxWidth, termW)
	height = min(l.MaxHeight, termH-1-l.HelplineGap)
	if width < 24 {
		width = 24
	}
	if height < 12 {
		height = 12
	}
	return width, height
}

// InnerWidth is the usable width inside the frame border.
func (l Layout) InnerWidth(frameW int) int {
	return max(frameW-l.FrameBorder, 1)
}

// InnerHeight is the usable height inside the frame border.
func (l Layout) InnerHeight(frameH int) int {
	return max(frameH-l.FrameBorder, 1)
}

// BodyHeight is what remains for the screen body once the brand, top bar,
// rules and bottom navigation are drawn.
func (l Layout) BodyHeight(frameH int, loggedIn bool) int {
	h := l.InnerHeight(frameH) - l.BrandHeight
	if loggedIn {
		h -= l.TopBarHeight + l.NavHeight + 2*l.RuleHeight
	}
	return max(h, 3)
}

// SheetHeight caps a bottom sheet at a share of the area it covers.
func (l Layout) SheetHeight(area, content int) int {
	limit := int(float64(area) * l.SheetMaxRatio)
	return max(min(content, limit), 3)
}
