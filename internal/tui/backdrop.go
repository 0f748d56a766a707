package tui

import (
	"charm.land/lipgloss/v2"
)

// FrameParts is everything drawn inside the phone frame.
type FrameParts struct {
	LoggedIn bool
	Header   HeaderModel
	Nav      NavModel
	Body     string
}

// RenderInner lays out the chrome and body for a frame of frameW x frameH.
// The result is exactly InnerWidth x InnerHeight so overlays can be
// composited on it before the border goes on.
func RenderInner(s Styles, l Layout, frameW, frameH int, p FrameParts) string {
	w := l.InnerWidth(frameW)
	h := l.InnerHeight(frameH)
	bodyH := l.BodyHeight(frameH, p.LoggedIn)

	block := func(content string, height int) string {
		return s.Screen.Width(w).Height(height).MaxHeight(height).Render(content)
	}

	parts := []string{renderBrand(s, w)}
	if p.LoggedIn {
		p.Header.SetWidth(w)
		p.Nav.SetWidth(w)
		parts = append(parts,
			block(p.Header.View(s), l.TopBarHeight),
			s.Rule(w),
			block(p.Body, bodyH),
			s.Rule(w),
			block(p.Nav.View(s), l.NavHeight),
		)
	} else {
		parts = append(parts, block(p.Body, bodyH))
	}
	return block(lipgloss.JoinVertical(lipgloss.Left, parts...), h)
}

// RenderFrame puts the border around inner content.
func RenderFrame(s Styles, inner string) string {
	return s.AddShadow(s.Frame.Render(inner))
}

// SheetArea is the inner-frame region a bottom sheet may cover: everything
// under the brand line.
func SheetArea(l Layout, frameH int) int {
	return l.InnerHeight(frameH) - l.BrandHeight
}
