package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayPosition anchors a foreground block inside a background.
type OverlayPosition int

const (
	OverlayCenter OverlayPosition = iota
	OverlayTop
	OverlayBottom
	OverlayLeft
	OverlayRight
)

// LayerSpec is a block of rendered text placed at X, Y.
type LayerSpec struct {
	Content string
	X, Y    int
}

// Overlay composites foreground over background at the anchored position,
// shifted by the offsets.
func Overlay(foreground, background string, hPos, vPos OverlayPosition, xOffset, yOffset int) string {
	if foreground == "" {
		return background
	}
	if background == "" {
		return foreground
	}
	bgW, bgH := blockSize(background)
	fgW, fgH := blockSize(foreground)

	var x, y int
	switch hPos {
	case OverlayLeft:
		x = 0
	case OverlayRight:
		x = bgW - fgW
	default:
		x = (bgW - fgW) / 2
	}
	switch vPos {
	case OverlayTop:
		y = 0
	case OverlayBottom:
		y = bgH - fgH
	default:
		y = (bgH - fgH) / 2
	}
	return MultiOverlay(background, LayerSpec{Content: foreground, X: x + xOffset, Y: y + yOffset})
}

// MultiOverlay paints layers over background in order. Cells outside the
// background are dropped; ANSI styling on both sides of a cut is preserved.
func MultiOverlay(background string, layers ...LayerSpec) string {
	lines := strings.Split(background, "\n")
	for _, layer := range layers {
		if layer.Content == "" {
			continue
		}
		x := max(layer.X, 0)
		for i, fg := range strings.Split(layer.Content, "\n") {
			row := layer.Y + i
			if row < 0 || row >= len(lines) {
				continue
			}
			lines[row] = spliceLine(lines[row], fg, x)
		}
	}
	return strings.Join(lines, "\n")
}

func spliceLine(bg, fg string, x int) string {
	bgW := ansi.StringWidth(bg)
	fgW := ansi.StringWidth(fg)

	var b strings.Builder
	if bgW >= x {
		b.WriteString(ansi.Truncate(bg, x, ""))
	} else {
		b.WriteString(bg)
		b.WriteString(strings.Repeat(" ", x-bgW))
	}
	b.WriteString("\x1b[0m")
	b.WriteString(fg)
	b.WriteString("\x1b[0m")
	if end := x + fgW; end < bgW {
		b.WriteString(ansi.Cut(bg, end, bgW))
	}
	return b.String()
}

func blockSize(s string) (w, h int) {
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w, len(lines)
}
