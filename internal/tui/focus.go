package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// FocusRing tracks which of Count controls has focus.
type FocusRing struct {
	Index int
	Count int
}

// Next moves focus forward, wrapping.
func (f *FocusRing) Next() {
	if f.Count == 0 {
		return
	}
	f.Index = (f.Index + 1) % f.Count
}

// Prev moves focus backward, wrapping.
func (f *FocusRing) Prev() {
	if f.Count == 0 {
		return
	}
	f.Index = (f.Index - 1 + f.Count) % f.Count
}

// Is reports whether control i has focus.
func (f FocusRing) Is(i int) bool {
	return f.Index == i
}

// SetCount resizes the ring, keeping the index in range.
func (f *FocusRing) SetCount(n int) {
	f.Count = n
	if n == 0 {
		f.Index = 0
		return
	}
	if f.Index >= n {
		f.Index = n - 1
	}
}

// HandleCycle applies Next/Prev bindings. It reports whether msg was one.
func (f *FocusRing) HandleCycle(msg tea.KeyPressMsg) bool {
	switch {
	case key.Matches(msg, Keys.Next):
		f.Next()
		return true
	case key.Matches(msg, Keys.Prev):
		f.Prev()
		return true
	}
	return false
}

// Builder collects rendered lines and remembers where the focused control
// landed so the body viewport can keep it on screen.
type Builder struct {
	lines     []string
	focusLine int
}

// Add appends one or more lines.
func (b *Builder) Add(s ...string) {
	for _, part := range s {
		b.lines = append(b.lines, strings.Split(part, "\n")...)
	}
}

// AddFocus appends s and, when focused, records its first line.
func (b *Builder) AddFocus(s string, focused bool) {
	if focused {
		b.focusLine = len(b.lines)
	}
	b.Add(s)
}

// Blank appends an empty line.
func (b *Builder) Blank() {
	b.lines = append(b.lines, "")
}

// Len is the number of lines so far.
func (b *Builder) Len() int { return len(b.lines) }

// FocusLine is the first line of the focused control.
func (b *Builder) FocusLine() int { return b.focusLine }

func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}
