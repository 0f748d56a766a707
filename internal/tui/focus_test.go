package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestFocusRingWraps(t *testing.T) {
	f := FocusRing{Count: 3}
	f.Prev()
	if f.Index != 2 {
		t.Errorf("Prev from 0 = %d, want 2", f.Index)
	}
	f.Next()
	if f.Index != 0 {
		t.Errorf("Next from 2 = %d, want 0", f.Index)
	}
	f.SetCount(0)
	f.Next()
	if f.Index != 0 {
		t.Errorf("empty ring moved to %d", f.Index)
	}
}

func TestFocusRingSetCountClamps(t *testing.T) {
	f := FocusRing{Index: 6, Count: 7}
	f.SetCount(4)
	if f.Index != 3 {
		t.Errorf("Index = %d, want 3", f.Index)
	}
}

func TestHandleCycle(t *testing.T) {
	f := FocusRing{Count: 4}
	if !f.HandleCycle(tea.KeyPressMsg{Code: tea.KeyTab}) || f.Index != 1 {
		t.Errorf("tab: index %d", f.Index)
	}
	if !f.HandleCycle(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}) || f.Index != 0 {
		t.Errorf("shift+tab: index %d", f.Index)
	}
	if !f.HandleCycle(tea.KeyPressMsg{Code: tea.KeyDown}) || f.Index != 1 {
		t.Errorf("down: index %d", f.Index)
	}
	if f.HandleCycle(tea.KeyPressMsg{Code: 'x', Text: "x"}) {
		t.Error("x should not cycle focus")
	}
}

func TestBuilderFocusLine(t *testing.T) {
	var b Builder
	b.Add("title", "sub\nsub2")
	b.Blank()
	b.AddFocus("button", false)
	b.AddFocus("focused\nsecond", true)
	if b.FocusLine() != 5 {
		t.Errorf("FocusLine() = %d, want 5", b.FocusLine())
	}
	if b.Len() != 7 {
		t.Errorf("Len() = %d, want 7", b.Len())
	}
}
