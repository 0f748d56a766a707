package dispatch

import (
	"testing"

	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/domain"
)

func TestActions(t *testing.T) {
	if got := Actions(domain.StatusControlled); len(got) != 0 {
		t.Errorf("Controlado actions = %v, want none", got)
	}
	enRoute := Actions(domain.StatusEnRoute)
	if len(enRoute) != 1 || enRoute[0].Label != LabelMarkResolved || enRoute[0].Style != StyleDanger {
		t.Errorf("En ruta actions = %v", enRoute)
	}
	received := Actions(domain.StatusReceived)
	if len(received) != 2 ||
		received[0] != (Action{LabelAssign, StylePrimary}) ||
		received[1] != (Action{LabelMarkResolved, StyleSecondary}) {
		t.Errorf("Recibido actions = %v", received)
	}
}

func TestFilters(t *testing.T) {
	items := demo.Default().Dispatch
	tests := []struct {
		filter Filter
		ids    []int
	}{
		{Filter{}, []int{101, 102, 103}},
		{Filter{domain.StatusReceived}, []int{102}},
		{Filter{domain.StatusEnRoute}, []int{101}},
		{Filter{domain.StatusControlled}, []int{103}},
	}
	for _, tt := range tests {
		got := tt.filter.Apply(items)
		if len(got) != len(tt.ids) {
			t.Errorf("%s: %d items, want %d", tt.filter.Label(), len(got), len(tt.ids))
			continue
		}
		for i, id := range tt.ids {
			if got[i].ID != id {
				t.Errorf("%s[%d] = %d, want %d", tt.filter.Label(), i, got[i].ID, id)
			}
		}
	}
	labels := []string{"Todos", "Recibido", "En ruta", "Controlado"}
	for i, f := range Filters() {
		if f.Label() != labels[i] {
			t.Errorf("Filters()[%d] = %q, want %q", i, f.Label(), labels[i])
		}
	}
}

func TestCounts(t *testing.T) {
	c := Counts(demo.Default().Dispatch)
	for _, s := range domain.Statuses {
		if c[s] != 1 {
			t.Errorf("Counts[%s] = %d, want 1", s, c[s])
		}
	}
	if c := Counts(nil); c[domain.StatusReceived] != 0 || len(c) != 3 {
		t.Errorf("Counts(nil) = %v", c)
	}
}
