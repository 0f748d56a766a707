// Package dispatch decides which actions the dispatch panel offers per
// incident. Actions are shown only; nothing changes an item's status.
package dispatch

import "GuardianesDelFuego/internal/domain"

// Style is how an action button is drawn.
type Style int

const (
	StylePrimary Style = iota
	StyleDanger
	StyleSecondary
)

// Action is a button on a dispatch card.
type Action struct {
	Label string
	Style Style
}

const (
	LabelAssign       = "Asignar brigada"
	LabelMarkResolved = "Marcar controlado"
)

// Actions is the action set for a status. Controlled items get none.
func Actions(s domain.Status) []Action {
	switch s {
	case domain.StatusEnRoute:
		return []Action{{Label: LabelMarkResolved, Style: StyleDanger}}
	case domain.StatusReceived:
		return []Action{
			{Label: LabelAssign, Style: StylePrimary},
			{Label: LabelMarkResolved, Style: StyleSecondary},
		}
	}
	return nil
}

// Filter is a status chip; the zero value shows everything.
type Filter struct {
	Status domain.Status
}

// AllLabel names the catch-all chip.
const AllLabel = "Todos"

// Filters lists the chips in display order.
func Filters() []Filter {
	out := []Filter{{}}
	for _, s := range domain.Statuses {
		out = append(out, Filter{Status: s})
	}
	return out
}

func (f Filter) Label() string {
	if f.Status == "" {
		return AllLabel
	}
	return string(f.Status)
}

// Apply keeps the items matching f, preserving order.
func (f Filter) Apply(items []domain.DispatchItem) []domain.DispatchItem {
	if f.Status == "" {
		return items
	}
	var out []domain.DispatchItem
	for _, it := range items {
		if it.Status == f.Status {
			out = append(out, it)
		}
	}
	return out
}

// Counts tallies items per status.
func Counts(items []domain.DispatchItem) map[domain.Status]int {
	c := make(map[domain.Status]int, len(domain.Statuses))
	for _, s := range domain.Statuses {
		c[s] = 0
	}
	for _, it := range items {
		c[it.Status]++
	}
	return c
}
