// Package overlay models the bottom sheet layered over the active screen.
// At most one overlay is open; opening another replaces it.
package overlay

import "GuardianesDelFuego/internal/domain"

// Kind identifies an overlay variant.
type Kind int

const (
	KindNone Kind = iota
	KindAlert
	KindLesson
	KindCourse
	KindVolunteer
)

func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindLesson:
		return "lesson"
	case KindCourse:
		return "course"
	case KindVolunteer:
		return "volunteer"
	}
	return "none"
}

// Overlay is one of Alert, Lesson, Course or Volunteer.
type Overlay interface {
	Kind() Kind
}

// Alert shows the detail of a single alert.
type Alert struct {
	Item domain.AlertItem
}

// Lesson is the step-by-step micro-course.
type Lesson struct{}

// Course is the course detail sheet.
type Course struct{}

// Volunteer is the volunteer sign-up form.
type Volunteer struct{}

func (Alert) Kind() Kind     { return KindAlert }
func (Lesson) Kind() Kind    { return KindLesson }
func (Course) Kind() Kind    { return KindCourse }
func (Volunteer) Kind() Kind { return KindVolunteer }

// Controller holds the active overlay, if any.
type Controller struct {
	active Overlay
}

// Open replaces whatever is showing with o. Opening nil closes.
func (c *Controller) Open(o Overlay) {
	c.active = o
}

// Close clears the overlay.
func (c *Controller) Close() {
	c.active = nil
}

// Active returns the open overlay, or nil.
func (c Controller) Active() Overlay {
	return c.active
}

// Kind of the open overlay; KindNone when closed.
func (c Controller) Kind() Kind {
	if c.active == nil {
		return KindNone
	}
	return c.active.Kind()
}

// IsOpen reports whether any overlay is showing.
func (c Controller) IsOpen() bool {
	return c.active != nil
}
