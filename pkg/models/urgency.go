package models

import "time"

// Urgency is a derived, display-only classification of a task's
// time-sensitivity. It never affects ordering or persistence.
type Urgency string

const (
	// UrgencyDone indicates the task is completed, regardless of due date.
	UrgencyDone Urgency = "done"
	// UrgencyNoDueDate indicates the task has no due date.
	UrgencyNoDueDate Urgency = "no_due_date"
	// UrgencyOverdue indicates the due date has passed.
	UrgencyOverdue Urgency = "overdue"
	// UrgencyDueSoon indicates the task is due within the next 24 hours.
	UrgencyDueSoon Urgency = "due_soon"
	// UrgencyFuture indicates the due date is more than 24 hours away.
	UrgencyFuture Urgency = "future"
)

// DueSoonWindow is how far ahead of the due date a task counts as due soon.
const DueSoonWindow = 24 * time.Hour

// Valid returns true if the urgency is a known value.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyDone, UrgencyNoDueDate, UrgencyOverdue, UrgencyDueSoon, UrgencyFuture:
		return true
	default:
		return false
	}
}

// ClassifyUrgency maps a task to its urgency category at the given
// instant. Rules are checked in order, first match wins: a completed
// task is always done, even when its due date has passed.
func ClassifyUrgency(t Task, now time.Time) Urgency {
	if t.Completed {
		return UrgencyDone
	}
	if t.DueDate == nil {
		return UrgencyNoDueDate
	}
	if t.DueDate.Before(now) {
		return UrgencyOverdue
	}
	if t.DueDate.Sub(now) < DueSoonWindow {
		return UrgencyDueSoon
	}
	return UrgencyFuture
}
