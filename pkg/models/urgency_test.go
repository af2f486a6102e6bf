package models

import (
	"testing"
	"time"
)

func TestClassifyUrgency(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	soon := now.Add(6 * time.Hour)
	later := now.Add(48 * time.Hour)
	justUnderWindow := now.Add(DueSoonWindow - time.Minute)
	atWindow := now.Add(DueSoonWindow)

	tests := []struct {
		name string
		task Task
		want Urgency
	}{
		{"completed", Task{Completed: true}, UrgencyDone},
		{"completed overrides overdue", Task{Completed: true, DueDate: &past}, UrgencyDone},
		{"no due date", Task{}, UrgencyNoDueDate},
		{"overdue", Task{DueDate: &past}, UrgencyOverdue},
		{"due soon", Task{DueDate: &soon}, UrgencyDueSoon},
		{"just under the 24h window", Task{DueDate: &justUnderWindow}, UrgencyDueSoon},
		{"exactly at the 24h window", Task{DueDate: &atWindow}, UrgencyFuture},
		{"future", Task{DueDate: &later}, UrgencyFuture},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyUrgency(tc.task, now)
			if got != tc.want {
				t.Errorf("ClassifyUrgency() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUrgencyValid(t *testing.T) {
	for _, u := range []Urgency{UrgencyDone, UrgencyNoDueDate, UrgencyOverdue, UrgencyDueSoon, UrgencyFuture} {
		if !u.Valid() {
			t.Errorf("expected %q to be valid", u)
		}
	}

	if Urgency("someday").Valid() {
		t.Error("expected unknown urgency to be invalid")
	}
}
