package output

import (
	"strings"
	"testing"
	"time"

	"ticklist/pkg/models"
)

func TestFormatTask(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task models.Task
		want string
	}{
		{
			"plain",
			models.Task{ID: "abcdef1234567890", Title: "Buy milk"},
			"[ ] abcdef12  Buy milk",
		},
		{
			"completed",
			models.Task{ID: "abcdef1234567890", Title: "Buy milk", Completed: true},
			"[x] abcdef12  Buy milk",
		},
		{
			"with due date",
			models.Task{ID: "abcdef1234567890", Title: "File taxes", DueDate: &due},
			"[ ] abcdef12  File taxes  (due 05/01/2025)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatTask(tc.task, now, false)
			if got != tc.want {
				t.Errorf("FormatTask() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	now := time.Now()
	tasks := []models.Task{
		{ID: "aaaaaaaa11111111", Title: "one", Details: "some details"},
		{ID: "bbbbbbbb22222222", Title: "two"},
	}

	got := FormatList(tasks, now, false)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "one") {
		t.Errorf("expected first line to show first task, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "some details") {
		t.Errorf("expected details line, got %q", lines[1])
	}
}

func TestFormatListEmpty(t *testing.T) {
	got := FormatList(nil, time.Now(), false)
	if !strings.Contains(got, "No tasks yet") {
		t.Errorf("expected placeholder for empty list, got %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdef1234567890"); got != "abcdef12" {
		t.Errorf("ShortID() = %q, want %q", got, "abcdef12")
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID() = %q, want %q", got, "abc")
	}
}
