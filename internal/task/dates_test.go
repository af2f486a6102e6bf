package task

import (
	"testing"
	"time"
)

func TestParseDue(t *testing.T) {
	got, err := ParseDue("2025-01-05")
	if err != nil {
		t.Fatalf("ParseDue failed: %v", err)
	}
	want := time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	withTime, err := ParseDue("2025-01-05 14:30")
	if err != nil {
		t.Fatalf("ParseDue failed: %v", err)
	}
	if withTime.Hour() != 14 || withTime.Minute() != 30 {
		t.Errorf("expected 14:30, got %v", withTime)
	}
}

func TestParseDueEmpty(t *testing.T) {
	got, err := ParseDue("")
	if err != nil {
		t.Fatalf("ParseDue failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty value, got %v", got)
	}
}

func TestParseDueInvalid(t *testing.T) {
	for _, value := range []string{"tomorrow", "05/01/2025", "2025-13-40"} {
		if _, err := ParseDue(value); err == nil {
			t.Errorf("ParseDue(%q): expected error", value)
		}
	}
}
