package models

import "time"

// Task represents a single to-do record.
type Task struct {
	// ID is the unique identifier for this task. It is minted at
	// creation time and never changes.
	ID string `json:"id" yaml:"id"`
	// Title is the short description of the task.
	Title string `json:"title" yaml:"title"`
	// Details provides additional free-form text. May be empty.
	Details string `json:"details" yaml:"details"`
	// DueDate is when the task is due. Nil means no due date.
	DueDate *time.Time `json:"dueDate" yaml:"dueDate"`
	// Completed reports whether the task has been checked off.
	Completed bool `json:"completed" yaml:"completed"`
}

// Clone returns a copy of the task. The due date pointer is
// duplicated so callers cannot mutate the original through it.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return c
}

// HasDueDate returns true if the task has a due date set.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// CloneAll returns a deep copy of a task slice.
func CloneAll(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
