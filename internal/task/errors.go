package task

import "fmt"

// ValidationError reports input that failed validation. The
// collection is never mutated when one is returned.
type ValidationError struct {
	Field string // field that failed validation
	Msg   string // human-readable reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// NotFoundError reports an operation against an id that is not in
// the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.ID)
}
