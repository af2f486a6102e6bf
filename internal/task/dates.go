package task

import (
	"fmt"
	"time"
)

// dueDateLayouts are the accepted forms for user-entered due dates.
var dueDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseDue parses a user-entered due date. An empty value means no
// due date and returns nil.
func ParseDue(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q (expected e.g. 2006-01-02)", value)
}
