package task

import (
	"sort"

	"ticklist/pkg/models"
)

// DeriveView derives the display ordering for a snapshot. With
// sortByDueDate false the input order (most recent first) is kept.
// With it true, tasks that have a due date come first, sorted
// ascending by due time with ties keeping their original relative
// order, followed by tasks without a due date in their original
// relative order. The result always contains exactly the input tasks.
func DeriveView(tasks []models.Task, sortByDueDate bool) []models.Task {
	if !sortByDueDate {
		return tasks
	}

	withDue := make([]models.Task, 0, len(tasks))
	withoutDue := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasDueDate() {
			withDue = append(withDue, t)
		} else {
			withoutDue = append(withoutDue, t)
		}
	}

	sort.SliceStable(withDue, func(i, j int) bool {
		return withDue[i].DueDate.Before(*withDue[j].DueDate)
	})

	return append(withDue, withoutDue...)
}
