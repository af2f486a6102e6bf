// Package task holds the canonical task collection and the rules
// that derive display views from it.
package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ticklist/pkg/models"
)

// Saver persists a full snapshot after each successful mutation.
// Implementations must never fail the caller; persistence problems
// are logged and swallowed behind this interface.
type Saver interface {
	Save(tasks []models.Task)
}

// Input carries the user-editable fields of a task.
type Input struct {
	Title   string
	Details string
	DueDate *time.Time
}

// Store owns the ordered task collection. It is the sole mutator of
// collection state; every successful mutation pushes the new snapshot
// to the Saver before returning. Operations are synchronous and
// driven by discrete user actions, so no locking is needed.
type Store struct {
	tasks []models.Task
	saver Saver
}

// NewStore creates an empty store. The saver may be nil, in which
// case mutations are kept in memory only.
func NewStore(saver Saver) *Store {
	return &Store{saver: saver}
}

// Hydrate replaces the entire collection. It is called once at
// startup with whatever the persistence gateway returned; an empty
// slice is valid and means no tasks yet. Hydration does not trigger
// a save.
func (s *Store) Hydrate(tasks []models.Task) {
	s.tasks = models.CloneAll(tasks)
}

// Add validates the input, mints a fresh id, and prepends the new
// task so the most recent entry comes first. Returns the created
// record.
func (s *Store) Add(in Input) (models.Task, error) {
	if err := validateTitle(in.Title); err != nil {
		return models.Task{}, err
	}

	t := models.Task{
		ID:      uuid.New().String(),
		Title:   in.Title,
		Details: in.Details,
		DueDate: cloneDue(in.DueDate),
	}

	s.tasks = append([]models.Task{t}, s.tasks...)
	s.persist()
	return t.Clone(), nil
}

// Update replaces the editable fields of an existing task in place.
// Position in the collection and the completed flag are untouched.
func (s *Store) Update(id string, in Input) (models.Task, error) {
	if err := validateTitle(in.Title); err != nil {
		return models.Task{}, err
	}

	i := s.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}

	s.tasks[i].Title = in.Title
	s.tasks[i].Details = in.Details
	s.tasks[i].DueDate = cloneDue(in.DueDate)

	s.persist()
	return s.tasks[i].Clone(), nil
}

// ToggleComplete flips the completed flag of the task with the given id.
func (s *Store) ToggleComplete(id string) (models.Task, error) {
	i := s.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.persist()
	return s.tasks[i].Clone(), nil
}

// Delete removes the task with the given id. Deleting an id that is
// not present is a no-op, not an error.
func (s *Store) Delete(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()
}

// Snapshot returns a copy of the collection in its current order.
func (s *Store) Snapshot() []models.Task {
	return models.CloneAll(s.tasks)
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (models.Task, error) {
	i := s.index(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}
	return s.tasks[i].Clone(), nil
}

// Resolve finds a task by full id or unique id prefix. Ambiguous
// prefixes resolve to nothing.
func (s *Store) Resolve(ref string) (models.Task, error) {
	if ref != "" {
		if i := s.index(ref); i >= 0 {
			return s.tasks[i].Clone(), nil
		}

		match := -1
		for i := range s.tasks {
			if strings.HasPrefix(s.tasks[i].ID, ref) {
				if match >= 0 {
					return models.Task{}, &NotFoundError{ID: ref}
				}
				match = i
			}
		}
		if match >= 0 {
			return s.tasks[match].Clone(), nil
		}
	}
	return models.Task{}, &NotFoundError{ID: ref}
}

// index returns the position of the task with the given id, or -1.
func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persist pushes the current snapshot to the saver, if any.
func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	s.saver.Save(s.Snapshot())
}

// cloneDue copies a due date pointer so the store never aliases
// caller-owned memory.
func cloneDue(due *time.Time) *time.Time {
	if due == nil {
		return nil
	}
	d := *due
	return &d
}

// validateTitle enforces the single validation rule: the title must
// be non-empty after trimming surrounding whitespace.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Msg: "must not be empty"}
	}
	return nil
}
