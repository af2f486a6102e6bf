package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/storage"
	"ticklist/internal/task"
	"ticklist/pkg/models"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, tasks []models.Task) Model {
	t.Helper()

	gw := storage.NewFileGateway(filepath.Join(t.TempDir(), "tasks.json"))
	store := task.NewStore(gw)
	store.Hydrate(tasks)
	return New(store, gw, nil)
}

func testTasks() []models.Task {
	due1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	return []models.Task{
		{ID: "t-later", Title: "later", DueDate: &due1},
		{ID: "t-sooner", Title: "sooner", DueDate: &due2},
		{ID: "t-nodate", Title: "no date"},
	}
}

func TestToggleSortReordersView(t *testing.T) {
	m := newTestModel(t, testTasks())

	if m.view[0].ID != "t-later" {
		t.Fatalf("expected insertion order initially, got %s first", m.view[0].ID)
	}

	updated, _ := m.Update(keyMsg("s"))
	m = updated.(Model)

	want := []string{"t-sooner", "t-later", "t-nodate"}
	for i, id := range want {
		if m.view[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, m.view[i].ID)
		}
	}

	if !strings.Contains(m.View(), "Sorted by Due Date") {
		t.Error("expected header to show sorted state")
	}

	updated, _ = m.Update(keyMsg("s"))
	m = updated.(Model)
	if m.view[0].ID != "t-later" {
		t.Error("expected second toggle to restore insertion order")
	}
}

func TestSpaceTogglesCompletion(t *testing.T) {
	m := newTestModel(t, testTasks())

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(Model)

	if !m.view[0].Completed {
		t.Error("expected task under cursor to be completed")
	}

	updated, _ = m.Update(keyMsg(" "))
	m = updated.(Model)
	if m.view[0].Completed {
		t.Error("expected second toggle to un-complete the task")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, testTasks())

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	if m.mode != modeConfirmDelete {
		t.Fatal("expected delete to prompt for confirmation")
	}
	if len(m.view) != 3 {
		t.Fatal("expected no deletion before confirming")
	}

	// Declining keeps the task.
	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if len(m.view) != 3 {
		t.Error("expected declined delete to keep the task")
	}

	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("y"))
	m = updated.(Model)
	if len(m.view) != 2 {
		t.Errorf("expected 2 tasks after confirmed delete, got %d", len(m.view))
	}
}

func TestAddFormValidation(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	if m.mode != modeForm {
		t.Fatal("expected 'a' to open the add form")
	}

	// Submitting with an empty title shows the validation message
	// and stays on the form.
	updated, _ = m.Update(formSubmittedMsg{})
	m = updated.(Model)
	if m.mode != modeForm {
		t.Error("expected form to stay open on validation failure")
	}
	if m.form.errMsg != "Task title is required!" {
		t.Errorf("expected validation message, got %q", m.form.errMsg)
	}
	if m.store.Len() != 0 {
		t.Error("expected no task to be added")
	}

	m.form.inputs[fieldTitle].SetValue("Buy milk")
	updated, _ = m.Update(formSubmittedMsg{})
	m = updated.(Model)
	if m.mode != modeList {
		t.Error("expected form to close after a valid submit")
	}
	if m.store.Len() != 1 {
		t.Errorf("expected 1 task after submit, got %d", m.store.Len())
	}
}

func TestEditFormPrefilled(t *testing.T) {
	m := newTestModel(t, testTasks())

	updated, _ := m.Update(keyMsg("e"))
	m = updated.(Model)
	if m.mode != modeForm {
		t.Fatal("expected 'e' to open the edit form")
	}
	if m.form.editingID != "t-later" {
		t.Errorf("expected form for task under cursor, got %q", m.form.editingID)
	}
	if m.form.title() != "later" {
		t.Errorf("expected prefilled title, got %q", m.form.title())
	}
	if m.form.due() != "2025-01-10" {
		t.Errorf("expected prefilled due date, got %q", m.form.due())
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, testTasks())

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 2 {
		t.Errorf("expected cursor at 2, got %d", m.cursor)
	}

	// Cursor stops at the last task.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", m.cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", m.cursor)
	}
}
