// Package tui implements the interactive full-screen task list.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/storage"
	"ticklist/internal/task"
	"ticklist/pkg/models"
)

// mode is the current interaction mode.
type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

// fileChangedMsg reports that another process rewrote the data file.
type fileChangedMsg struct{}

// Model is the bubbletea model for the task list.
type Model struct {
	store   *task.Store
	gateway storage.Gateway
	watcher *storage.Watcher

	view      []models.Task
	cursor    int
	sortByDue bool

	mode      mode
	form      taskForm
	confirmID string

	status string
	styles styles
	width  int
	height int
}

// New creates the interactive model. The watcher may be nil.
func New(store *task.Store, gateway storage.Gateway, watcher *storage.Watcher) Model {
	m := Model{
		store:   store,
		gateway: gateway,
		watcher: watcher,
		styles:  defaultStyles(),
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Init starts listening for external data-file changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the watcher channel, if there is one.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// refresh re-derives the display view from the store.
func (m *Model) refresh() {
	m.view = task.DeriveView(m.store.Snapshot(), m.sortByDue)
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fileChangedMsg:
		// Another ticklist process saved; pick up its snapshot.
		m.store.Hydrate(m.gateway.Load())
		m.refresh()
		m.status = "reloaded from disk"
		return m, m.waitForChange()

	case formSubmittedMsg:
		return m.submitForm()

	case formCancelledMsg:
		m.mode = modeList
		return m, nil
	}

	switch m.mode {
	case modeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	default:
		return m.updateList(msg)
	}
}

// updateList handles keys in the list view.
func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}

	case "s":
		m.sortByDue = !m.sortByDue
		m.cursor = 0
		m.refresh()

	case " ":
		if t, ok := m.selected(); ok {
			if _, err := m.store.ToggleComplete(t.ID); err != nil {
				m.status = err.Error()
			}
			m.refresh()
		}

	case "a":
		m.form = newTaskForm()
		m.mode = modeForm

	case "e":
		if t, ok := m.selected(); ok {
			m.form = formForTask(t)
			m.mode = modeForm
		}

	case "d":
		if t, ok := m.selected(); ok {
			m.confirmID = t.ID
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

// updateConfirm handles the delete confirmation prompt.
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.store.Delete(m.confirmID)
		m.confirmID = ""
		m.mode = modeList
		m.refresh()
	case "n", "N", "esc":
		m.confirmID = ""
		m.mode = modeList
	}
	return m, nil
}

// submitForm validates and applies the add/edit form.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	due, err := task.ParseDue(m.form.due())
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	in := task.Input{
		Title:   m.form.title(),
		Details: m.form.details(),
		DueDate: due,
	}

	if m.form.editingID == "" {
		_, err = m.store.Add(in)
	} else {
		_, err = m.store.Update(m.form.editingID, in)
	}
	if err != nil {
		var ve *task.ValidationError
		if errors.As(err, &ve) {
			m.form.errMsg = "Task title is required!"
		} else {
			m.form.errMsg = err.Error()
		}
		return m, nil
	}

	m.mode = modeList
	m.refresh()
	return m, nil
}

// selected returns the task under the cursor.
func (m Model) selected() (models.Task, bool) {
	if len(m.view) == 0 || m.cursor < 0 || m.cursor >= len(m.view) {
		return models.Task{}, false
	}
	return m.view[m.cursor], true
}

// View renders the current mode.
func (m Model) View() string {
	if m.mode == modeForm {
		return m.form.View(m.styles)
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render("My To-Do List") + "\n")

	sub := "Unsorted List"
	if m.sortByDue {
		sub = "Sorted by Due Date"
	}
	b.WriteString(m.styles.subhead.Render(sub) + "\n\n")

	if len(m.view) == 0 {
		b.WriteString(m.styles.subhead.Render("No tasks yet. Press 'a' to add one.") + "\n")
	}

	now := time.Now()
	for i, t := range m.view {
		marker := "  "
		if i == m.cursor {
			marker = m.styles.cursor.Render("> ")
		}
		b.WriteString(marker + m.renderTask(t, now) + "\n")
		if i == m.cursor && t.Details != "" {
			b.WriteString(m.styles.details.Render(t.Details) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.mode == modeConfirmDelete:
		b.WriteString(m.styles.confirm.Render("Delete this task? (y/n)") + "\n")
	case m.status != "":
		b.WriteString(m.styles.subhead.Render(m.status) + "\n")
	}

	b.WriteString(m.styles.help.Render(
		"a add · e edit · space done · d delete · s sort · q quit"))
	return b.String()
}

// renderTask renders one task row styled by urgency.
func (m Model) renderTask(t models.Task, now time.Time) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s", check, t.Title)
	if t.DueDate != nil {
		line += fmt.Sprintf("  (due %s)", t.DueDate.Format("02/01/2006"))
	}

	if style, ok := m.styles.urgency[models.ClassifyUrgency(t, now)]; ok {
		return style.Render(line)
	}
	return line
}
