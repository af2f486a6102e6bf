package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ticklist/pkg/models"
)

// Form field indexes.
const (
	fieldTitle = iota
	fieldDetails
	fieldDue
	fieldCount
)

// taskForm is the add/edit input form.
type taskForm struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	editingID string // empty when adding
	errMsg    string
}

// newTaskForm creates an empty form for adding a task.
func newTaskForm() taskForm {
	var f taskForm

	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	details := textinput.New()
	details.Placeholder = "Additional details"
	details.CharLimit = 500
	details.Width = 50

	due := textinput.New()
	due.Placeholder = "Due date (2006-01-02, blank for none)"
	due.CharLimit = 25
	due.Width = 50

	f.inputs[fieldTitle] = title
	f.inputs[fieldDetails] = details
	f.inputs[fieldDue] = due
	return f
}

// formForTask creates a form prefilled from an existing task.
func formForTask(t models.Task) taskForm {
	f := newTaskForm()
	f.editingID = t.ID
	f.inputs[fieldTitle].SetValue(t.Title)
	f.inputs[fieldDetails].SetValue(t.Details)
	if t.DueDate != nil {
		f.inputs[fieldDue].SetValue(t.DueDate.Format("2006-01-02"))
	}
	return f
}

// formSubmittedMsg is sent when the user submits the form.
type formSubmittedMsg struct{}

// formCancelledMsg is sent when the user dismisses the form.
type formCancelledMsg struct{}

// Update handles key input for the form.
func (f taskForm) Update(msg tea.Msg) (taskForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, func() tea.Msg { return formCancelledMsg{} }
		case "enter":
			if f.focus == fieldDue {
				return f, func() tea.Msg { return formSubmittedMsg{} }
			}
			f.setFocus(f.focus + 1)
			return f, nil
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// setFocus moves focus to the given field.
func (f *taskForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// title/details/due return the current field values.
func (f taskForm) title() string   { return f.inputs[fieldTitle].Value() }
func (f taskForm) details() string { return f.inputs[fieldDetails].Value() }
func (f taskForm) due() string     { return strings.TrimSpace(f.inputs[fieldDue].Value()) }

// View renders the form.
func (f taskForm) View(st styles) string {
	var b strings.Builder

	heading := "New Task"
	if f.editingID != "" {
		heading = "Edit Task"
	}
	b.WriteString(st.header.Render(heading) + "\n\n")

	labels := [fieldCount]string{"Title", "Details", "Due Date"}
	for i := range f.inputs {
		b.WriteString(labels[i] + "\n")
		b.WriteString(f.inputs[i].View() + "\n\n")
	}

	if f.errMsg != "" {
		b.WriteString(st.errMsg.Render(f.errMsg) + "\n\n")
	}

	b.WriteString(st.help.Render("enter save · tab next field · esc cancel"))
	return b.String()
}
