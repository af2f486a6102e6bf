// Package output renders task lists as plain terminal text.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"ticklist/pkg/models"
)

// dueDateLayout matches the dd/mm/yyyy display format of the app.
const dueDateLayout = "02/01/2006"

// shortIDLen is how many id characters are shown in listings.
const shortIDLen = 8

var urgencyColors = map[models.Urgency]*color.Color{
	models.UrgencyDone:      color.New(color.FgGreen),
	models.UrgencyNoDueDate: color.New(color.FgHiBlack),
	models.UrgencyOverdue:   color.New(color.FgRed, color.Bold),
	models.UrgencyDueSoon:   color.New(color.FgYellow),
	models.UrgencyFuture:    color.New(color.FgWhite),
}

// FormatTask renders a single task as one line, colored by urgency
// when enabled.
func FormatTask(t models.Task, now time.Time, colored bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s  %s", check, ShortID(t.ID), t.Title)
	if t.DueDate != nil {
		line += fmt.Sprintf("  (due %s)", t.DueDate.Format(dueDateLayout))
	}

	if !colored {
		return line
	}

	c, ok := urgencyColors[models.ClassifyUrgency(t, now)]
	if !ok {
		return line
	}
	return c.Sprint(line)
}

// FormatList renders the given tasks one per line. Details are shown
// indented under their task. An empty list renders a placeholder.
func FormatList(tasks []models.Task, now time.Time, colored bool) string {
	if len(tasks) == 0 {
		return "No tasks yet. Add one with: ticklist add <title>\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(FormatTask(t, now, colored))
		b.WriteByte('\n')
		if t.Details != "" {
			b.WriteString("         " + t.Details + "\n")
		}
	}
	return b.String()
}

// ShortID returns the listing form of a task id.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
