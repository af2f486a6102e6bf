package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ticklist/pkg/models"
)

// styles holds the lipgloss styles for the list view.
type styles struct {
	header  lipgloss.Style
	subhead lipgloss.Style
	cursor  lipgloss.Style
	details lipgloss.Style
	help    lipgloss.Style
	errMsg  lipgloss.Style
	confirm lipgloss.Style

	urgency map[models.Urgency]lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		subhead: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		details: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(6),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		errMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		confirm: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		urgency: map[models.Urgency]lipgloss.Style{
			models.UrgencyDone: lipgloss.NewStyle().
				Foreground(lipgloss.Color("242")).
				Strikethrough(true),
			models.UrgencyNoDueDate: lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")),
			models.UrgencyOverdue: lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true),
			models.UrgencyDueSoon: lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")),
			models.UrgencyFuture: lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")),
		},
	}
}
