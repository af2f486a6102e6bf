package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ticklist/internal/output"
	"ticklist/internal/task"
)

var (
	editTitle    string
	editDetails  string
	editDue      string
	editClearDue bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit an existing task. The id may be abbreviated to any unique
prefix (the one shown by 'ticklist list'). Flags that are not given
keep their current values.

Examples:
  ticklist edit 1a2b3c4d --title "Buy oat milk"
  ticklist edit 1a2b --due 2026-03-01
  ticklist edit 1a2b --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDetails, "details", "", "New details")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (e.g. 2006-01-02)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	current, err := store.Resolve(args[0])
	if err != nil {
		return err
	}

	// Start from the current values and overlay changed flags.
	in := task.Input{
		Title:   current.Title,
		Details: current.Details,
		DueDate: current.DueDate,
	}
	if cmd.Flags().Changed("title") {
		in.Title = editTitle
	}
	if cmd.Flags().Changed("details") {
		in.Details = editDetails
	}
	if editClearDue {
		in.DueDate = nil
	} else if cmd.Flags().Changed("due") {
		due, err := parseDueDate(editDue)
		if err != nil {
			return err
		}
		in.DueDate = &due
	}

	updated, err := store.Update(current.ID, in)
	if err != nil {
		return err
	}

	fmt.Println(output.FormatTask(updated, time.Now(), cfg.Output.Color))
	return nil
}
