package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ticklist/internal/output"
	"ticklist/internal/task"
)

var (
	addDetails string
	addDue     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the top of the list.

Examples:
  ticklist add "Buy milk"
  ticklist add "File taxes" --due 2026-04-15
  ticklist add "Call dentist" --details "ask about Thursday slots"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDetails, "details", "", "Additional details for the task")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (e.g. 2006-01-02)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, _, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	in := task.Input{
		Title:   strings.Join(args, " "),
		Details: addDetails,
	}
	if addDue != "" {
		due, err := parseDueDate(addDue)
		if err != nil {
			return err
		}
		in.DueDate = &due
	}

	created, err := store.Add(in)
	if err != nil {
		return err
	}

	fmt.Println(output.FormatTask(created, time.Now(), cfg.Output.Color))
	return nil
}
