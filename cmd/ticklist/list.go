package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ticklist/internal/output"
	"ticklist/internal/task"
)

var (
	listByDue   bool
	listNoColor bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `Print the task list, most recent first. With --due, tasks that
have a due date come first in ascending due order, followed by tasks
without one. Lines are colored by urgency: overdue red, due within
24 hours yellow, completed green.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listByDue, "due", false, "Sort by due date")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable urgency coloring")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	view := task.DeriveView(store.Snapshot(), listByDue)
	colored := cfg.Output.Color && !listNoColor
	fmt.Print(output.FormatList(view, time.Now(), colored))
	return nil
}
