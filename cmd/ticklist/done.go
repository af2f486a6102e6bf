package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ticklist/internal/output"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completion",
	Long: `Mark a task as completed, or un-complete it if it already is.
The id may be abbreviated to any unique prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	store, _, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := store.Resolve(args[0])
	if err != nil {
		return err
	}

	updated, err := store.ToggleComplete(t.ID)
	if err != nil {
		return err
	}

	fmt.Println(output.FormatTask(updated, time.Now(), cfg.Output.Color))
	return nil
}
