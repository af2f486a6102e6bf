package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ticklist/internal/output"
	"ticklist/internal/task"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Long: `Delete a task from the list. The id may be abbreviated to any
unique prefix. Removing an id that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	store, _, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := store.Resolve(args[0])
	if err != nil {
		var nf *task.NotFoundError
		if errors.As(err, &nf) {
			// Deletion is idempotent.
			return nil
		}
		return err
	}

	store.Delete(t.ID)
	fmt.Printf("removed %s  %s\n", output.ShortID(t.ID), t.Title)
	return nil
}
