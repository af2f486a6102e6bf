package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a task list",
	Long: `Replace the task list with the contents of a JSON or YAML file,
such as one produced by 'ticklist export'. The format is inferred
from the file extension unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: json or yaml")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format := importFormat
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tasks, err := unmarshalTasks(data, format)
	if err != nil {
		return err
	}

	store, gw, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	store.Hydrate(tasks)
	gw.Save(store.Snapshot())

	fmt.Printf("imported %d tasks from %s\n", store.Len(), path)
	return nil
}
