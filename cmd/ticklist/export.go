package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ticklist/pkg/models"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task list",
	Long: `Write the full task list to stdout or a file, as JSON or YAML.

Examples:
  ticklist export
  ticklist export --format yaml -o backup.yaml`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	data, err := marshalTasks(store.Snapshot(), exportFormat)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	return nil
}

// marshalTasks encodes tasks in the requested format.
func marshalTasks(tasks []models.Task, format string) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal tasks: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("marshal tasks: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}

// unmarshalTasks decodes tasks in the requested format.
func unmarshalTasks(data []byte, format string) ([]models.Task, error) {
	var tasks []models.Task
	switch format {
	case "json":
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("parse tasks: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("parse tasks: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
	return tasks, nil
}
