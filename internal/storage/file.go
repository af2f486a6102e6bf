package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ticklist/pkg/models"
)

// tasksFileName is the single fixed key the snapshot is stored under.
const tasksFileName = "tasks.json"

// FileGateway persists the task snapshot as a JSON file.
type FileGateway struct {
	path string
}

// NewFileGateway creates a gateway writing to the given path. An
// empty path uses tasks.json in the default data directory.
func NewFileGateway(path string) *FileGateway {
	if path == "" {
		path = filepath.Join(DefaultDataDir(), tasksFileName)
	}
	return &FileGateway{path: path}
}

// Path returns the location of the data file.
func (g *FileGateway) Path() string {
	return g.path
}

// Load reads the persisted collection. Any failure is logged and
// masked by returning an empty collection.
func (g *FileGateway) Load() []models.Task {
	tasks, err := g.load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[storage] load tasks: %v", err)
		}
		return nil
	}
	return tasks
}

// Save writes the full collection, replacing any prior value.
// Failures are logged and swallowed.
func (g *FileGateway) Save(tasks []models.Task) {
	if err := g.save(tasks); err != nil {
		log.Printf("[storage] save tasks: %v", err)
	}
}

func (g *FileGateway) load() ([]models.Task, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", g.path, err)
	}
	return tasks, nil
}

func (g *FileGateway) save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.path, err)
	}
	return nil
}
