// Package storage provides the persistence gateways that durably
// store the task snapshot between sessions. Gateways are best
// effort: a failed load falls back to an empty collection and a
// failed save is logged and swallowed, so the in-memory store stays
// the source of truth for the running session.
package storage

import (
	"os"
	"path/filepath"

	"ticklist/pkg/models"
)

// Gateway loads the collection at startup and persists it after
// every mutation. Implementations mask their own failures.
type Gateway interface {
	// Load returns the previously persisted collection, or an empty
	// one if nothing was stored or the read failed.
	Load() []models.Task
	// Save persists the full collection, overwriting any prior value.
	Save(tasks []models.Task)
}

// DefaultDataDir returns the directory where ticklist keeps its data,
// following XDG conventions.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "ticklist")
}
