package main

import (
	"fmt"
	"time"

	"ticklist/internal/config"
	"ticklist/internal/storage"
	"ticklist/internal/task"
)

// openStore loads configuration, opens the configured persistence
// gateway, and returns a store hydrated from it. The returned
// cleanup function must be called before exit.
func openStore() (*task.Store, storage.Gateway, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	gw, cleanup, err := openGateway(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	store := task.NewStore(gw)
	store.Hydrate(gw.Load())
	return store, gw, cfg, cleanup, nil
}

// openGateway opens the persistence gateway selected by config.
func openGateway(cfg *config.Config) (storage.Gateway, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		gw, err := storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		return gw, func() { gw.Close() }, nil
	default:
		gw := storage.NewFileGateway(cfg.Storage.Path)
		return gw, func() {}, nil
	}
}

// parseDueDate parses a --due flag value.
func parseDueDate(value string) (time.Time, error) {
	due, err := task.ParseDue(value)
	if err != nil {
		return time.Time{}, err
	}
	if due == nil {
		return time.Time{}, fmt.Errorf("due date must not be empty")
	}
	return *due, nil
}
