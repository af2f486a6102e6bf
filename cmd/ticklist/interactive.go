package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/storage"
	"ticklist/internal/tui"
)

// runInteractive launches the full-screen task list.
func runInteractive() error {
	store, gw, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	var watcher *storage.Watcher
	if cfg.TUI.Watch {
		if pg, ok := gw.(interface{ Path() string }); ok {
			watcher, err = storage.NewWatcher(pg.Path())
			if err == nil {
				defer watcher.Close()
			}
		}
	}

	// The TUI owns the terminal; route stray log output away from it.
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	p := tea.NewProgram(tui.New(store, gw, watcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive mode: %w", err)
	}
	return nil
}
