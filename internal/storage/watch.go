package storage

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies when the data file is rewritten by another
// ticklist process, so a long-running view can reload. Best effort:
// if the underlying watcher cannot be created the channel simply
// never fires.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher watches the given data file for writes. The file's
// directory is watched rather than the file itself, since saves may
// replace the file.
func NewWatcher(path string) (*Watcher, error) {
	w := &Watcher{
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		// Continue without watching.
		return w, nil
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return w, nil
	}
	w.watcher = fw

	go w.run(filepath.Base(path))
	return w, nil
}

// Changes returns the channel that fires when the data file changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// run forwards write/create events for the data file. Notifications
// are coalesced: an unread notification absorbs later ones.
func (w *Watcher) run(base string) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0 {
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}
		case <-w.watcher.Errors:
			// Ignore errors, keep watching.
		}
	}
}

// Close shuts down the watcher.
func (w *Watcher) Close() {
	close(w.done)
	if w.watcher != nil {
		w.watcher.Close()
	}
}
