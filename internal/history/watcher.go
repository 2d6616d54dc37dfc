package history

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the history file for on-disk changes during a
// session. The snapshot is fixed for the session lifetime, so a change
// is only surfaced as an event; the TUI renders it as a hint that a
// restart would pick up new entries.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string

	Events chan struct{}
	Errors chan error
	done   chan struct{}
}

// NewWatcher creates a watcher for the history file at path. The parent
// directory is watched rather than the file itself so that shells which
// rewrite history via rename (truncate + replace) are still seen.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(path),
		Events:    make(chan struct{}, 1),
		Errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// watchLoop handles fsnotify events.
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Error channel full, drop
			}
		}
	}
}

// handleFSEvent processes a filesystem event.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	select {
	case w.Events <- struct{}{}:
	default:
		// A change is already pending; one hint is enough.
	}
}
