package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceUnavailable indicates that no history file could be read.
// The session cannot start without one.
var ErrSourceUnavailable = errors.New("history source unavailable")

// Snapshot is the ordered history for one session, most-recent-first.
// It is built once at startup and never mutated afterwards.
type Snapshot struct {
	entries []string
}

// Build converts raw history text into a Snapshot. Lines are kept in
// on-disk chronological order and then reversed so the most recently
// used command comes first. A missing final newline must not produce a
// trailing empty entry. Duplicates are preserved here; deduplication is
// applied per-query by the match engine.
func Build(raw string) Snapshot {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return Snapshot{}
	}

	lines := strings.Split(raw, "\n")
	entries := make([]string, len(lines))
	for i, line := range lines {
		entries[len(lines)-1-i] = line
	}
	return Snapshot{entries: entries}
}

// Len returns the number of entries in the snapshot.
func (s Snapshot) Len() int { return len(s.entries) }

// Entry returns the i-th entry, most recent first.
func (s Snapshot) Entry(i int) string { return s.entries[i] }

// Load reads the history file at path and builds a Snapshot from it.
// A file that cannot be read is ErrSourceUnavailable: the diagnostic
// names the path so the user can tell which file was tried.
func Load(path string) (Snapshot, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // history path from known locations
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, cleanPath, err)
	}
	return Build(string(data)), nil
}

// DefaultPath resolves the history file to use when none is given
// explicitly: $HISTFILE if set, otherwise ~/.bash_history.
func DefaultPath() string {
	if histfile := os.Getenv("HISTFILE"); histfile != "" {
		return histfile
	}
	return filepath.Join(os.Getenv("HOME"), ".bash_history")
}
