// Package match ranks history entries against an incremental query.
package match

import (
	"strings"

	"shellhist/internal/history"
)

// Result is one matched history entry. Start and End are the byte
// offsets of the matched query span within Text, for highlight
// rendering; both are -1 when no query was active.
type Result struct {
	Text  string
	Start int
	End   int
}

// Match produces the ordered, deduplicated result list for query
// against the snapshot, bounded to at most capacity entries.
//
// Matching runs in two phases over the snapshot's most-recent-first
// order: phase one takes entries with query as a literal prefix, phase
// two takes entries containing query at any later offset. Prefix
// matches therefore always rank above substring-only matches, while
// recency breaks ties within each phase. Duplicate entry text is kept
// only at its first occurrence across both phases. The empty query
// behaves as "no filter" and returns the capacity most recent distinct
// entries. Comparison is case-sensitive with no normalization.
func Match(snap history.Snapshot, query string, capacity int) []Result {
	if capacity <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	results := make([]Result, 0, min(capacity, snap.Len()))

	for i := 0; i < snap.Len() && len(results) < capacity; i++ {
		entry := snap.Entry(i)
		if _, dup := seen[entry]; dup {
			continue
		}
		if query == "" {
			seen[entry] = struct{}{}
			results = append(results, Result{Text: entry, Start: -1, End: -1})
			continue
		}
		if strings.HasPrefix(entry, query) {
			seen[entry] = struct{}{}
			results = append(results, Result{Text: entry, Start: 0, End: len(query)})
		}
	}

	if query == "" {
		return results
	}

	for i := 0; i < snap.Len() && len(results) < capacity; i++ {
		entry := snap.Entry(i)
		if _, dup := seen[entry]; dup {
			continue
		}
		// Index 0 occurrences are prefix matches and were either taken
		// by phase one or bounded out by capacity; never re-admit them.
		if idx := strings.Index(entry, query); idx > 0 {
			seen[entry] = struct{}{}
			results = append(results, Result{Text: entry, Start: idx, End: idx + len(query)})
		}
	}

	return results
}
