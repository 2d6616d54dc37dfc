// Package selection holds the interactive search state: the query
// text, the live result list, and the highlight cursor. It consumes
// abstract input events and is agnostic of any terminal library; key
// decoding belongs to the caller.
package selection

import (
	"shellhist/internal/history"
	"shellhist/internal/match"
)

// CursorInPrompt is the cursor sentinel meaning focus is on the query
// input line with no result row highlighted.
const CursorInPrompt = -1

// EventKind classifies an input event.
type EventKind int

const (
	// Append adds one printable character to the query.
	Append EventKind = iota
	// DeleteLast removes the last query character, if any.
	DeleteLast
	// MoveUp moves the highlight toward the prompt line.
	MoveUp
	// MoveDown moves the highlight down, wrapping to the top row.
	MoveDown
	// Confirm finalizes the session with the current selection.
	Confirm
	// Resize changes the viewport capacity.
	Resize
	// Ignore is a no-op event (unrecognized control input).
	Ignore
)

// Event is one discrete input event. Rune is set for Append; Capacity
// is set for Resize.
type Event struct {
	Kind     EventKind
	Rune     rune
	Capacity int
}

// OutcomeKind classifies what an event changed.
type OutcomeKind int

const (
	// None means no observable state change.
	None OutcomeKind = iota
	// QueryChanged means the query and result list were rebuilt.
	QueryChanged
	// CursorChanged means only the highlight moved.
	CursorChanged
	// Finalized means the session is over and Command holds the result.
	Finalized
)

// Outcome reports the effect of one event. Top is the provisional top
// suggestion after a QueryChanged; OldCursor/NewCursor accompany a
// CursorChanged for incremental highlight redraw; Command accompanies
// Finalized.
type Outcome struct {
	Kind      OutcomeKind
	Top       string
	OldCursor int
	NewCursor int
	Command   string
}

// State is the authoritative interactive state. All mutation goes
// through Apply; after a Finalized outcome the state is terminal and
// further events are ignored.
type State struct {
	snapshot history.Snapshot
	capacity int

	query   []rune
	results []match.Result
	cursor  int
	done    bool
}

// New creates the initial state: empty query, cursor in the prompt,
// results filled with the most recent distinct entries.
func New(snap history.Snapshot, capacity int) *State {
	s := &State{
		snapshot: snap,
		capacity: capacity,
		cursor:   CursorInPrompt,
	}
	s.results = match.Match(snap, "", capacity)
	return s
}

// Query returns the current query text.
func (s *State) Query() string { return string(s.query) }

// Results returns the current result list. Callers must not mutate it.
func (s *State) Results() []match.Result { return s.results }

// Cursor returns the current highlight position, CursorInPrompt when
// the prompt line is focused.
func (s *State) Cursor() int { return s.cursor }

// Done reports whether a Confirm has been processed.
func (s *State) Done() bool { return s.done }

// Apply processes one input event and returns its outcome. No event
// can leave the cursor out of range relative to the live result list:
// every transition that rebuilds results resets or clamps the cursor
// in the same step.
func (s *State) Apply(ev Event) Outcome {
	if s.done {
		return Outcome{Kind: None}
	}

	switch ev.Kind {
	case Append:
		s.query = append(s.query, ev.Rune)
		return s.rebuild()

	case DeleteLast:
		if len(s.query) == 0 {
			return Outcome{Kind: None}
		}
		s.query = s.query[:len(s.query)-1]
		return s.rebuild()

	case MoveUp:
		old := s.cursor
		if s.cursor > CursorInPrompt {
			s.cursor--
		}
		return Outcome{Kind: CursorChanged, OldCursor: old, NewCursor: s.cursor}

	case MoveDown:
		old := s.cursor
		switch {
		case s.cursor+1 < len(s.results):
			s.cursor++
		case len(s.results) > 0:
			s.cursor = 0
		}
		return Outcome{Kind: CursorChanged, OldCursor: old, NewCursor: s.cursor}

	case Confirm:
		s.done = true
		// Confirming from the prompt returns the verbatim query, even
		// when suggestions exist; only an explicit cursor move selects
		// a row.
		cmd := string(s.query)
		if s.cursor != CursorInPrompt {
			cmd = s.results[s.cursor].Text
		}
		return Outcome{Kind: Finalized, Command: cmd}

	case Resize:
		if ev.Capacity == s.capacity {
			return Outcome{Kind: None}
		}
		s.capacity = ev.Capacity
		s.results = match.Match(s.snapshot, string(s.query), s.capacity)
		if s.cursor >= len(s.results) {
			s.cursor = len(s.results) - 1
		}
		return Outcome{Kind: QueryChanged, Top: s.top()}

	default:
		return Outcome{Kind: None}
	}
}

// rebuild recomputes the result list for the current query and resets
// the cursor to the prompt so it cannot reference a stale row.
func (s *State) rebuild() Outcome {
	s.results = match.Match(s.snapshot, string(s.query), s.capacity)
	s.cursor = CursorInPrompt
	return Outcome{Kind: QueryChanged, Top: s.top()}
}

func (s *State) top() string {
	if len(s.results) == 0 {
		return ""
	}
	return s.results[0].Text
}
