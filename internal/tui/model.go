package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shellhist/internal/debug"
	"shellhist/internal/history"
	"shellhist/internal/selection"
)

// chromeRows is the number of lines the fixed chrome occupies: prompt,
// spacer, help, label bar, and one bottom margin.
const chromeRows = 5

// ModelOptions configures the search session.
type ModelOptions struct {
	Snapshot history.Snapshot
	Theme    string
	MaxRows  int // 0 means fill the viewport
	Watcher  *history.Watcher
}

// Model represents the application state
type Model struct {
	// Core state
	state   *selection.State
	maxRows int

	// History change watcher (may be nil)
	watcher     *history.Watcher
	histChanged bool

	// UI components
	keys  keyMap
	help  help.Model
	theme Theme

	// Prompt identity, resolved once at startup
	user string
	host string

	// UI dimensions
	width  int
	height int

	// Session result
	result  string
	aborted bool
}

// NewModel creates a new Model with initialized state
func NewModel(opts ModelOptions) Model {
	user := os.Getenv("USER")
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	return Model{
		// Capacity is provisional until the first WindowSizeMsg.
		state:   selection.New(opts.Snapshot, 1),
		maxRows: opts.MaxRows,
		watcher: opts.Watcher,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   NewTheme(opts.Theme),
		user:    user,
		host:    host,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.watchHistoryCmd()
}

// Message types
type (
	historyChangedMsg struct{}
)

// watchHistoryCmd waits for the history file to change on disk
func (m Model) watchHistoryCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			return historyChangedMsg{}
		case <-m.watcher.Errors:
			// A broken watcher only costs the hint; keep the session.
			return nil
		}
	}
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.Apply(selection.Event{Kind: selection.Resize, Capacity: m.capacity()})
		return m, nil

	case historyChangedMsg:
		m.histChanged = true
		return m, m.watchHistoryCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey decodes a key press into a selection event
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug.Logf("key: %s", msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		out := m.state.Apply(selection.Event{Kind: selection.Confirm})
		m.result = out.Command
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.state.Apply(selection.Event{Kind: selection.MoveUp})
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.state.Apply(selection.Event{Kind: selection.MoveDown})
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.state.Apply(selection.Event{Kind: selection.DeleteLast})
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		for _, r := range msg.Runes {
			m.state.Apply(selection.Event{Kind: selection.Append, Rune: r})
		}
		return m, nil
	}

	// Unrecognized control input never disturbs the session.
	return m, nil
}

// capacity derives the result viewport size from the terminal height
func (m Model) capacity() int {
	rows := m.height - chromeRows
	if m.maxRows > 0 && rows > m.maxRows {
		rows = m.maxRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Result returns the selected command once the session has ended.
// ok is false when the session was aborted.
func (m Model) Result() (cmd string, ok bool) {
	if m.aborted {
		return "", false
	}
	return m.result, m.state.Done()
}
