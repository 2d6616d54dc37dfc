package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"shellhist/internal/history"
	"shellhist/internal/selection"
)

func newTestModel() Model {
	snap := history.Build("ls -la\ngit status\nls -la\ngit commit\nls /tmp\n")
	m := NewModel(ModelOptions{Snapshot: snap, Theme: "mocha"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.state.Cursor() != selection.CursorInPrompt {
		t.Errorf("initial cursor = %d, want prompt sentinel", m.state.Cursor())
	}
	if _, ok := m.Result(); ok {
		t.Error("Result() should not be ok before the session ends")
	}
}

func TestTypingFiltersResults(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	if m.state.Query() != "ls" {
		t.Errorf("query = %q, want \"ls\"", m.state.Query())
	}
	if got := len(m.state.Results()); got != 2 {
		t.Errorf("results = %d, want 2", got)
	}
}

func TestBackspaceErasesQuery(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	if m.state.Query() != "l" {
		t.Errorf("query = %q, want \"l\"", m.state.Query())
	}
}

func TestEnterWithoutCursorReturnsTypedText(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("expected a quit command after enter")
	}
	result, ok := m.Result()
	if !ok {
		t.Fatal("Result() not ok after confirm")
	}
	if result != "ls" {
		t.Errorf("result = %q, want the verbatim query \"ls\"", result)
	}
}

func TestArrowSelectionReturnsRow(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	result, ok := m.Result()
	if !ok {
		t.Fatal("Result() not ok after confirm")
	}
	if result != "ls -la" {
		t.Errorf("result = %q, want \"ls -la\"", result)
	}
}

func TestEscapeAborts(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("expected a quit command after escape")
	}
	if _, ok := m.Result(); ok {
		t.Error("aborted session must not report a result")
	}
}

func TestSpaceIsQueryInput(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = updated.(Model)
	if m.state.Query() != "ls " {
		t.Errorf("query = %q, want \"ls \"", m.state.Query())
	}
}

func TestResizeReclampsViewport(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: chromeRows + 2})
	m = updated.(Model)

	if got := len(m.state.Results()); got != 2 {
		t.Errorf("results after shrink = %d, want 2", got)
	}
}

func TestViewShowsPromptAndLabel(t *testing.T) {
	m := typeRunes(t, newTestModel(), "ls")

	view := m.View()
	if !strings.Contains(view, "$") {
		t.Error("view should contain the shell prompt")
	}
	if !strings.Contains(view, strings.TrimSpace(historyLabel)) {
		t.Error("view should contain the HISTORY label bar")
	}
	// The matched span is styled separately from the rest of the row,
	// so check the unstyled remainder of each entry.
	if !strings.Contains(view, "/tmp") || !strings.Contains(view, "-la") {
		t.Error("view should list the matching entries")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	snap := history.Build("ls\n")
	m := NewModel(ModelOptions{Snapshot: snap, Theme: "mocha"})

	if m.View() != "Loading..." {
		t.Errorf("View() before sizing = %q, want Loading...", m.View())
	}
}

func TestHistoryChangedHint(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(historyChangedMsg{})
	m = updated.(Model)

	if !strings.Contains(m.View(), "restart to reload") {
		t.Error("view should hint that the history file changed")
	}
}
