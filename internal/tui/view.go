package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shellhist/internal/match"
)

const historyLabel = " HISTORY "

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderPrompt())
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")
	b.WriteString(m.renderLabelBar())
	b.WriteString("\n")
	b.WriteString(m.renderRows())

	return b.String()
}

// renderPrompt renders the user@host$ line with the current query
func (m Model) renderPrompt() string {
	prompt := m.theme.promptStyle.Render(m.user + "@" + m.host + "$ ")
	query := m.theme.queryStyle.Render(m.state.Query())
	cursor := m.theme.queryStyle.Render("▏")
	return prompt + query + cursor
}

// renderHelp renders the key binding footer, plus a hint when the
// history file changed on disk. The session keeps its snapshot; only a
// restart picks up new entries.
func (m Model) renderHelp() string {
	line := m.help.View(m.keys)
	if m.histChanged {
		line += m.theme.hintStyle.Render("  history file changed, restart to reload")
	}
	return line
}

// renderLabelBar renders the reverse-video HISTORY bar across the width
func (m Model) renderLabelBar() string {
	pad := m.width - lipgloss.Width(historyLabel)
	if pad < 0 {
		pad = 0
	}
	return m.theme.labelBarStyle.Render(historyLabel + strings.Repeat(" ", pad))
}

// renderRows renders the result rows with match and cursor highlights
func (m Model) renderRows() string {
	results := m.state.Results()
	cursor := m.state.Cursor()

	var b strings.Builder
	for i, res := range results {
		selected := i == cursor
		marker := "  "
		if selected {
			marker = m.theme.markerStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(m.renderEntry(res, selected))
		b.WriteString("\n")
	}
	return b.String()
}

// renderEntry renders one history entry, bolding the matched span
func (m Model) renderEntry(res match.Result, selected bool) string {
	text := truncate(res.Text, max(m.width-4, 4))

	base := m.theme.rowStyle
	if selected {
		base = m.theme.selectedStyle
	}

	// Span offsets may fall past the truncation point on narrow
	// terminals; drop the highlight rather than split mid-span.
	if res.Start < 0 || res.End > len(text) {
		return base.Render(text)
	}

	matchStyle := m.theme.matchStyle
	if selected {
		matchStyle = matchStyle.Background(base.GetBackground())
	}

	return base.Render(text[:res.Start]) +
		matchStyle.Render(text[res.Start:res.End]) +
		base.Render(text[res.End:])
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
