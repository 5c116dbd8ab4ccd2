package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/jot/internal/state"
)

// handleListKey handles keys while the list panel has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.FocusInput):
		return m, m.focusInput()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.snapshot.Todos) - 1)
	}

	if len(m.snapshot.Todos) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		if err := m.store.Toggle(m.cursor); err != nil {
			m.storeError("toggle", err)
			return m, nil
		}
		m.sync()

	case key.Matches(msg, m.keys.Delete):
		id := m.cursorID
		if err := m.store.Delete(m.cursor); err != nil {
			m.storeError("delete", err)
			return m, nil
		}
		m.logger.Debug("todo deleted", "id", id)
		// The deleted ID is gone; keep the cursor at the same position.
		m.cursorID = ""
		m.sync()

	case key.Matches(msg, m.keys.Edit):
		if err := m.store.BeginEdit(m.cursor); err != nil {
			m.storeError("edit", err)
			return m, nil
		}
		m.sync()
		return m, m.focusInput()

	case key.Matches(msg, m.keys.Yank):
		text := m.snapshot.Todos[m.cursor].Text
		if err := m.copyText(text); err != nil {
			m.logger.Warn("clipboard write failed", "err", err)
			m.status = "copy failed"
			return m, nil
		}
		m.status = "copied"
	}
	return m, nil
}

// scrollToCursor keeps the cursor inside the visible window of rows.
func (m *Model) scrollToCursor() {
	rows := m.listRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if maxOffset := max(len(m.snapshot.Todos)-rows, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRange returns the half-open range of todo indices on screen.
func (m Model) visibleRange() (int, int) {
	n := len(m.snapshot.Todos)
	start := min(m.offset, n)
	end := min(start+max(m.listRows(), 0), n)
	return start, end
}

// renderList renders the visible todo rows.
func (m Model) renderList(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	if len(m.snapshot.Todos) == 0 {
		return styles.MutedText.Render("Nothing to do. Press a to add a todo.")
	}

	editIdx, editing := m.snapshot.EditTarget()
	start, end := m.visibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == m.cursor && m.focus == paneList
		lines = append(lines, m.formatRow(m.snapshot.Todos[i], width, bgColor, selected, editing && i == editIdx))
	}
	return strings.Join(lines, "\n")
}

// formatRow formats one todo as "[x] text".
// Selected rows use SelectionText for every segment so they stay readable.
func (m Model) formatRow(todo state.Todo, width int, bgColor string, selected, edited bool) string {
	if selected {
		bgColor = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	box, boxStyle := "[ ]", styles.MutedText
	textStyle := styles.Text
	if todo.Completed {
		box, boxStyle = "[x]", styles.SuccessText
		textStyle = styles.Done
	}
	marker := bg.Spaces(2)
	if edited {
		marker = bg.Render("✎", styles.WarningText) + bg.Space()
	}
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		boxStyle = sel.Bold(true)
		textStyle = sel.Strikethrough(todo.Completed)
	}

	prefix := marker + bg.Render(box, boxStyle) + bg.Space()
	avail := width - ansi.StringWidth(prefix)
	text := todo.Text
	if avail > 0 && ansi.StringWidth(text) > avail {
		text = ansi.Truncate(text, avail, "…")
	}
	return bg.FillLine(prefix+bg.Render(text, textStyle), width)
}

// listTitle summarizes progress for the list border.
func (m Model) listTitle() string {
	total := len(m.snapshot.Todos)
	if total == 0 {
		return "Todos"
	}
	return fmt.Sprintf("Todos %d/%d", m.snapshot.CompletedCount(), total)
}
