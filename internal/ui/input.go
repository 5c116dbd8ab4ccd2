package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Add a todo"
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Focus()
	return ti
}

// handleInputKey handles keys while the input panel has focus. Every edit to
// the text field is mirrored into the store's draft.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		wasEditing := m.snapshot.Editing
		before := len(m.snapshot.Todos)
		m.store.Submit()
		m.sync()
		switch {
		case wasEditing && !m.snapshot.Editing:
			m.logger.Debug("todo updated", "index", m.cursor)
			return m, m.focusList()
		case len(m.snapshot.Todos) > before:
			m.moveCursor(len(m.snapshot.Todos) - 1)
			m.logger.Debug("todo added", "count", len(m.snapshot.Todos))
		}
		return m, nil

	case key.Matches(msg, m.keys.Leave):
		return m, m.focusList()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.snapshot.Draft {
		m.store.SetDraft(v)
		m.snapshot = m.store.Snapshot()
	}
	return m, cmd
}

// renderInput renders the single-line editor with a hint about the edit state.
func (m Model) renderInput(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	line := m.input.View()

	var hint string
	if idx, ok := m.snapshot.EditTarget(); ok {
		hint = bg.Render("editing item ", styles.WarningText) +
			bg.Render(strconv.Itoa(idx+1), styles.WarningText.Bold(true)) +
			bg.Render(" · enter saves · esc leaves", styles.FaintText)
	} else {
		hint = bg.Render("enter adds · tab switches to the list", styles.FaintText)
	}
	return line + "\n" + ansi.Truncate(hint, width, "…")
}
