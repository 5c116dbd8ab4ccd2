package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderMain renders header, input box, list box and footer stacked vertically.
func (m Model) renderMain() string {
	width := max(m.width, minContentWidth+4)

	inputFocused := m.focus == paneInput
	inputTitle := "New todo"
	if m.snapshot.Editing {
		inputTitle = "Edit todo"
	}
	inputBox := m.renderTitledBox(inputTitle,
		m.renderInput(m.contentWidth(), m.paneBg(inputFocused)),
		width, inputRows+boxChromeRow, inputFocused)

	listFocused := m.focus == paneList
	listHeight := max(m.listRows(), 1) + boxChromeRow
	listBox := m.renderTitledBox(m.listTitle(),
		m.renderList(m.contentWidth(), m.paneBg(listFocused)),
		width, listHeight, listFocused)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		inputBox,
		listBox,
		m.renderFooter(),
	)
}

func (m Model) paneBg(focused bool) string {
	if focused {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

// renderHeader renders the one-line status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	total := len(m.snapshot.Todos)
	done := m.snapshot.CompletedCount()
	parts := []string{
		bg.Render("jot", styles.Logo),
		bg.Render(strconv.Itoa(total), styles.Text.Bold(true)) + bg.Space() + bg.Render("items", styles.MutedText),
		bg.Render(strconv.Itoa(done), styles.SuccessText) + bg.Space() + bg.Render("done", styles.MutedText),
	}
	if left := total - done; left > 0 {
		parts = append(parts, bg.Render(strconv.Itoa(left), styles.WarningText)+bg.Space()+bg.Render("open", styles.MutedText))
	}
	if idx, ok := m.snapshot.EditTarget(); ok {
		parts = append(parts, bg.Render("editing #"+strconv.Itoa(idx+1), styles.WarningText.Bold(true)))
	}
	parts = append(parts, bg.Render(ModeLabel(m.light), styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderFooter shows the transient status and the key hints for the focused pane.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints string
	if m.focus == paneInput {
		hints = m.help.ShortHelpView(inputKeys{m.keys}.ShortHelp())
	} else {
		hints = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	content := hints
	if m.status != "" {
		content = bg.Render(m.status, styles.AccentText.Bold(true)) + bg.Spaces(2) + hints
	}
	return styles.Footer.Width(m.width).Render(ansi.Truncate(content, max(m.width-2, 0), "…"))
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Focused boxes use BorderFocus and FocusBg.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bgColorStr := m.paneBg(focused)

	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleWidth := ansi.StringWidth(title)
	if titleWidth+2 > innerWidth {
		title = ansi.Truncate(title, max(innerWidth-2, 0), "")
		titleWidth = ansi.StringWidth(title)
	}
	leftPad := max((innerWidth-titleWidth-2)/2, 0)
	rightPad := max(innerWidth-titleWidth-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Padding(0, 1).
		Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)
	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
