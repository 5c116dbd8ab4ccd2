package ui

import "github.com/charmbracelet/x/ansi"

// Sizes used before the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Fixed rows in the main layout.
const (
	headerRows   = 1
	footerRows   = 1
	inputRows    = 2 // editor line plus hint
	boxChromeRow = 2 // top and bottom border
)

// minContentWidth keeps boxes renderable on very narrow terminals.
const minContentWidth = 10

// contentWidth is the usable width inside a titled box.
func (m Model) contentWidth() int {
	return max(m.width-4, minContentWidth)
}

// listRows is the number of todo rows that fit in the list box.
func (m Model) listRows() int {
	return m.height - headerRows - footerRows - (inputRows + boxChromeRow) - boxChromeRow
}

// resize recomputes size-dependent state after a window change.
func (m *Model) resize() {
	m.input.Width = max(m.contentWidth()-ansi.StringWidth(m.input.Prompt)-1, 1)
	m.help.Width = m.width
	m.scrollToCursor()
}
