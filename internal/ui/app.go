package ui

import (
	"context"
	"errors"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/jot/internal/prefs"
	"github.com/five82/jot/internal/state"
)

// pane identifies which panel receives keys.
type pane int

const (
	paneInput pane = iota
	paneList
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Theme   *prefs.Flag // light when true; nil keeps an unsaved light theme
	Logger  *log.Logger
	// Copy writes text to the system clipboard. Nil uses atotto/clipboard.
	Copy func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	flag     *prefs.Flag
	logger   *log.Logger
	copyText func(string) error

	// UI state
	keys     keyMap
	help     help.Model
	input    textinput.Model
	theme    Theme
	light    bool
	focus    pane
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string

	// Data state
	snapshot state.Snapshot
	cursor   int
	cursorID string
	offset   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	light := true
	if opts.Theme != nil {
		light = opts.Theme.Value()
	}

	m := Model{
		ctx:      ctx,
		store:    store,
		flag:     opts.Theme,
		logger:   logger,
		copyText: copyFn,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    newInput(),
		focus:    paneInput,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.applyTheme(light)
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil
	}

	if m.focus == paneInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey routes keys: overlay first, then global bindings, then the
// focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ThemeAnywhere):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == paneInput {
			return m, m.focusList()
		}
		return m, m.focusInput()
	}

	if m.focus == paneInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = paneInput
	return m.input.Focus()
}

func (m *Model) focusList() tea.Cmd {
	m.focus = paneList
	m.input.Blur()
	return nil
}

// toggleTheme flips and persists the light/dark flag.
func (m *Model) toggleTheme() {
	light := !m.light
	if m.flag != nil {
		light = m.flag.Toggle(m.ctx)
	}
	m.applyTheme(light)
	m.logger.Info("theme changed", "mode", ModeLabel(light))
}

func (m *Model) applyTheme(light bool) {
	m.light = light
	m.theme = ThemeFor(light)
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
}

// sync pulls a fresh snapshot and reconciles the input text and cursor with it.
func (m *Model) sync() {
	m.snapshot = m.store.Snapshot()
	if m.input.Value() != m.snapshot.Draft {
		m.input.SetValue(m.snapshot.Draft)
		m.input.CursorEnd()
	}
	m.reconcileCursor()
}

// reconcileCursor keeps the cursor on the same todo by ID when possible,
// otherwise clamps it to the list.
func (m *Model) reconcileCursor() {
	todos := m.snapshot.Todos
	if len(todos) == 0 {
		m.cursor = 0
		m.cursorID = ""
		m.offset = 0
		return
	}
	if m.cursorID != "" {
		if idx := m.snapshot.IndexOf(m.cursorID); idx >= 0 {
			m.cursor = idx
		}
	}
	if m.cursor >= len(todos) {
		m.cursor = len(todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.cursorID = todos[m.cursor].ID
	m.scrollToCursor()
}

func (m *Model) moveCursor(to int) {
	m.cursor = to
	m.cursorID = ""
	m.reconcileCursor()
}

// storeError handles an error from a store operation. Index errors mean the
// view is stale, so it resyncs.
func (m *Model) storeError(op string, err error) {
	if errors.Is(err, state.ErrIndexOutOfRange) {
		m.logger.Error("view out of sync with store", "op", op, "err", err)
	} else {
		m.logger.Error("store operation failed", "op", op, "err", err)
	}
	m.sync()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	applyColorProfile()

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
