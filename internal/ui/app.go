package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/five82/daywall/internal/prefs"
	"github.com/five82/daywall/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context // cancelling it closes the program
	Store     *state.Store
	Fs        afero.Fs // nil uses the OS filesystem
	LogPath   string   // daemon log shown in the log pane
	Location  *time.Location
	PollTick  time.Duration
	ThemeName string
	ShowLogs  bool
	PrefsPath string
	Logger    zerolog.Logger

	// OnQuit runs when the user quits, before the program exits.
	OnQuit func()
	// Now overrides the clock used for the day progress bar.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	fs        afero.Fs
	logPath   string
	loc       *time.Location
	prefsPath string
	pollTick  time.Duration
	onQuit    func()
	now       func() time.Time
	log       zerolog.Logger

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	showLogs bool
	follow   bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Components
	table    table.Model
	progress progress.Model
	logView  viewport.Model
	logLines []string
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		store:     opts.Store,
		fs:        fs,
		logPath:   opts.LogPath,
		loc:       loc,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		onQuit:    opts.OnQuit,
		now:       now,
		log:       opts.Logger,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		showLogs:  opts.ShowLogs,
		follow:    true,
		table:     table.New(table.WithColumns(timelineColumns(LayoutCompactWidth+20)), table.WithFocused(true)),
		logView:   viewport.New(0, 0),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.fs, m.logPath))
	}
	return tea.Batch(cmds...)
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

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = m.now()
		m.updateTable()
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		m.logErr = nil
		m.updateLogView()
		return m, nil

	case logErrorMsg:
		m.logErr = msg.err
		return m, nil
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.resize()
		m.savePrefs()
		if m.showLogs {
			return m, readLogsCmd(m.fs, m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Follow):
		m.follow = true
		m.updateTable()
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom):
		m.follow = false
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.fs, m.logPath))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, ShowLogs: m.showLogs}
	if err := prefs.Save(m.fs, m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Msg("save preferences")
	}
}

// applyTheme restyles the components after a theme change.
func (m *Model) applyTheme() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(lipgloss.Color(m.theme.Text))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Bold(false)
	m.table.SetStyles(styles)

	m.progress = progress.New(
		progress.WithGradient(m.theme.SegmentColors["midnight"], m.theme.SegmentColors["noon"]),
		progress.WithoutPercentage(),
	)
	m.resize()
}

// resize distributes the terminal height between table and log pane.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, progress line, footer and the table panel border
	chrome := 5
	tableHeight := m.height - chrome
	if m.showLogs {
		tableHeight -= LogPaneHeight
		m.logView.Width = m.width - 2
		m.logView.Height = LogPaneHeight - 2
	}
	if tableHeight < 3 {
		tableHeight = 3
	}
	// Rows must never have more cells than columns.
	m.table.SetRows(nil)
	m.table.SetColumns(timelineColumns(m.width - 2))
	m.table.SetWidth(m.width - 2)
	m.table.SetHeight(tableHeight)
	m.updateTable()
	m.progress.Width = max(10, m.width-30)
	m.updateLogView()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n")
	b.WriteString(m.renderTimeline())
	if m.showLogs {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logLinesMsg []string

type logErrorMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return err
}
