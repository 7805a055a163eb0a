package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/five82/daywall/internal/logtail"
)

func readLogsCmd(fs afero.Fs, path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(fs, path, LogTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg(lines)
	}
}

// updateLogView renders the tail into the viewport and scrolls to the end.
func (m *Model) updateLogView() {
	if m.logView.Width <= 0 {
		return
	}
	styles := m.theme.Styles()
	var b strings.Builder
	for i, line := range m.logLines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.levelStyle(styles, logtail.LevelOf(line)).Render(truncate(line, m.logView.Width)))
	}
	m.logView.SetContent(b.String())
	m.logView.GotoBottom()
}

func (m Model) levelStyle(styles Styles, lvl logtail.Level) lipgloss.Style {
	switch lvl {
	case logtail.LevelError, logtail.LevelFatal:
		return styles.DangerText
	case logtail.LevelWarn:
		return styles.WarningText
	case logtail.LevelDebug:
		return styles.FaintText
	default:
		return styles.Text
	}
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	panel := styles.Panel.Width(m.width - 2)
	switch {
	case m.logErr != nil:
		return panel.Render(styles.DangerText.Render(m.logErr.Error()))
	case len(m.logLines) == 0:
		return panel.Height(LogPaneHeight - 2).Render(styles.MutedText.Render("no log output yet"))
	}
	return panel.Render(m.logView.View())
}
