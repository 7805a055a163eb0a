package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render("daywall")}
	if m.snapshot.Pack != "" {
		parts = append(parts, styles.AccentText.Render(m.snapshot.Pack))
	}
	phase := m.snapshot.Phase
	if phase == "" {
		phase = "starting"
	}
	parts = append(parts, styles.PhaseStyle(phase).Render(strings.ToUpper(phase)))
	if m.width >= LayoutCompactWidth {
		parts = append(parts, styles.MutedText.Render(formatLocation(m.snapshot.Latitude, m.snapshot.Longitude)))
	}
	if m.snapshot.HasActive {
		applied := fmt.Sprintf("applied %s %s",
			m.snapshot.LastApplied.In(m.loc).Format("15:04:05"),
			filepath.Base(m.snapshot.Active.Image))
		parts = append(parts, styles.Text.Render(applied))
	}
	if m.snapshot.Recomputes > 0 {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("day %d", m.snapshot.Recomputes+1)))
	}
	if m.snapshot.LastError != nil {
		parts = append(parts, styles.DangerText.Render(truncate(m.snapshot.LastError.Error(), 60)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderProgress renders the day progress bar and the active entry's end.
func (m Model) renderProgress() string {
	styles := m.theme.Styles()
	if !m.snapshot.HasDay {
		return styles.MutedText.Render(" waiting for the first day plan...")
	}

	pct := m.snapshot.DayProgress(m.now())
	line := fmt.Sprintf(" %s %s %s",
		styles.MutedText.Render("day"),
		m.progress.ViewAs(pct),
		styles.Text.Render(fmt.Sprintf("%3.0f%%", pct*100)))

	if m.snapshot.HasActive {
		until := m.snapshot.Active.Time(m.loc).Format("15:04")
		line += styles.MutedText.Render("  until ") + styles.AccentText.Render(until)
	}
	return line
}

func formatLocation(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.2f°%s %.2f°%s", lat, ns, lon, ew)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
