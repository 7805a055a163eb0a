package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/five82/daywall/internal/anchor"
	"github.com/five82/daywall/internal/timeline"
)

// RenderTimeline formats a day's timeline for the timeline command. The
// entry that would be applied at now is marked.
func RenderTimeline(anchors anchor.Set, tl timeline.Timeline, loc *time.Location, now time.Time, theme Theme) string {
	if loc == nil {
		loc = time.Local
	}
	styles := theme.Styles()
	if len(tl) == 0 {
		return styles.MutedText.Render("pack has no images")
	}

	current := tl.Index(now.Unix())
	segments := make([]string, len(tl))

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		Headers("", "#", "UNTIL", "SEGMENT", "IMAGE")
	for i, e := range tl {
		marker := ""
		if i == current {
			marker = activeMarker
		}
		if seg, ok := segmentOf(anchors, e.At); ok {
			segments[i] = seg.Key()
		}
		t.Row(marker, fmt.Sprint(i+1), e.Time(loc).Format("15:04:05"), segments[i], e.Image)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == ltable.HeaderRow:
			return base.Foreground(lipgloss.Color(theme.Accent)).Bold(true)
		case row == current:
			return base.Foreground(lipgloss.Color(theme.SelectionText)).Background(lipgloss.Color(theme.SelectionBg))
		case col == 3 && row >= 0 && row < len(segments):
			return base.Inherit(styles.SegmentStyle(segments[row]))
		}
		return base.Foreground(lipgloss.Color(theme.Text))
	})
	return t.Render()
}

// RenderAnchors formats an anchor set for the anchors command.
func RenderAnchors(anchors anchor.Set, loc *time.Location, theme Theme) string {
	if loc == nil {
		loc = time.Local
	}
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))).
		Headers("ANCHOR", "TIME", "POSIX")
	for _, a := range anchor.All() {
		t.Row(a.String(), anchors.Time(a, loc).Format("2006-01-02 15:04:05 MST"), fmt.Sprint(anchors.At(a)))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row == ltable.HeaderRow {
			return base.Foreground(lipgloss.Color(theme.Accent)).Bold(true)
		}
		return base.Foreground(lipgloss.Color(theme.Text))
	})
	return t.Render()
}
